package editor

import (
	"github.com/deeean/go-vector/vector2"
	"github.com/inkyblackness/imgui-go/v4"

	"waveland/src/editor/edgui"
	"waveland/src/popupmenu"
)

const popupMenuID = "##contextmenu"

// popupManager owns the single active context menu.  The widget is
// replayed every frame while the imgui popup is open; once imgui
// closes it, the widget is destroyed, which fires the menu teardown
// and detaches every contributing table.
type popupManager struct {
	dispatcher *popupmenu.Dispatcher

	menu   *popupmenu.Menu
	widget *edgui.MenuWidget
	pos    *vector2.Vector2
	opened bool
}

func newPopupManager() *popupManager {
	return &popupManager{dispatcher: popupmenu.NewDispatcher()}
}

// Open builds a live menu from table and queues it to pop up at pos
// on the next Draw.  A popup that is still open is torn down first.
func (p *popupManager) Open(table popupmenu.Table, userData any, pos *vector2.Vector2) {
	p.Close()
	p.menu = popupmenu.BuildMenu(edgui.Toolkit{}, p.dispatcher, table, userData)
	p.widget = p.menu.Root().(*edgui.MenuWidget)
	p.pos = pos
	p.opened = false
}

// Extend appends another table's entries to the queued popup.
func (p *popupManager) Extend(table popupmenu.Table) {
	if p.menu != nil {
		popupmenu.ExtendMenu(p.menu, table)
	}
}

func (p *popupManager) Close() {
	if p.widget != nil {
		p.widget.Destroy()
	}
	p.menu = nil
	p.widget = nil
	p.opened = false
}

func (p *popupManager) Draw() {
	if p.widget == nil {
		return
	}
	if !p.opened {
		imgui.SetNextWindowPos(imgui.Vec2{X: float32(p.pos.X), Y: float32(p.pos.Y)})
		imgui.OpenPopup(popupMenuID)
		p.opened = true
	}
	if imgui.BeginPopupV(popupMenuID, imgui.WindowFlagsNone) {
		p.widget.Draw(func(id int) {
			p.dispatcher.Dispatch(id)
			imgui.CloseCurrentPopup()
		})
		imgui.EndPopup()
	} else {
		// imgui closed the popup; tear the menu down
		p.Close()
	}
}
