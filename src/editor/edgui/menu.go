package edgui

import (
	"github.com/inkyblackness/imgui-go/v4"

	"waveland/src/popupmenu"
)

// menuRow is the retained state for one menu row.  imgui is immediate
// mode, so the "native menu" is this retained tree, replayed through
// imgui every frame the popup is open.
type menuRow struct {
	kind    popupmenu.Kind
	id      int
	text    string
	checked bool
	enabled bool
	sub     *MenuWidget
}

// MenuWidget implements popupmenu.Widget on top of imgui.
type MenuWidget struct {
	rows      []menuRow
	onDestroy []func()
}

var _ popupmenu.Widget = (*MenuWidget)(nil)
var _ popupmenu.DestroyNotifier = (*MenuWidget)(nil)

// Toolkit hands MenuWidgets to popupmenu.BuildMenu.
type Toolkit struct{}

func (Toolkit) NewMenu() popupmenu.Widget { return &MenuWidget{} }

func (m *MenuWidget) AppendItem(id int, caption string, kind popupmenu.Kind) {
	m.rows = append(m.rows, menuRow{kind: kind, id: id, text: caption, enabled: true})
}

func (m *MenuWidget) AppendSeparator() {
	m.rows = append(m.rows, menuRow{kind: popupmenu.Separator, id: -1})
}

func (m *MenuWidget) AppendSubMenu(caption string, sub popupmenu.Widget) {
	m.rows = append(m.rows, menuRow{
		kind: popupmenu.SubMenu,
		id:   -1,
		text: caption,
		sub:  sub.(*MenuWidget),
	})
}

func (m *MenuWidget) Enable(id int, enabled bool) bool {
	if row := m.find(id); row != nil {
		row.enabled = enabled
		return true
	}
	return false
}

func (m *MenuWidget) Check(id int, checked bool) bool {
	if row := m.find(id); row != nil {
		row.checked = checked
		return true
	}
	return false
}

func (m *MenuWidget) find(id int) *menuRow {
	for i := range m.rows {
		row := &m.rows[i]
		if row.sub != nil {
			if found := row.sub.find(id); found != nil {
				return found
			}
			continue
		}
		if row.kind != popupmenu.Separator && row.id == id {
			return row
		}
	}
	return nil
}

// OnDestroy registers fn to run when the widget is destroyed.
func (m *MenuWidget) OnDestroy(fn func()) {
	m.onDestroy = append(m.onDestroy, fn)
}

// Destroy fires the destruction hooks.  Later calls do nothing.
func (m *MenuWidget) Destroy() {
	hooks := m.onDestroy
	m.onDestroy = nil
	for _, fn := range hooks {
		fn()
	}
}

// Draw replays the rows inside the current imgui popup or menu.  An
// activated row reports its command id to dispatch.
func (m *MenuWidget) Draw(dispatch func(id int)) {
	for i := range m.rows {
		row := &m.rows[i]
		switch row.kind {
		case popupmenu.Separator:
			imgui.Separator()
		case popupmenu.SubMenu:
			if imgui.BeginMenu(row.text) {
				row.sub.Draw(dispatch)
				imgui.EndMenu()
			}
		default:
			if imgui.MenuItemV(row.text, "", row.checked, row.enabled) {
				dispatch(row.id)
			}
		}
	}
}
