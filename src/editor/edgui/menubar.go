package edgui

import "github.com/inkyblackness/imgui-go/v4"

// MenuItem is one row of a main menu bar menu.  Popup context menus
// use MenuWidget instead; the bar menus are static enough that plain
// closures serve them.
type MenuItem struct {
	Text     string
	Action   func(self *MenuItem)
	Selected bool
	Disabled bool
}

type Menu struct {
	Name  string
	Items []*MenuItem
}

func (m *Menu) Draw() {
	if imgui.BeginMenu(m.Name) {
		defer imgui.EndMenu()
		for _, item := range m.Items {
			if imgui.MenuItemV(item.Text, "", item.Selected, !item.Disabled) {
				if item.Action != nil {
					item.Action(item)
				}
			}
		}
	}
}
