package popupmenu

// Widget is the toolkit's menu container.  The builder only appends
// rows to it; showing the menu is the caller's business.
type Widget interface {
	// AppendItem adds a selectable row.  kind is Item, RadioItem or
	// CheckItem.
	AppendItem(id int, caption string, kind Kind)
	AppendSeparator()
	AppendSubMenu(caption string, sub Widget)

	// Enable and Check adjust the row bound to id, searching nested
	// sub-menus too, and report whether the id was found.  InitMenu
	// implementations use these to reflect application state.
	Enable(id int, enabled bool) bool
	Check(id int, checked bool) bool
}

// Toolkit creates native menu containers.
type Toolkit interface {
	NewMenu() Widget
}

// DestroyNotifier is implemented by widgets that can report their own
// destruction.  When the root widget implements it, BuildMenu hooks
// the menu teardown in, so toolkit side disposal also detaches every
// contributing table.
type DestroyNotifier interface {
	OnDestroy(fn func())
}

// BuildMenu walks table and its sub-tables depth first, building one
// live menu.  Each table sees InitUserData before its entries are
// read, has its item callbacks bound by id through parent, and sees
// InitMenu once its rows are all appended.  userData is passed through
// to every reached table; no ownership of it is assumed.  The caller
// owns the returned menu and must see that Destroy runs when the
// toolkit discards it (automatic when the root widget implements
// DestroyNotifier).
func BuildMenu(tk Toolkit, parent Handler, table Table, userData any) *Menu {
	menu := &Menu{
		toolkit:  tk,
		handler:  parent,
		userData: userData,
		root:     tk.NewMenu(),
	}
	menu.attach(menu.root, table)
	if n, ok := menu.root.(DestroyNotifier); ok {
		n.OnDestroy(menu.Destroy)
	}
	return menu
}

// ExtendMenu appends otherTable's entries to the end of a menu built
// by BuildMenu, using the same per-entry walk.  The menu's original
// user data context applies to the whole popup, so otherTable's
// InitUserData receives it rather than anything new.  otherTable joins
// the menu's teardown list.  Menus not produced by BuildMenu cannot be
// extended; there is no teardown list to join.
func ExtendMenu(menu *Menu, otherTable Table) {
	menu.attach(menu.root, otherTable)
}
