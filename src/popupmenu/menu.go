package popupmenu

// attachment pairs a contributing table with the command ids it bound.
type attachment struct {
	table Table
	ids   []int
}

// Menu is the live artifact BuildMenu returns: the toolkit's root
// container plus the bookkeeping needed to detach every contributing
// table when the menu goes away.
type Menu struct {
	toolkit  Toolkit
	handler  Handler
	userData any
	root     Widget

	// contributing tables in discovery order, a parent always before
	// the sub-tables reached through it
	attachments []*attachment
	destroyed   bool
}

// Root is the toolkit container, ready for the toolkit's popup call.
func (m *Menu) Root() Widget { return m.root }

// UserData is the pointer given to BuildMenu, passed through unowned.
func (m *Menu) UserData() any { return m.userData }

func (m *Menu) Enable(id int, enabled bool) bool { return m.root.Enable(id, enabled) }
func (m *Menu) Check(id int, checked bool) bool  { return m.root.Check(id, checked) }

// attach appends table's entries to w, binding item callbacks and
// recording the table for teardown, recursing depth first into
// sub-tables.  An Invalid entry ends the table: population appends it
// as an optional terminator, and anything after it is a defect that
// must not render.
func (m *Menu) attach(w Widget, table Table) {
	table.InitUserData(m.userData)
	att := &attachment{table: table}
	m.attachments = append(m.attachments, att)

	entries := Entries(table)
loop:
	for i := range entries {
		e := &entries[i]
		switch {
		case !e.IsValid():
			break loop
		case e.Kind == Separator:
			w.AppendSeparator()
		case e.IsSubMenu():
			caption := e.Caption
			if caption == "" {
				caption = e.Sub.Caption()
			}
			// mount the container first so the sub-table's InitMenu
			// can reach its own rows through the menu
			sub := m.toolkit.NewMenu()
			w.AppendSubMenu(caption, sub)
			m.attach(sub, e.Sub)
		default:
			w.AppendItem(e.ID, e.Caption, e.Kind)
			if e.Func != nil {
				m.handler.Bind(e.ID, e.Func)
				att.ids = append(att.ids, e.ID)
			}
		}
	}

	table.InitMenu(m)
}

// Destroy notifies every contributing table and removes its event
// bindings, newest attachment first, so the deepest sub-tables detach
// before the tables that mounted them.  Calling it again does nothing.
func (m *Menu) Destroy() {
	if m.destroyed {
		return
	}
	m.destroyed = true
	for i := len(m.attachments) - 1; i >= 0; i-- {
		att := m.attachments[i]
		att.table.DestroyMenu()
		for _, id := range att.ids {
			m.handler.Unbind(id)
		}
	}
	m.attachments = nil
}
