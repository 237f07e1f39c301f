// popupmenu builds live context menus from declarative menu tables and
// wires the event plumbing that routes an activated item back to the
// table that declared it.  The widget toolkit stays behind the Widget
// and Toolkit interfaces, so the package itself never draws anything.
package popupmenu

// Kind tags the role of a single menu row.
type Kind int

const (
	Item Kind = iota
	RadioItem
	CheckItem
	Separator
	SubMenu
	// Invalid is a sentinel marking the end of a table.  It is never
	// rendered; the builder stops reading a table's entries when it
	// sees one.
	Invalid
)

// Callback runs when the row it was bound to is activated.
type Callback func()

// Entry describes one row of a menu table: a selectable item, a
// separator, or another table mounted as a sub-menu.  Non-separator
// rows carry either Func or Sub, never both.
type Entry struct {
	Kind Kind

	// ID is the command identifier the row's callback is bound with.
	// Separators and sub-menus use -1.
	ID int

	Caption string
	Func    Callback
	Sub     Table
}

func (e *Entry) IsItem() bool {
	return e.Kind == Item || e.Kind == RadioItem || e.Kind == CheckItem
}

func (e *Entry) IsSubMenu() bool { return e.Kind == SubMenu }

func (e *Entry) IsValid() bool { return e.Kind != Invalid }
