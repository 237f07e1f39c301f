package popupmenu

// Table is the contract a menu table implements.  Embed TableBase to
// get Caption, List and the no-op InitMenu; Populate, InitUserData and
// DestroyMenu have no defaults and belong to the concrete table.
type Table interface {
	// Caption is the label used when this table is mounted as another
	// table's sub-menu.
	Caption() string

	// List exposes the backing entry storage.  Callers should go
	// through Entries instead, which populates it on first use.
	List() *EntryList

	// Populate fills the entry list.  It runs at most once per table,
	// on the first Entries call.
	Populate()

	// InitUserData runs before the table's entries are read, with the
	// user data given to BuildMenu.  Store it if the callbacks need it.
	InitUserData(userData any)

	// InitMenu runs after the table's entries have been appended to a
	// menu.  Enable, disable or check items here.
	InitMenu(menu *Menu)

	// DestroyMenu runs when a menu this table contributed to is torn
	// down.  Release anything stored since InitUserData.
	DestroyMenu()
}

// EntryList is the backing store for a table's rows.
type EntryList struct {
	entries   []Entry
	populated bool
}

func (l *EntryList) Append(e Entry) { l.entries = append(l.entries, e) }

// Clear forgets the rows and the populated state, so the next Entries
// call runs Populate again.
func (l *EntryList) Clear() {
	l.entries = nil
	l.populated = false
}

// Entries returns t's rows, running Populate on the first access.  An
// explicit flag, not emptiness, gates the call: a table whose Populate
// appends nothing stays a valid empty table instead of re-populating
// on every access.
func Entries(t Table) []Entry {
	l := t.List()
	if !l.populated {
		l.populated = true
		t.Populate()
	}
	return l.entries
}

// TableBase carries the caption and entry storage shared by every
// table, plus the Add helpers used inside Populate to author rows.
type TableBase struct {
	caption string
	list    EntryList
}

func NewTableBase(caption string) TableBase {
	return TableBase{caption: caption}
}

func (t *TableBase) Caption() string  { return t.caption }
func (t *TableBase) List() *EntryList { return &t.list }

// InitMenu does nothing by default.
func (t *TableBase) InitMenu(menu *Menu) {}

func (t *TableBase) Add(e Entry) { t.list.Append(e) }

func (t *TableBase) AddItem(id int, caption string, fn Callback) {
	t.Add(Entry{Kind: Item, ID: id, Caption: caption, Func: fn})
}

func (t *TableBase) AddRadioItem(id int, caption string, fn Callback) {
	t.Add(Entry{Kind: RadioItem, ID: id, Caption: caption, Func: fn})
}

func (t *TableBase) AddCheckItem(id int, caption string, fn Callback) {
	t.Add(Entry{Kind: CheckItem, ID: id, Caption: caption, Func: fn})
}

func (t *TableBase) AddSeparator() {
	t.Add(Entry{Kind: Separator, ID: -1})
}

// AddSubMenu mounts sub as a nested menu labeled with sub's caption.
// Sub-tables are long lived and shared; the entry only references sub.
func (t *TableBase) AddSubMenu(sub Table) {
	t.Add(Entry{Kind: SubMenu, ID: -1, Caption: sub.Caption(), Sub: sub})
}

func (t *TableBase) Clear() { t.list.Clear() }
