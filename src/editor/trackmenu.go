package editor

import (
	"fmt"

	"waveland/src/popupmenu"
)

// Track is the editor's model of one audio track.
type Track struct {
	Name   string
	Rate   int
	Format string
	Mute   bool
	Solo   bool
}

var trackRates = []int{8000, 11025, 16000, 22050, 32000, 44100, 48000, 96000}

var trackFormats = []string{"16-bit PCM", "24-bit PCM", "32-bit float"}

const defaultFormat = "32-bit float"

// Command ids for the wave track popup.  Ids must stay unique across
// every table reachable from one popup; the sub-menus block out their
// own ranges.
const (
	onRenameID = iota + 1
	onMoveUpID
	onMoveDownID
	onMuteID
	onSoloID
	onDuplicateID
	onRemoveID

	rateIDFirst   = 100
	formatIDFirst = 200
)

// Registry names for the shared menu tables.
const (
	waveTrackMenuName = "WaveTrackMenu"
	rateMenuName      = "RateMenu"
	formatMenuName    = "FormatMenu"
)

// trackMenuContext is the user data handed to BuildMenu: which track
// the popup was opened on, and the editor that owns it.  Every table
// in the popup sees the same context.
type trackMenuContext struct {
	ed    *Editor
	track *Track
	index int
}

var (
	waveTrackTable = &waveTrackMenuTable{TableBase: popupmenu.NewTableBase("Wave Track")}
	rateTable      = &rateMenuTable{TableBase: popupmenu.NewTableBase("Rate")}
	formatTable    = &formatMenuTable{TableBase: popupmenu.NewTableBase("Format")}
)

func init() {
	popupmenu.Register(waveTrackMenuName, waveTrackTable)
	popupmenu.Register(rateMenuName, rateTable)
	popupmenu.Register(formatMenuName, formatTable)
}

// waveTrackMenuTable is the root context menu for a track row.  One
// long lived instance serves every popup; the bound track changes per
// build through InitUserData.
type waveTrackMenuTable struct {
	popupmenu.TableBase
	ctx *trackMenuContext
}

func (t *waveTrackMenuTable) InitUserData(userData any) {
	t.ctx = userData.(*trackMenuContext)
}

func (t *waveTrackMenuTable) DestroyMenu() { t.ctx = nil }

func (t *waveTrackMenuTable) Populate() {
	t.AddItem(onRenameID, "Name...", func() { t.ctx.ed.beginTrackRename(t.ctx.track) })
	t.AddItem(onMoveUpID, "Move Track Up", func() { t.ctx.ed.moveTrack(t.ctx.index, -1) })
	t.AddItem(onMoveDownID, "Move Track Down", func() { t.ctx.ed.moveTrack(t.ctx.index, +1) })
	t.AddSeparator()
	t.AddCheckItem(onMuteID, "Mute", func() { t.ctx.track.Mute = !t.ctx.track.Mute })
	t.AddCheckItem(onSoloID, "Solo", func() { t.ctx.track.Solo = !t.ctx.track.Solo })
	t.AddSeparator()
	t.AddSubMenu(popupmenu.Lookup(rateMenuName))
	t.AddSubMenu(popupmenu.Lookup(formatMenuName))
	t.AddSeparator()
	t.AddItem(onDuplicateID, "Duplicate Track", func() { t.ctx.ed.duplicateTrack(t.ctx.index) })
	t.AddItem(onRemoveID, "Remove Track", func() { t.ctx.ed.removeTrack(t.ctx.index) })
}

func (t *waveTrackMenuTable) InitMenu(menu *popupmenu.Menu) {
	menu.Enable(onMoveUpID, t.ctx.index > 0)
	menu.Enable(onMoveDownID, t.ctx.index < len(t.ctx.ed.tracks)-1)
	menu.Check(onMuteID, t.ctx.track.Mute)
	menu.Check(onSoloID, t.ctx.track.Solo)
}

// rateMenuTable is the shared Rate sub-menu.
type rateMenuTable struct {
	popupmenu.TableBase
	ctx *trackMenuContext
}

func (t *rateMenuTable) InitUserData(userData any) {
	t.ctx = userData.(*trackMenuContext)
}

func (t *rateMenuTable) DestroyMenu() { t.ctx = nil }

func (t *rateMenuTable) Populate() {
	for i, rate := range trackRates {
		rate := rate
		t.AddRadioItem(rateIDFirst+i, fmt.Sprintf("%d Hz", rate), func() {
			t.ctx.track.Rate = rate
		})
	}
}

func (t *rateMenuTable) InitMenu(menu *popupmenu.Menu) {
	for i, rate := range trackRates {
		menu.Check(rateIDFirst+i, t.ctx.track.Rate == rate)
	}
}

// formatMenuTable is the shared Sample Format sub-menu.
type formatMenuTable struct {
	popupmenu.TableBase
	ctx *trackMenuContext
}

func (t *formatMenuTable) InitUserData(userData any) {
	t.ctx = userData.(*trackMenuContext)
}

func (t *formatMenuTable) DestroyMenu() { t.ctx = nil }

func (t *formatMenuTable) Populate() {
	for i, format := range trackFormats {
		format := format
		t.AddRadioItem(formatIDFirst+i, format, func() {
			t.ctx.track.Format = format
		})
	}
}

func (t *formatMenuTable) InitMenu(menu *popupmenu.Menu) {
	for i, format := range trackFormats {
		menu.Check(formatIDFirst+i, t.ctx.track.Format == format)
	}
}
