package editor

import (
	"fmt"

	"github.com/deeean/go-vector/vector2"
	"github.com/gabstv/ebiten-imgui/renderer"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jinzhu/copier"

	"waveland/src/editor/edgui"
	"waveland/src/popupmenu"
)

const renameModalID = "Track Name##rename"

// Editor is the GUI shell of the audio editor: the track list window,
// the main menu bar and the context menu plumbing.
type Editor struct {
	// Link to the ebiten-imgui/renderer.Manager instance that is
	// running the editor
	Manager *renderer.Manager

	popups *popupManager
	menus  []edgui.Menu
	tracks []*Track

	renaming   *Track
	renameText string
}

func New(manager *renderer.Manager) *Editor {
	return &Editor{
		Manager: manager,
		popups:  newPopupManager(),
	}
}

// AddMenu appends a menu to the main menu bar.
func (ed *Editor) AddMenu(menu edgui.Menu) {
	ed.menus = append(ed.menus, menu)
}

func (ed *Editor) AddTrack(name string, rate int) *Track {
	track := &Track{Name: name, Rate: rate, Format: defaultFormat}
	ed.tracks = append(ed.tracks, track)
	return track
}

func (ed *Editor) Tracks() []*Track { return ed.tracks }

// Update draws one frame of the editor UI.
func (ed *Editor) Update(deltaseconds float32) error {
	if imgui.BeginMainMenuBar() {
		for i := range ed.menus {
			ed.menus[i].Draw()
		}
		imgui.EndMainMenuBar()
	}

	if imgui.Begin("Tracks") {
		edgui.Text("%d tracks", len(ed.tracks))
		imgui.Separator()
		for i, track := range ed.tracks {
			ed.drawTrackRow(i, track)
		}
	}
	imgui.End()

	ed.drawRenameModal()
	ed.popups.Draw()
	return nil
}

func (ed *Editor) drawTrackRow(index int, track *Track) {
	edgui.WithIDPtr(track, func() {
		flags := ""
		if track.Mute {
			flags += " [M]"
		}
		if track.Solo {
			flags += " [S]"
		}
		label := fmt.Sprintf("%s  (%d Hz, %s)%s", track.Name, track.Rate, track.Format, flags)
		imgui.Selectable(label)
		if imgui.IsItemHovered() && imgui.IsMouseClicked(1) {
			pos := imgui.MousePos()
			ed.OpenTrackMenu(index, vector2.New(float64(pos.X), float64(pos.Y)))
		}
	})
}

// OpenTrackMenu pops up the wave track context menu for the track at
// index, at pos in screen coordinates.
func (ed *Editor) OpenTrackMenu(index int, pos *vector2.Vector2) {
	ctx := &trackMenuContext{ed: ed, track: ed.tracks[index], index: index}
	ed.popups.Open(popupmenu.Lookup(waveTrackMenuName), ctx, pos)
}

func (ed *Editor) drawRenameModal() {
	if ed.renaming == nil {
		return
	}
	imgui.OpenPopup(renameModalID)
	open := true
	if imgui.BeginPopupModalV(renameModalID, &open, imgui.WindowFlagsAlwaysAutoResize) {
		edgui.InputText("Name", &ed.renameText)
		edgui.WithDisabled(ed.renameText == "", func() {
			if imgui.Button("OK") && ed.renameText != "" {
				ed.renaming.Name = ed.renameText
				ed.renaming = nil
				imgui.CloseCurrentPopup()
			}
		})
		imgui.SameLine()
		if imgui.Button("Cancel") {
			ed.renaming = nil
			imgui.CloseCurrentPopup()
		}
		imgui.EndPopup()
	}
	if !open {
		ed.renaming = nil
	}
}

func (ed *Editor) beginTrackRename(track *Track) {
	ed.renaming = track
	ed.renameText = track.Name
}

func (ed *Editor) moveTrack(index, delta int) {
	target := index + delta
	if target < 0 || target >= len(ed.tracks) {
		return
	}
	ed.tracks[index], ed.tracks[target] = ed.tracks[target], ed.tracks[index]
}

func (ed *Editor) duplicateTrack(index int) {
	src := ed.tracks[index]
	dup := &Track{}
	if err := copier.Copy(dup, src); err != nil {
		return
	}
	dup.Name = src.Name + " Copy"

	tail := append([]*Track{dup}, ed.tracks[index+1:]...)
	ed.tracks = append(ed.tracks[:index+1], tail...)
}

func (ed *Editor) removeTrack(index int) {
	ed.tracks = append(ed.tracks[:index], ed.tracks[index+1:]...)
}
