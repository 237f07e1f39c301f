package edgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waveland/src/editor/edgui"
	"waveland/src/popupmenu"
)

// The append/find/destroy paths never touch imgui, only Draw does, so
// they are tested here without a GUI context.

func TestMenuWidgetAppendAndFind(t *testing.T) {
	root := edgui.Toolkit{}.NewMenu().(*edgui.MenuWidget)
	sub := edgui.Toolkit{}.NewMenu().(*edgui.MenuWidget)

	sub.AppendItem(10, "44100 Hz", popupmenu.RadioItem)
	root.AppendItem(1, "Mute", popupmenu.CheckItem)
	root.AppendSeparator()
	root.AppendSubMenu("Rate", sub)

	assert.True(t, root.Check(1, true))
	assert.True(t, root.Enable(1, false))
	// ids inside sub-menus are reachable from the root
	assert.True(t, root.Check(10, true))
	assert.False(t, root.Enable(99, true))
	// separators never match an id
	assert.False(t, root.Enable(-1, true))
}

func TestMenuWidgetDestroyHooksFireOnce(t *testing.T) {
	w := edgui.Toolkit{}.NewMenu().(*edgui.MenuWidget)

	calls := 0
	w.OnDestroy(func() { calls++ })
	w.OnDestroy(func() { calls++ })

	w.Destroy()
	w.Destroy()
	assert.Equal(t, 2, calls)
}

type stubTable struct {
	popupmenu.TableBase
	populate func(t *stubTable)
	destroys int
}

func newStubTable(caption string, populate func(t *stubTable)) *stubTable {
	return &stubTable{TableBase: popupmenu.NewTableBase(caption), populate: populate}
}

func (t *stubTable) Populate() {
	if t.populate != nil {
		t.populate(t)
	}
}
func (t *stubTable) InitUserData(userData any) {}
func (t *stubTable) DestroyMenu()              { t.destroys++ }

func TestBuildMenuWithImguiToolkit(t *testing.T) {
	sub := newStubTable("More", func(t *stubTable) {
		t.AddItem(2, "Paste", func() {})
	})
	root := newStubTable("Edit", func(t *stubTable) {
		t.AddItem(1, "Cut", func() {})
		t.AddSeparator()
		t.AddSubMenu(sub)
	})

	menu := popupmenu.BuildMenu(edgui.Toolkit{}, popupmenu.NewDispatcher(), root, nil)
	w, ok := menu.Root().(*edgui.MenuWidget)
	require.True(t, ok)

	assert.True(t, menu.Enable(1, false))
	assert.True(t, menu.Check(2, true))

	// destroying the widget tears the tables down through the hook
	w.Destroy()
	assert.Equal(t, 1, root.destroys)
	assert.Equal(t, 1, sub.destroys)
}
