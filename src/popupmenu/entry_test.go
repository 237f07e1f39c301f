package popupmenu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"waveland/src/popupmenu"
)

func TestEntryKindPredicates(t *testing.T) {
	kinds := []popupmenu.Kind{
		popupmenu.Item,
		popupmenu.RadioItem,
		popupmenu.CheckItem,
		popupmenu.Separator,
		popupmenu.SubMenu,
		popupmenu.Invalid,
	}

	items := 0
	subMenus := 0
	for _, kind := range kinds {
		e := popupmenu.Entry{Kind: kind}
		// IsItem and IsSubMenu can never both hold
		assert.False(t, e.IsItem() && e.IsSubMenu(), "kind %v", kind)
		if e.IsItem() {
			items++
		}
		if e.IsSubMenu() {
			subMenus++
		}
		assert.Equal(t, kind != popupmenu.Invalid, e.IsValid(), "kind %v", kind)
	}
	assert.Equal(t, 3, items)
	assert.Equal(t, 1, subMenus)
}
