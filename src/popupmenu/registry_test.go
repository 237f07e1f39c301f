package popupmenu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"waveland/src/popupmenu"
)

func TestRegistry(t *testing.T) {
	first := newFakeTable("First", nil)
	second := newFakeTable("Second", nil)

	popupmenu.Register("registry-test", first)
	// first registration wins
	popupmenu.Register("registry-test", second)
	popupmenu.Register("registry-test-other", second)

	assert.Same(t, popupmenu.Table(first), popupmenu.Lookup("registry-test"))
	assert.Same(t, popupmenu.Table(second), popupmenu.Lookup("registry-test-other"))
	assert.Nil(t, popupmenu.Lookup("registry-test-missing"))

	names := popupmenu.Names()
	assert.Contains(t, names, "registry-test")
	assert.Contains(t, names, "registry-test-other")
	assert.IsIncreasing(t, names)
}
