package popupmenu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"waveland/src/popupmenu"
)

func TestDispatcher(t *testing.T) {
	d := popupmenu.NewDispatcher()

	fired := []int{}
	d.Bind(1, func() { fired = append(fired, 1) })
	d.Bind(2, func() { fired = append(fired, 2) })

	assert.True(t, d.Dispatch(2))
	assert.True(t, d.Dispatch(1))
	assert.False(t, d.Dispatch(3))
	assert.Equal(t, []int{2, 1}, fired)

	d.Unbind(1)
	assert.False(t, d.Dispatch(1))
	assert.Equal(t, []int{2, 1}, fired)
}

func TestDispatcherLastBindWins(t *testing.T) {
	d := popupmenu.NewDispatcher()

	got := ""
	d.Bind(1, func() { got = "first" })
	d.Bind(1, func() { got = "second" })

	assert.True(t, d.Dispatch(1))
	assert.Equal(t, "second", got)
}
