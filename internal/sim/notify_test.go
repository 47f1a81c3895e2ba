package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagExpiry(t *testing.T) {
	var f Flag
	assert.False(t, f.On())

	f.Set(10)
	assert.True(t, f.On())

	f.Expire(9)
	assert.True(t, f.On())
	f.Expire(10)
	assert.False(t, f.On())
}

// A stale token must never clear a newer flag state.
func TestFlagStaleTokenIgnored(t *testing.T) {
	var f Flag
	old := f.Set(10)
	f.Set(100)

	f.ClearIf(old)
	assert.True(t, f.On(), "stale token cleared a newer flag")

	f.Expire(50) // newer deadline not reached yet
	assert.True(t, f.On())
}

func TestNotifierReplaces(t *testing.T) {
	var n Notifier
	assert.Empty(t, n.Current())

	n.Post("first", 100)
	assert.Equal(t, "first", n.Current())

	n.Post("second", 200)
	assert.Equal(t, "second", n.Current())

	// The first banner's deadline passing must not dismiss the second.
	n.Expire(100)
	assert.Equal(t, "second", n.Current())

	n.Expire(200)
	assert.Empty(t, n.Current())
}

func TestNotifierStaleDismissIgnored(t *testing.T) {
	var n Notifier
	old := n.Post("first", 100)
	n.Post("second", 200)

	n.DismissIf(old)
	assert.Equal(t, "second", n.Current())
}
