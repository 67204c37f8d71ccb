package backpress

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchNewestFirst(t *testing.T) {
	d := NewDispatcher()

	var calls []string
	d.Register(func() bool { calls = append(calls, "first"); return true })
	d.Register(func() bool { calls = append(calls, "second"); return false })

	assert.True(t, d.Dispatch())
	assert.Equal(t, []string{"second", "first"}, calls)
}

func TestDispatchUnhandled(t *testing.T) {
	d := NewDispatcher()
	assert.False(t, d.HasHandlers())
	assert.False(t, d.Dispatch())

	d.Register(func() bool { return false })
	assert.True(t, d.HasHandlers())
	assert.False(t, d.Dispatch())
}

func TestUnregister(t *testing.T) {
	d := NewDispatcher()

	count := 0
	unregister := d.Register(func() bool { count++; return true })
	unregister()
	unregister()

	assert.False(t, d.HasHandlers())
	assert.False(t, d.Dispatch())
	assert.Zero(t, count)
}

func TestHandlerMayUnregisterItself(t *testing.T) {
	d := NewDispatcher()

	var unregister func()
	unregister = d.Register(func() bool {
		unregister()
		return true
	})

	assert.True(t, d.Dispatch())
	assert.False(t, d.Dispatch())
}

func TestPostAndDrain(t *testing.T) {
	d := NewDispatcher()

	remaining := 2
	d.Register(func() bool {
		if remaining == 0 {
			return false
		}
		remaining--
		return true
	})

	var wg sync.WaitGroup
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Post()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, d.Drain())
	assert.Zero(t, d.Drain())
}
