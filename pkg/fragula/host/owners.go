package host

import "github.com/BrandonKowalski/fragula/pkg/fragula/backpress"

// LifecycleOwner tells the host when the screen hosting it is destroyed.
type LifecycleOwner interface {
	OnDestroy(fn func()) (remove func())
}

// StateStoreOwner keeps state across host instances, e.g. across restarts.
type StateStoreOwner interface {
	SaveState(key string, data []byte) error
	LoadState(key string) (data []byte, ok bool)
}

// BackDispatcher delivers back presses. *backpress.Dispatcher implements it.
type BackDispatcher interface {
	Register(h backpress.Handler) (unregister func())
}

// Owners are the collaborators a host is attached to. Lifecycle and
// StateStore are required; a nil Back leaves back presses unintercepted.
type Owners struct {
	Lifecycle  LifecycleOwner
	StateStore StateStoreOwner
	Back       BackDispatcher
}

// Lifecycle is a minimal LifecycleOwner: Destroy runs the registered
// callbacks once, newest first.
type Lifecycle struct {
	callbacks []lifecycleCallback
	nextID    int
	destroyed bool
}

type lifecycleCallback struct {
	id int
	fn func()
}

// OnDestroy registers fn. If the lifecycle is already destroyed fn runs now.
func (l *Lifecycle) OnDestroy(fn func()) (remove func()) {
	if l.destroyed {
		fn()
		return func() {}
	}

	id := l.nextID
	l.nextID++
	l.callbacks = append(l.callbacks, lifecycleCallback{id: id, fn: fn})

	return func() {
		for i, c := range l.callbacks {
			if c.id == id {
				l.callbacks = append(l.callbacks[:i:i], l.callbacks[i+1:]...)
				return
			}
		}
	}
}

// Destroy runs and clears every callback.
func (l *Lifecycle) Destroy() {
	if l.destroyed {
		return
	}
	l.destroyed = true

	callbacks := l.callbacks
	l.callbacks = nil
	for i := len(callbacks) - 1; i >= 0; i-- {
		callbacks[i].fn()
	}
}

// Destroyed reports whether Destroy has run.
func (l *Lifecycle) Destroyed() bool {
	return l.destroyed
}
