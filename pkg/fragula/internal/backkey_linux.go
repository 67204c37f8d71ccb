//go:build linux

package internal

import (
	"fmt"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// BackKeyListener reads a hardware key from an evdev device and reports
// presses of the configured key code. press runs on the listener goroutine
// and must only hand the press off to the event loop.
type BackKeyListener struct {
	device  *evdev.InputDevice
	code    evdev.EvCode
	press   func()
	running *atomic.Bool
	done    chan struct{}
}

// ListenBackKey opens cfg.Device and starts reading it. It returns nil and no
// error when no device is configured.
func ListenBackKey(cfg BackKeyConfig, press func()) (*BackKeyListener, error) {
	if cfg.Device == "" {
		return nil, nil
	}

	device, err := evdev.Open(cfg.Device)
	if err != nil {
		return nil, fmt.Errorf("open back key device %s: %w", cfg.Device, err)
	}

	l := &BackKeyListener{
		device:  device,
		code:    evdev.EvCode(cfg.Code),
		press:   press,
		running: atomic.NewBool(true),
		done:    make(chan struct{}),
	}
	go l.run()

	GetInternalLogger().Debug("Listening for hardware back key", "device", cfg.Device, "code", cfg.Code)
	return l, nil
}

func (l *BackKeyListener) run() {
	defer close(l.done)

	for l.running.Load() {
		event, err := l.device.ReadOne()
		if err != nil {
			if l.running.Load() {
				GetInternalLogger().Error("Failed to read back key device", "error", err)
			}
			return
		}

		// Value 1 is a press; 0 is release and 2 is autorepeat.
		if event.Type == evdev.EV_KEY && event.Code == l.code && event.Value == 1 {
			l.press()
		}
	}
}

// Close stops the listener and waits for its goroutine to exit.
func (l *BackKeyListener) Close() error {
	if l == nil || !l.running.Swap(false) {
		return nil
	}
	err := l.device.Close()
	<-l.done
	return err
}
