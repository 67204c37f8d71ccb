//go:build !linux

package internal

// BackKeyListener is a no-op outside Linux, where evdev is unavailable.
type BackKeyListener struct{}

// ListenBackKey reports an unsupported platform unless no device is configured.
func ListenBackKey(cfg BackKeyConfig, press func()) (*BackKeyListener, error) {
	if cfg.Device == "" {
		return nil, nil
	}
	GetInternalLogger().Warn("Hardware back key is only supported on Linux", "device", cfg.Device)
	return nil, nil
}

func (l *BackKeyListener) Close() error {
	return nil
}
