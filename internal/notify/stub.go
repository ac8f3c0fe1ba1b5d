//go:build !linux

package notify

// New returns Discard; desktop notifications need the Linux session bus.
func New() (Notifier, error) {
	return Discard, nil
}
