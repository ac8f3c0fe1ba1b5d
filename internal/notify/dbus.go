//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	busName       = "org.freedesktop.Notifications"
	busPath       = "/org/freedesktop/Notifications"
	methodNotify  = busName + ".Notify"
	methodClose   = busName + ".CloseNotification"
	desktopEntry  = "sukinote"
	callFlagsNone = 0
)

// caller is the part of dbus.BusObject the notifier uses.
type caller interface {
	Call(method string, flags dbus.Flags, args ...any) *dbus.Call
}

// busNotifier talks to the notification server on the session bus.
type busNotifier struct {
	obj caller
}

// New connects to the session bus. Without one it returns Discard, so
// reminders are skipped rather than failing startup.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Discard, nil //nolint:nilerr // no session bus
	}
	return &busNotifier{obj: conn.Object(busName, busPath)}, nil
}

func hints(n Notification) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
	}
	if n.Category != "" {
		h["category"] = dbus.MakeVariant(n.Category)
	}
	return h
}

// Notify calls Notify(app_name, replaces_id, app_icon, summary, body,
// actions, hints, expire_timeout) and returns the server's id.
func (b *busNotifier) Notify(n Notification) (uint32, error) {
	call := b.obj.Call(methodNotify, callFlagsNone,
		desktopEntry, n.ReplacesID, n.Icon, n.Title, n.Body,
		[]string{}, hints(n), n.Timeout)
	if call.Err != nil {
		return 0, call.Err
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (b *busNotifier) Close(id uint32) error {
	return b.obj.Call(methodClose, callFlagsNone, id).Err
}
