// Package notify sends anniversary reminders as desktop notifications
// over the freedesktop D-Bus interface.
package notify

import (
	"fmt"
	"time"

	"github.com/llehouerou/sukinote/internal/notes"
)

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// reminderIcon is a freedesktop icon name present in common themes.
const reminderIcon = "x-office-calendar"

// ReminderCategory is the freedesktop category hint of reminders.
const ReminderCategory = "x-sukinote.anniversary"

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // summary text (required)
	Body       string  // body text (optional)
	Icon       string  // icon name or image path (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
	Category   string  // freedesktop category hint (optional)
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its id. It returns 0 and a
	// nil error when notifications are unavailable.
	Notify(n Notification) (uint32, error)
	// Close withdraws a notification by id.
	Close(id uint32) error
}

// Reminder builds the notification for an anniversary note falling on
// today.
func Reminder(n notes.Note, today time.Time) Notification {
	body := "Today"
	if years := n.Years(today); n.Annual && years > 0 {
		unit := "years"
		if years == 1 {
			unit = "year"
		}
		body = fmt.Sprintf("%d %s since %s", years, unit, n.AnniversaryDate.Format("Jan 2, 2006"))
	}
	if n.Content != "" {
		body += "\n" + n.Content
	}
	return Notification{
		Title:    n.Category.Icon() + " " + n.Title,
		Body:     body,
		Icon:     reminderIcon,
		Timeout:  -1,
		Urgency:  UrgencyNormal,
		Category: ReminderCategory,
	}
}

// Discard drops every notification. It stands in where there is no
// notification server.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Notification) (uint32, error) { return 0, nil }

func (discard) Close(uint32) error { return nil }

// SendReminders notifies every anniversary in list falling on today and
// returns how many were sent. It stops at the first error.
func SendReminders(nt Notifier, list []notes.Note, today time.Time) (int, error) {
	sent := 0
	for _, n := range notes.DueOn(list, today) {
		if _, err := nt.Notify(Reminder(n, today)); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}
