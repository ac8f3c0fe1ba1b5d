// Package analytics records usage events. Events go to the structured log;
// there is no remote collector.
package analytics

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/llehouerou/sukinote/internal/notes"
)

// Event names.
const (
	EventSaveNote     = "save_note"
	EventDeleteNote   = "delete_note"
	EventSelectFilter = "select_filter"
	EventSelectSort   = "select_sort"
	EventSearchNotes  = "search_notes"
	EventCopyNote     = "copy_note"
)

// Client is the sink for analytics events.
type Client interface {
	LogEvent(name string, params map[string]any)
	LogSaveNote(n notes.Note)
	SetUserProperty(name, value string)
}

// Logger writes events to a slog.Logger at info level.
type Logger struct {
	log   *slog.Logger
	props map[string]string
}

// New returns a client logging to l. A nil logger discards events.
func New(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	return &Logger{log: l.With("component", "analytics"), props: map[string]string{}}
}

// LogEvent records name with params. Keys are emitted in sorted order.
func (c *Logger) LogEvent(name string, params map[string]any) {
	attrs := make([]slog.Attr, 0, len(params)+len(c.props)+1)
	attrs = append(attrs, slog.String("event", name))
	for _, k := range slices.Sorted(maps.Keys(params)) {
		attrs = append(attrs, slog.Any(k, params[k]))
	}
	for _, k := range slices.Sorted(maps.Keys(c.props)) {
		attrs = append(attrs, slog.String("user."+k, c.props[k]))
	}
	c.log.LogAttrs(context.Background(), slog.LevelInfo, "analytics event", attrs...)
}

// LogSaveNote records a note save with the note's summary parameters.
func (c *Logger) LogSaveNote(n notes.Note) {
	c.LogEvent(EventSaveNote, n.AnalyticsParams())
}

// SetUserProperty attaches a property to every later event. An empty value
// removes it.
func (c *Logger) SetUserProperty(name, value string) {
	if value == "" {
		delete(c.props, name)
		return
	}
	c.props[name] = value
}

// Nop discards everything.
type Nop struct{}

func (Nop) LogEvent(string, map[string]any) {}
func (Nop) LogSaveNote(notes.Note)          {}
func (Nop) SetUserProperty(string, string)  {}

var (
	_ Client = (*Logger)(nil)
	_ Client = Nop{}
)
