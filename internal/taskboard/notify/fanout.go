package notify

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// Sink receives change events.
type Sink interface {
	Publish(ctx context.Context, e domain.Event) error
}

type namedSink struct {
	name string
	sink Sink
}

// Fanout hands each event to every sink in the order they were added. A
// failing sink is logged and does not stop the others.
type Fanout struct {
	sinks []namedSink
}

func NewFanout() *Fanout { return &Fanout{} }

// Add appends a sink. Not safe to call once events are flowing.
func (f *Fanout) Add(name string, s Sink) *Fanout {
	f.sinks = append(f.sinks, namedSink{name: name, sink: s})
	return f
}

// Publish always returns nil.
func (f *Fanout) Publish(ctx context.Context, e domain.Event) error {
	for _, s := range f.sinks {
		if err := s.sink.Publish(ctx, e); err != nil {
			slogx.FromContext(ctx).Warn("event sink failed",
				slog.String("sink", s.name),
				slog.String("event", string(e.Type)),
				slog.String("task_id", e.TaskID),
				slog.Any("error", err),
			)
		}
	}
	return nil
}
