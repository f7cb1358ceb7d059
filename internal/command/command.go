// Package command implements the shop's reversible transactions and the
// linear undo/redo history that records them.
package command

import (
	"context"

	"github.com/osse101/shopkeep/internal/event"
)

// Command is a reversible transaction. Execute and Undo report whether state
// changed; a guarded no-op logs a warning and returns false.
type Command interface {
	Execute(ctx context.Context) bool
	Undo(ctx context.Context) bool
	Description() string
	Executed() bool
}

// state is embedded by every command
type state struct {
	executed bool
	bus      event.Publisher
}

func (s *state) Executed() bool { return s.executed }

// publish runs fn when a publisher is configured
func (s *state) publish(fn func(event.Publisher)) {
	if s.bus != nil {
		fn(s.bus)
	}
}
