package command

import (
	"context"

	"github.com/osse101/shopkeep/internal/logger"
)

// History is a linear undo/redo log. Only applied commands are recorded and
// any new command discards the redo stack.
//
// History is not safe for concurrent use.
type History struct {
	undo []Command
	redo []Command
}

func NewHistory() *History {
	return &History{}
}

// Execute runs cmd and records it when it changed state
func (h *History) Execute(ctx context.Context, cmd Command) bool {
	log := logger.FromContext(ctx)

	if cmd == nil {
		log.Warn(LogMsgNilCommand)
		return false
	}
	if !cmd.Execute(ctx) {
		log.Debug(LogMsgCommandRejected, "command", cmd.Description())
		return false
	}
	h.undo = append(h.undo, cmd)
	h.redo = h.redo[:0]
	return true
}

// Undo reverts the most recent command. A command whose undo is refused
// stays on the undo stack.
func (h *History) Undo(ctx context.Context) bool {
	log := logger.FromContext(ctx)

	cmd, ok := peek(h.undo)
	if !ok {
		log.Info(LogMsgNothingToUndo)
		return false
	}
	if !cmd.Undo(ctx) {
		log.Warn(LogMsgUndoFailed, "command", cmd.Description())
		return false
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, cmd)
	return true
}

// Redo re-executes the most recently undone command
func (h *History) Redo(ctx context.Context) bool {
	log := logger.FromContext(ctx)

	cmd, ok := peek(h.redo)
	if !ok {
		log.Info(LogMsgNothingToRedo)
		return false
	}
	if !cmd.Execute(ctx) {
		log.Warn(LogMsgRedoRejected, "command", cmd.Description())
		return false
	}
	log.Debug(LogMsgRedone, "command", cmd.Description())
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, cmd)
	return true
}

func (h *History) CanUndo() bool  { return len(h.undo) > 0 }
func (h *History) CanRedo() bool  { return len(h.redo) > 0 }
func (h *History) UndoDepth() int { return len(h.undo) }
func (h *History) RedoDepth() int { return len(h.redo) }

// Descriptions lists the undo stack, oldest first
func (h *History) Descriptions() []string {
	out := make([]string, len(h.undo))
	for i, cmd := range h.undo {
		out[i] = cmd.Description()
	}
	return out
}

// Clear drops both stacks without touching state
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

func peek(stack []Command) (Command, bool) {
	if len(stack) == 0 {
		return nil, false
	}
	return stack[len(stack)-1], true
}
