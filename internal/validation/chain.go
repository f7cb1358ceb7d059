package validation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/shopkeep/internal/catalog"
	"github.com/osse101/shopkeep/internal/domain"
	"github.com/osse101/shopkeep/internal/logger"
)

// Result is the outcome of a chain run. Stage and Reason are empty when
// every check passed.
type Result struct {
	Passed bool
	Stage  string
	Reason string
	// Err wraps the domain sentinel of the failed stage
	Err error
}

// Chain runs handlers in order and stops at the first failure
type Chain struct {
	handlers []Handler
}

// NewChain builds a chain running handlers in the given order
func NewChain(handlers ...Handler) *Chain {
	return &Chain{handlers: handlers}
}

// DefaultChain builds the shop's checks: gold, space, level, availability
func DefaultChain(c *catalog.Catalog) *Chain {
	return NewChain(
		GoldHandler{},
		SpaceHandler{},
		LevelHandler{Requirement: MinimumLevel},
		AvailabilityHandler{Catalog: c},
	)
}

// Stages lists the stage names in run order
func (c *Chain) Stages() []string {
	stages := make([]string, 0, len(c.handlers))
	for _, h := range c.handlers {
		stages = append(stages, h.Stage())
	}
	return stages
}

// Validate reports whether every check passes
func (c *Chain) Validate(ctx context.Context, req Request) bool {
	return c.ValidateVerbose(ctx, req).Passed
}

// ValidateVerbose runs the checks and names the stage that failed
func (c *Chain) ValidateVerbose(ctx context.Context, req Request) Result {
	log := logger.FromContext(ctx).With("correlation_id", req.CorrelationID)

	if req.Player == nil {
		return fail(log, StageRequest, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ReasonNilPlayer))
	}
	if req.Item == nil {
		return fail(log, StageRequest, fmt.Errorf("%w: %s", domain.ErrNilItem, ReasonNilItem))
	}

	for _, h := range c.handlers {
		if err := h.Check(ctx, req); err != nil {
			return fail(log, h.Stage(), err)
		}
		log.Debug(LogMsgCheckPassed, "stage", h.Stage(), "item", req.Item.Name())
	}

	log.Debug(LogMsgAllPassed, "item", req.Item.Name(), "price", req.Price.String())
	return Result{Passed: true}
}

func fail(log *slog.Logger, stage string, err error) Result {
	log.Debug(LogMsgCheckFailed, "stage", stage, "reason", err.Error())
	return Result{Passed: false, Stage: stage, Reason: err.Error(), Err: err}
}
