// Package economy is the shop's front desk. It resolves item names, runs the
// validation chain and records every applied transaction in one history so
// callers only deal in names and errors.
package economy

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/shopkeep/internal/catalog"
	"github.com/osse101/shopkeep/internal/command"
	"github.com/osse101/shopkeep/internal/domain"
	"github.com/osse101/shopkeep/internal/event"
	"github.com/osse101/shopkeep/internal/item"
	"github.com/osse101/shopkeep/internal/logger"
	"github.com/osse101/shopkeep/internal/player"
	"github.com/osse101/shopkeep/internal/validation"
)

// Service defines the shop operations available to a single player
type Service interface {
	Buy(ctx context.Context, itemName string) error
	Sell(ctx context.Context, itemName string) (decimal.Decimal, error)
	Equip(ctx context.Context, itemName string) error
	Unequip(ctx context.Context, itemName string) error
	Upgrade(ctx context.Context, itemName string, upgrades ...string) (item.Item, error)
	Undo(ctx context.Context) error
	Redo(ctx context.Context) error
	CanUndo() bool
	CanRedo() bool
	Snapshot() Snapshot
	History() []string
}

// Option customises a service
type Option func(*service)

// WithPublisher sends transaction notifications to pub
func WithPublisher(pub event.Publisher) Option {
	return func(s *service) { s.bus = pub }
}

// WithSellRatio changes the share of the price paid back on sale
func WithSellRatio(ratio decimal.Decimal) Option {
	return func(s *service) { s.sellRatio = ratio }
}

// WithChain replaces the default purchase checks
func WithChain(chain *validation.Chain) Option {
	return func(s *service) { s.chain = chain }
}

type service struct {
	player    *player.Player
	catalog   *catalog.Catalog
	bus       event.Publisher
	chain     *validation.Chain
	funds     *validation.Chain
	history   *command.History
	sellRatio decimal.Decimal
}

// NewService creates a shop session for p against c. Both are required.
func NewService(p *player.Player, c *catalog.Catalog, opts ...Option) Service {
	s := &service{
		player:    p,
		catalog:   c,
		chain:     validation.DefaultChain(c),
		funds:     validation.NewChain(validation.GoldHandler{}),
		history:   command.NewHistory(),
		sellRatio: command.DefaultSellRatio,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Undo(ctx context.Context) error {
	ctx = withRequestID(ctx)
	if !s.history.CanUndo() {
		return domain.ErrNothingToUndo
	}
	last := s.history.Descriptions()[s.history.UndoDepth()-1]
	if !s.history.Undo(ctx) {
		return fmt.Errorf(ErrMsgUndoRejectedFmt, domain.ErrCommandRejected, last)
	}
	logger.FromContext(ctx).Info(command.LogMsgUndone, "action", ActionTypeUndo, "command", last)
	return nil
}

func (s *service) Redo(ctx context.Context) error {
	ctx = withRequestID(ctx)
	if !s.history.CanRedo() {
		return domain.ErrNothingToRedo
	}
	if !s.history.Redo(ctx) {
		return fmt.Errorf(ErrMsgRedoRejectedFmt, domain.ErrCommandRejected)
	}
	logger.FromContext(ctx).Info(command.LogMsgRedone, "action", ActionTypeRedo)
	return nil
}

func (s *service) CanUndo() bool { return s.history.CanUndo() }
func (s *service) CanRedo() bool { return s.history.CanRedo() }

// History lists applied transactions, oldest first
func (s *service) History() []string { return s.history.Descriptions() }

// run executes cmd through the history and maps a refusal to an error
func (s *service) run(ctx context.Context, cmd command.Command) error {
	if !s.history.Execute(ctx, cmd) {
		return fmt.Errorf(ErrMsgRejectedFmt, domain.ErrCommandRejected, cmd.Description())
	}
	return nil
}

// check runs chain and wraps a failure so both ErrValidationFailed and the
// stage's own sentinel match with errors.Is
func check(ctx context.Context, chain *validation.Chain, req validation.Request) error {
	res := chain.ValidateVerbose(ctx, req)
	if res.Passed {
		return nil
	}
	logger.FromContext(ctx).Warn(LogMsgValidationError, "stage", res.Stage, "reason", res.Reason)
	return fmt.Errorf(ErrMsgValidationFmt, domain.ErrValidationFailed, res.Stage, res.Err)
}

// findListed looks the name up in the shop, depleted listings included, so an
// owned item reports as unavailable rather than unknown
func (s *service) findListed(name string) (item.Item, error) {
	if it, ok := s.catalog.FindByName(name); ok {
		return it, nil
	}
	for _, it := range s.catalog.Depleted() {
		if strings.EqualFold(it.Name(), name) {
			return it, nil
		}
	}
	return nil, fmt.Errorf(ErrMsgItemNotListedFmt, domain.ErrItemNotFound, name)
}

func (s *service) newRequest(ctx context.Context, it item.Item) validation.Request {
	req := validation.NewRequest(s.player, it)
	if id := logger.GetRequestID(ctx); id != "" {
		req = req.WithCorrelationID(id)
	}
	return req
}

// withRequestID tags ctx with a fresh request id unless it already has one
func withRequestID(ctx context.Context) context.Context {
	if _, ok := logger.RequestIDFromContext(ctx); ok {
		return ctx
	}
	return logger.WithRequestID(ctx, logger.GenerateRequestID())
}
