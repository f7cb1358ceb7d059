// Package validation runs the ordered purchase checks that gate a buy:
// gold, inventory space, level, and catalog availability. The first
// failing check ends the run.
package validation

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/shopkeep/internal/item"
	"github.com/osse101/shopkeep/internal/player"
)

// Request is an immutable purchase attempt
type Request struct {
	Player        *player.Player
	Item          item.Item
	Price         decimal.Decimal
	CorrelationID string
}

// NewRequest prices the purchase at the item's own price and assigns a fresh
// correlation id
func NewRequest(p *player.Player, it item.Item) Request {
	req := Request{
		Player:        p,
		Item:          it,
		CorrelationID: uuid.NewString(),
	}
	if it != nil {
		req.Price = it.Price()
	}
	return req
}

// WithPrice returns a copy of the request charging price instead
func (r Request) WithPrice(price decimal.Decimal) Request {
	r.Price = price
	return r
}

// WithCorrelationID returns a copy of the request carrying id
func (r Request) WithCorrelationID(id string) Request {
	r.CorrelationID = id
	return r
}
