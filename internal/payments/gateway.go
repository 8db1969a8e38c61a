// Package payments defines the payment gateway boundary. The storefront only
// depends on a success/decline signal; concrete gateways live behind the
// Gateway interface so the simulated implementation can later be swapped for
// a real processor without touching the checkout flow.
package payments

import (
	"context"
	"time"

	"github.com/arshopsy/arshopsy/internal/common"
	"github.com/google/uuid"
)

// ChargeRequest describes a single payment attempt.
type ChargeRequest struct {
	AttemptID string
	Email     string
	Method    string
	AmountINR int
	ItemIDs   []string
}

// Receipt is returned by a gateway on a successful charge.
type Receipt struct {
	AttemptID string
	Reference string
	ChargedAt time.Time
}

// Gateway processes charges. Implementations must honor ctx and return
// common.ErrPaymentDeclined for a declined (but well-formed) charge.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*Receipt, error)
}

// SimulatedGateway stands in for a real payment processor: it waits a fixed
// delay and then approves the charge with probability SuccessRate,
// independent of the request contents.
type SimulatedGateway struct {
	Delay       time.Duration
	SuccessRate float64

	// draw returns a value in [0, 1). Overridable in tests.
	draw func() float64
}

// NewSimulatedGateway returns a gateway with the reference behavior:
// 2 second processing delay, 90% success.
func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{Delay: 2 * time.Second, SuccessRate: 0.9}
}

func (g *SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (*Receipt, error) {
	if g.Delay > 0 {
		t := time.NewTimer(g.Delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if g.outcome() >= g.SuccessRate {
		return nil, common.ErrPaymentDeclined
	}

	return &Receipt{
		AttemptID: req.AttemptID,
		Reference: uuid.NewString(),
		ChargedAt: time.Now(),
	}, nil
}

func (g *SimulatedGateway) outcome() float64 {
	if g.draw != nil {
		return g.draw()
	}
	return defaultDraw()
}
