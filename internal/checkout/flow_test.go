package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/arshopsy/arshopsy/internal/common"
	"github.com/arshopsy/arshopsy/internal/payments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway records charge requests and answers from a script.
type fakeGateway struct {
	calls   []payments.ChargeRequest
	errs    []error
	receipt *payments.Receipt
}

func (g *fakeGateway) Charge(_ context.Context, req payments.ChargeRequest) (*payments.Receipt, error) {
	g.calls = append(g.calls, req)
	if len(g.errs) > 0 {
		err := g.errs[0]
		g.errs = g.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	r := g.receipt
	if r == nil {
		r = &payments.Receipt{AttemptID: req.AttemptID, Reference: "ref-1", ChargedAt: time.Now()}
	}
	return r, nil
}

func beganFlow(t *testing.T, g payments.Gateway) *Flow {
	t.Helper()
	f := NewFlow(g)
	require.NoError(t, f.Begin("alice@example.org", []string{"sofa-01"}, 1000))
	return f
}

func TestBegin_Gates(t *testing.T) {
	f := NewFlow(&fakeGateway{})

	err := f.Begin("", []string{"sofa-01"}, 1000)
	assert.ErrorIs(t, err, common.ErrNotSignedIn)
	assert.Equal(t, Idle, f.State(), "modal must not open without a session")

	err = f.Begin("alice@example.org", nil, 0)
	assert.ErrorIs(t, err, common.ErrEmptyCart)
	assert.Equal(t, Idle, f.State())

	require.NoError(t, f.Begin("alice@example.org", []string{"sofa-01"}, 1000))
	assert.Equal(t, MethodSelection, f.State())

	// double Begin is rejected
	assert.ErrorIs(t, f.Begin("alice@example.org", []string{"sofa-01"}, 1000), ErrBadTransition)
}

func TestSubmit_ValidCardReachesGateway(t *testing.T) {
	g := &fakeGateway{}
	f := beganFlow(t, g)

	f.Attempt().Method = MethodCard
	f.Attempt().Card = CardDetails{Number: "4111111111111111", Name: "Alice", Expiry: "09/27", CVC: "123"}

	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, Success, f.State())
	require.Len(t, g.calls, 1)
	assert.Equal(t, "card", g.calls[0].Method)
	assert.Equal(t, 1000, g.calls[0].AmountINR)
	assert.Equal(t, []string{"sofa-01"}, g.calls[0].ItemIDs)
	assert.NotNil(t, f.Receipt())
}

func TestSubmit_ValidationFailureNeverReachesGateway(t *testing.T) {
	g := &fakeGateway{}
	f := beganFlow(t, g)

	f.Attempt().Card = CardDetails{Number: "123", Name: "Alice", Expiry: "09/27", CVC: "123"}

	err := f.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "cardNumber", verr.Field)

	assert.Equal(t, MethodSelection, f.State())
	assert.Empty(t, g.calls, "gateway must not be called on validation failure")
	assert.NotEmpty(t, f.InlineError())
}

func TestSubmit_DeclinePreservesFields(t *testing.T) {
	g := &fakeGateway{errs: []error{common.ErrPaymentDeclined}}
	f := beganFlow(t, g)

	card := CardDetails{Number: "4111111111111111", Name: "Alice", Expiry: "09/27", CVC: "123"}
	f.Attempt().Card = card

	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, common.ErrPaymentDeclined)
	assert.Equal(t, MethodSelection, f.State())
	assert.Equal(t, card, f.Attempt().Card, "fields preserved for correction")
	assert.NotEmpty(t, f.InlineError())

	// retry with the same fields succeeds
	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, Success, f.State())
	assert.Len(t, g.calls, 2)
}

func TestSelectMethod_ClearsInlineError(t *testing.T) {
	f := beganFlow(t, &fakeGateway{})

	_ = f.Submit(context.Background()) // card with empty fields: validation error
	require.NotEmpty(t, f.InlineError())

	require.NoError(t, f.SelectMethod(MethodCOD))
	assert.Empty(t, f.InlineError())

	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, Success, f.State())
}

func TestCancel(t *testing.T) {
	f := beganFlow(t, &fakeGateway{})

	require.NoError(t, f.Cancel())
	assert.Equal(t, Idle, f.State())

	// cancel is only allowed from MethodSelection
	assert.ErrorIs(t, f.Cancel(), ErrBadTransition)

	require.NoError(t, f.Begin("alice@example.org", []string{"sofa-01"}, 1000))
	require.NoError(t, f.SelectMethod(MethodCOD))
	require.NoError(t, f.Submit(context.Background()))
	assert.ErrorIs(t, f.Cancel(), ErrBadTransition, "no cancel after success")
}

func TestClose_ResetsAfterSuccess(t *testing.T) {
	f := beganFlow(t, &fakeGateway{})
	require.NoError(t, f.SelectMethod(MethodCOD))
	require.NoError(t, f.Submit(context.Background()))

	f.Close()
	assert.Equal(t, Idle, f.State())

	// a fresh attempt can start
	require.NoError(t, f.Begin("alice@example.org", []string{"chair-02"}, 1000))
}

func TestSubmit_RejectedOutsideMethodSelection(t *testing.T) {
	f := NewFlow(&fakeGateway{})
	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrBadTransition)
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		Idle: "idle", MethodSelection: "method_selection", Validating: "validating",
		Submitting: "submitting", Success: "success", Failed: "failed",
	} {
		assert.Equal(t, want, s.String())
	}
}
