package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/arshopsy/arshopsy/internal/common"
	"github.com/arshopsy/arshopsy/internal/payments"
	"github.com/google/uuid"
)

// State is the modal's position in its lifecycle.
type State int

const (
	// Idle: no attempt in progress, modal closed.
	Idle State = iota
	// MethodSelection: modal open, collecting method and fields.
	MethodSelection
	// Validating: structural checks running. Transient within Submit.
	Validating
	// Submitting: charge in flight. Transient within Submit.
	Submitting
	// Success: charge approved. Terminal for the attempt.
	Success
	// Failed: charge declined. The flow immediately re-enters
	// MethodSelection so the user can retry or edit fields.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case MethodSelection:
		return "method_selection"
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ErrBadTransition is returned when an operation is not permitted from the
// flow's current state, e.g. Cancel while a charge is in flight.
var ErrBadTransition = errors.New("operation not allowed in current state")

// Flow drives one checkout modal. It owns the transient Attempt, talks to
// the gateway, and reports the outcome to the caller; clearing the wishlist
// on success is the caller's responsibility.
type Flow struct {
	state   State
	attempt Attempt
	gateway payments.Gateway

	email     string
	itemIDs   []string
	amountINR int

	inlineErr string
	receipt   *payments.Receipt
}

// NewFlow returns an Idle flow bound to the given gateway.
func NewFlow(gateway payments.Gateway) *Flow {
	return &Flow{state: Idle, gateway: gateway}
}

// State returns the current state.
func (f *Flow) State() State { return f.state }

// InlineError returns the message shown next to the form, or "".
func (f *Flow) InlineError() string { return f.inlineErr }

// Receipt returns the gateway receipt after a successful submit, else nil.
func (f *Flow) Receipt() *payments.Receipt { return f.receipt }

// Attempt exposes the current attempt for rendering. Field values survive a
// failed submit so the user can correct them.
func (f *Flow) Attempt() *Attempt { return &f.attempt }

// Begin opens the modal for the given shopper and cart. The email must
// belong to an active session and the cart must not be empty; both gates
// are enforced here as well as at the call site.
func (f *Flow) Begin(email string, itemIDs []string, amountINR int) error {
	if f.state != Idle {
		return ErrBadTransition
	}
	if email == "" {
		return common.ErrNotSignedIn
	}
	if len(itemIDs) == 0 {
		return common.ErrEmptyCart
	}
	f.attempt = Attempt{ID: uuid.NewString(), Method: MethodCard}
	f.email = email
	f.itemIDs = itemIDs
	f.amountINR = amountINR
	f.inlineErr = ""
	f.receipt = nil
	f.state = MethodSelection
	return nil
}

// SelectMethod switches the active payment method. Entered field values for
// other methods are kept.
func (f *Flow) SelectMethod(m Method) error {
	if f.state != MethodSelection {
		return ErrBadTransition
	}
	f.attempt.Method = m
	f.inlineErr = ""
	return nil
}

// Submit validates the attempt and, if it passes, performs the single charge.
//
// On a validation failure the flow stays in MethodSelection, the field-level
// message becomes the inline error, and the charge is never attempted. On a
// declined charge the flow passes through Failed and settles back in
// MethodSelection with the fields preserved. On success the flow reaches
// Success and the modal is done.
func (f *Flow) Submit(ctx context.Context) error {
	if f.state != MethodSelection {
		return ErrBadTransition
	}

	f.state = Validating
	if err := f.attempt.Validate(); err != nil {
		f.state = MethodSelection
		f.inlineErr = err.Error()
		return err
	}

	f.state = Submitting
	receipt, err := f.gateway.Charge(ctx, payments.ChargeRequest{
		AttemptID: f.attempt.ID,
		Email:     f.email,
		Method:    string(f.attempt.Method),
		AmountINR: f.amountINR,
		ItemIDs:   f.itemIDs,
	})
	if err != nil {
		// Failed is not a resting state: the flow settles back in
		// MethodSelection with the entered fields intact.
		f.inlineErr = "payment processing failed, please check your details"
		f.state = MethodSelection
		return err
	}

	f.receipt = receipt
	f.inlineErr = ""
	f.state = Success
	return nil
}

// Cancel closes the modal without charging. Permitted from MethodSelection
// only; a submit in flight cannot be cancelled.
func (f *Flow) Cancel() error {
	if f.state != MethodSelection {
		return ErrBadTransition
	}
	f.attempt = Attempt{}
	f.inlineErr = ""
	f.state = Idle
	return nil
}

// Close resets a finished (Success) flow back to Idle for reuse.
func (f *Flow) Close() {
	if f.state == Success {
		f.attempt = Attempt{}
		f.state = Idle
	}
}
