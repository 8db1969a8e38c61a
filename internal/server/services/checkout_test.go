package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/arshopsy/arshopsy/internal/checkout"
	"github.com/arshopsy/arshopsy/internal/common"
	"github.com/arshopsy/arshopsy/internal/payments"
)

type fakeGateway struct {
	lastReq payments.ChargeRequest
	calls   int
	err     error
}

func (g *fakeGateway) Charge(ctx context.Context, req payments.ChargeRequest) (*payments.Receipt, error) {
	g.calls++
	g.lastReq = req
	if g.err != nil {
		return nil, g.err
	}
	return &payments.Receipt{AttemptID: req.AttemptID, Reference: "PAY-TEST"}, nil
}

func newCheckoutService(t *testing.T, gw payments.Gateway) (*CheckoutService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewCheckoutService(db, newInMemoryManager(), gw), mock
}

func validCardAttempt() *checkout.Attempt {
	return &checkout.Attempt{
		Method: checkout.MethodCard,
		Card: checkout.CardDetails{
			Number: "4111111111111111",
			Name:   "Alice",
			Expiry: "09/27",
			CVC:    "123",
		},
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	gw := &fakeGateway{}
	s, mock := newCheckoutService(t, gw)
	mock.ExpectBegin()
	mock.ExpectCommit()

	order, err := s.PlaceOrder(context.Background(), "u-1", "alice@example.com",
		validCardAttempt(), []string{"sofa-01", "lamp-03"})
	if err != nil {
		t.Fatalf("PlaceOrder error: %v", err)
	}
	if order.ID == "" || order.Reference != "PAY-TEST" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.AmountINR != 2000 {
		t.Fatalf("amount = %d, want 2000", order.AmountINR)
	}
	if gw.lastReq.Email != "alice@example.com" || gw.lastReq.Method != "card" {
		t.Fatalf("unexpected charge request: %+v", gw.lastReq)
	}
	if gw.lastReq.AttemptID == "" {
		t.Fatal("expected an attempt id to be assigned")
	}
}

func TestPlaceOrder_NotSignedIn(t *testing.T) {
	gw := &fakeGateway{}
	s, _ := newCheckoutService(t, gw)

	_, err := s.PlaceOrder(context.Background(), "", "alice@example.com",
		validCardAttempt(), []string{"sofa-01"})
	if !errors.Is(err, common.ErrNotSignedIn) {
		t.Fatalf("want common.ErrNotSignedIn, got %v", err)
	}
	if gw.calls != 0 {
		t.Fatal("gateway must not be called")
	}
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	gw := &fakeGateway{}
	s, _ := newCheckoutService(t, gw)

	_, err := s.PlaceOrder(context.Background(), "u-1", "alice@example.com",
		validCardAttempt(), nil)
	if !errors.Is(err, common.ErrEmptyCart) {
		t.Fatalf("want common.ErrEmptyCart, got %v", err)
	}
	if gw.calls != 0 {
		t.Fatal("gateway must not be called")
	}
}

func TestPlaceOrder_InvalidAttempt(t *testing.T) {
	gw := &fakeGateway{}
	s, _ := newCheckoutService(t, gw)

	attempt := validCardAttempt()
	attempt.Card.Number = "1234"

	_, err := s.PlaceOrder(context.Background(), "u-1", "alice@example.com",
		attempt, []string{"sofa-01"})

	var vErr *checkout.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if vErr.Field != "cardNumber" {
		t.Fatalf("field = %q, want cardNumber", vErr.Field)
	}
	if gw.calls != 0 {
		t.Fatal("gateway must not be called for invalid attempts")
	}
}

func TestPlaceOrder_UnknownItem(t *testing.T) {
	gw := &fakeGateway{}
	s, _ := newCheckoutService(t, gw)

	_, err := s.PlaceOrder(context.Background(), "u-1", "alice@example.com",
		validCardAttempt(), []string{"no-such-item"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
	if gw.calls != 0 {
		t.Fatal("gateway must not be called")
	}
}

func TestPlaceOrder_Declined(t *testing.T) {
	gw := &fakeGateway{err: common.ErrPaymentDeclined}
	s, _ := newCheckoutService(t, gw)

	_, err := s.PlaceOrder(context.Background(), "u-1", "alice@example.com",
		validCardAttempt(), []string{"sofa-01"})
	if !errors.Is(err, common.ErrPaymentDeclined) {
		t.Fatalf("want common.ErrPaymentDeclined, got %v", err)
	}

	orders, err := s.Orders(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("Orders error: %v", err)
	}
	if len(orders) != 0 {
		t.Fatal("declined charge must not record an order")
	}
}

func TestPlaceOrder_TxRollbackOnBeginError(t *testing.T) {
	gw := &fakeGateway{}
	s, mock := newCheckoutService(t, gw)
	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	_, err := s.PlaceOrder(context.Background(), "u-1", "alice@example.com",
		validCardAttempt(), []string{"sofa-01"})
	if err == nil {
		t.Fatal("expected an error when the transaction cannot begin")
	}
}

func TestOrders_ListsRecordedOrders(t *testing.T) {
	gw := &fakeGateway{}
	s, mock := newCheckoutService(t, gw)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	if _, err := s.PlaceOrder(context.Background(), "u-1", "alice@example.com",
		validCardAttempt(), []string{"sofa-01"}); err != nil {
		t.Fatalf("first PlaceOrder error: %v", err)
	}
	if _, err := s.PlaceOrder(context.Background(), "u-1", "alice@example.com",
		&checkout.Attempt{Method: checkout.MethodCOD}, []string{"drill-04", "sneaker-05"}); err != nil {
		t.Fatalf("second PlaceOrder error: %v", err)
	}

	orders, err := s.Orders(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("Orders error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[1].Method != "cod" || orders[1].AmountINR != 2000 {
		t.Fatalf("unexpected second order: %+v", orders[1])
	}
}
