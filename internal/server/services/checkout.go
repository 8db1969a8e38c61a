package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/arshopsy/arshopsy/internal/catalog"
	"github.com/arshopsy/arshopsy/internal/checkout"
	"github.com/arshopsy/arshopsy/internal/common"
	"github.com/arshopsy/arshopsy/internal/dbx"
	"github.com/arshopsy/arshopsy/internal/payments"
	"github.com/arshopsy/arshopsy/internal/server/models"
	"github.com/arshopsy/arshopsy/internal/server/repositories/repomanager"
)

// CheckoutService re-validates payment attempts on the trusted side, charges
// them through the gateway and records approved charges as orders.
type CheckoutService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	gateway     payments.Gateway
}

func NewCheckoutService(db *sql.DB, m repomanager.RepositoryManager, gateway payments.Gateway) *CheckoutService {
	return &CheckoutService{db: db, repomanager: m, gateway: gateway}
}

// PlaceOrder validates the attempt, prices the cart from the catalog, runs
// the charge and persists the order. Client-side validation is advisory only;
// everything is checked again here.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID, email string, attempt *checkout.Attempt, itemIDs []string) (*models.Order, error) {
	if userID == "" {
		return nil, common.ErrNotSignedIn
	}
	if len(itemIDs) == 0 {
		return nil, common.ErrEmptyCart
	}

	if err := attempt.Validate(); err != nil {
		return nil, err
	}

	amount := 0
	for _, id := range itemIDs {
		item := catalog.Find(id)
		if item == nil {
			return nil, common.ErrorNotFound
		}
		amount += item.PriceINR
	}

	attemptID := attempt.ID
	if attemptID == "" {
		attemptID = uuid.NewString()
	}

	receipt, err := s.gateway.Charge(ctx, payments.ChargeRequest{
		AttemptID: attemptID,
		Email:     email,
		Method:    string(attempt.Method),
		AmountINR: amount,
		ItemIDs:   itemIDs,
	})
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:    userID,
		Method:    string(attempt.Method),
		AmountINR: amount,
		ItemIDs:   itemIDs,
		Reference: receipt.Reference,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Orders(tx)
		order, err = repo.Create(ctx, order)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error recording order: %w", err)
	}

	return order, nil
}

// Orders lists the user's completed orders, oldest first.
func (s *CheckoutService) Orders(ctx context.Context, userID string) ([]*models.Order, error) {
	if userID == "" {
		return nil, common.ErrNotSignedIn
	}
	repo := s.repomanager.Orders(s.db)
	return repo.ListByUser(ctx, userID)
}
