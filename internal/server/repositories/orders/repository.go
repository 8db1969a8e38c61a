package orders

import (
	"context"

	"github.com/arshopsy/arshopsy/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Order, error)
}
