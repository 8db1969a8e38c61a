package orders

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arshopsy/arshopsy/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests and in local
// runs without a database.
type InMemoryRepository struct {
	mu     sync.RWMutex
	byUser map[string][]*models.Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byUser: make(map[string][]*models.Order)}
}

func (r *InMemoryRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o := *order
	o.ID = uuid.NewString()
	o.CreatedAt = time.Now()
	r.byUser[o.UserID] = append(r.byUser[o.UserID], &o)

	out := o
	return &out, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byUser[userID]
	result := make([]*models.Order, 0, len(stored))
	for _, o := range stored {
		out := *o
		result = append(result, &out)
	}
	return result, nil
}
