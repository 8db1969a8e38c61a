package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/arshopsy/arshopsy/internal/dbx"
	"github.com/arshopsy/arshopsy/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Item ids are catalog slugs, so a comma join is unambiguous.
const itemIDSeparator = ","

func (r *PostgresRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {

	query :=
		`INSERT INTO orders (user_id, method, amount_inr, item_ids, reference)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		order.UserID, order.Method, order.AmountINR,
		strings.Join(order.ItemIDs, itemIDSeparator), order.Reference).
		Scan(&order.ID, &order.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return order, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	query :=
		`SELECT id, user_id, method, amount_inr, item_ids, reference, created_at FROM orders
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Order
	for rows.Next() {
		order := &models.Order{}
		var itemIDs string
		err := rows.Scan(&order.ID, &order.UserID, &order.Method, &order.AmountINR,
			&itemIDs, &order.Reference, &order.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if itemIDs != "" {
			order.ItemIDs = strings.Split(itemIDs, itemIDSeparator)
		}
		result = append(result, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
