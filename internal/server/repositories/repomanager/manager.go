package repomanager

import (
	"context"
	"database/sql"

	"github.com/arshopsy/arshopsy/internal/dbx"
	"github.com/arshopsy/arshopsy/internal/server/repositories/orders"
	"github.com/arshopsy/arshopsy/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Orders(db dbx.DBTX) orders.Repository
}
