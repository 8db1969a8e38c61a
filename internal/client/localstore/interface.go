package localstore

import (
	"context"
)

// Repository is a small key-value store backed by the client's local
// database. It fills the role browser local storage plays in web
// storefronts: tiny JSON blobs keyed by well-known names.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
