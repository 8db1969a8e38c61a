package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/arshopsy/arshopsy/internal/catalog"
	"github.com/arshopsy/arshopsy/internal/client/api"
	"github.com/arshopsy/arshopsy/internal/client/config"
	"github.com/arshopsy/arshopsy/internal/client/localstore"
	"github.com/arshopsy/arshopsy/internal/client/session"
	"github.com/arshopsy/arshopsy/internal/feedback"
	"github.com/arshopsy/arshopsy/internal/wishlist"

	_ "modernc.org/sqlite"
)

// apiClient is the slice of the storefront API the CLI uses. The real
// api.Client satisfies it; tests substitute fakes.
type apiClient interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, name, email string, password []byte) (*api.User, error)
	Login(ctx context.Context, email string, password []byte) (*api.User, error)
	Token() string
	SetToken(token string)
	Catalog(ctx context.Context) ([]catalog.Item, error)
	ModelURL(ctx context.Context, itemID, platform string) (string, error)
	PlaceOrder(ctx context.Context, req api.CheckoutRequest) (*api.Order, error)
	Orders(ctx context.Context) ([]api.Order, error)
	SendFeedback(ctx context.Context, msg feedback.Message) error
}

type App struct {
	config   *config.Config
	api      apiClient
	session  *session.Manager
	db       *sql.DB
	wishlist *wishlist.Store
	reader   *bufio.Reader

	userName  string
	userEmail string
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	store, db, err := localstore.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := api.NewClient(c.ServerEndpointAddr, c.RequestTimeout)

	app := &App{
		config:   c,
		api:      apiClient,
		session:  session.NewManager(store),
		db:       db,
		wishlist: wishlist.NewStore(),
		reader:   bufio.NewReader(os.Stdin),
	}

	// Resume a persisted session, if any.
	if rec, err := app.session.Current(ctx); err == nil {
		app.api.SetToken(rec.Token)
		app.userName = rec.Name
		app.userEmail = rec.Email
	}

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.userEmail != ""
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}
