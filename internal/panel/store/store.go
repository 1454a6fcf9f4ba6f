package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrInUse is returned when deleting a record other records still
	// reference (a plan with clients, a server with apps, an app with
	// access points).
	ErrInUse = errors.New("store: record in use")
)

// Store is the root data access interface implemented by the memory and
// sqlite drivers. Sub-repositories are exposed as methods so a Tx-scoped
// Store can hand out the same repos bound to the transaction.
type Store interface {
	Users() Users
	Clients() Clients
	Plans() Plans
	Servers() Servers
	Apps() Apps

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the e-mail case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a user; the e-mail must be unique.
	CreateUser(ctx context.Context, u domain.User) error

	ListUsers(ctx context.Context) ([]domain.User, error)

	IsEmpty(ctx context.Context) (bool, error)
}

type Clients interface {
	// GetClientByID returns the client with its access points.
	GetClientByID(ctx context.Context, id string) (domain.Client, error)

	// ListClients returns every client with its access points, oldest first.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// CreateClient inserts the client and its access points.
	CreateClient(ctx context.Context, c domain.Client) error

	// UpdateClient overwrites the client row and replaces its access points
	// with c.AccessPoints.
	UpdateClient(ctx context.Context, c domain.Client) error

	// DeleteClient cascades to its access points.
	DeleteClient(ctx context.Context, id string) error
}

type Plans interface {
	GetPlanByID(ctx context.Context, id string) (domain.Plan, error)
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	CreatePlan(ctx context.Context, p domain.Plan) error
	UpdatePlan(ctx context.Context, p domain.Plan) error

	// DeletePlan fails with ErrInUse while clients reference the plan.
	DeletePlan(ctx context.Context, id string) error
}

type Servers interface {
	GetServerByID(ctx context.Context, id string) (domain.Server, error)
	ListServers(ctx context.Context) ([]domain.Server, error)
	CreateServer(ctx context.Context, s domain.Server) error
	UpdateServer(ctx context.Context, s domain.Server) error

	// DeleteServer fails with ErrInUse while apps reference the server.
	DeleteServer(ctx context.Context, id string) error
}

type Apps interface {
	GetAppByID(ctx context.Context, id string) (domain.App, error)
	ListApps(ctx context.Context) ([]domain.App, error)
	CreateApp(ctx context.Context, a domain.App) error
	UpdateApp(ctx context.Context, a domain.App) error

	// DeleteApp fails with ErrInUse while access points reference the app.
	DeleteApp(ctx context.Context, id string) error
}
