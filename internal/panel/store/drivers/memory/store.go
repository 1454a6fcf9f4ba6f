// Package memory is the default store driver: plain in-memory collections
// guarded by a mutex. Nothing survives a restart.
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/store"
)

var (
	errTxDone   = errors.New("memory: transaction already committed or rolled back")
	errNestedTx = errors.New("memory: nested transactions are not supported")
)

type data struct {
	users   *table[domain.User]
	clients *table[domain.Client]
	plans   *table[domain.Plan]
	servers *table[domain.Server]
	apps    *table[domain.App]
}

func newData() *data {
	return &data{
		users:   newTable(func(u domain.User) string { return u.ID }, nil),
		clients: newTable(func(c domain.Client) string { return c.ID }, cloneClient),
		plans:   newTable(func(p domain.Plan) string { return p.ID }, nil),
		servers: newTable(func(s domain.Server) string { return s.ID }, nil),
		apps:    newTable(func(a domain.App) string { return a.ID }, nil),
	}
}

func (d *data) copy() *data {
	return &data{
		users:   d.users.copy(),
		clients: d.clients.copy(),
		plans:   d.plans.copy(),
		servers: d.servers.copy(),
		apps:    d.apps.copy(),
	}
}

func cloneClient(c domain.Client) domain.Client {
	if c.AccessPoints != nil {
		c.AccessPoints = append([]domain.AccessPoint(nil), c.AccessPoints...)
	}
	return c
}

// db is the lockable unit repos operate on. A transaction works on a private
// db and swaps it in on commit.
type db struct {
	mu  sync.RWMutex
	d   *data
	now func() time.Time
}

// source hands repos the db to read and runs their writes. Repos resolve it
// on every call so a commit that swaps the db is seen straight away.
type source interface {
	read() *db
	write(fn func(d *db) error) error
}

// Store is the in-memory store.
type Store struct {
	mu   sync.Mutex // guards cur
	cur  *db
	txMu sync.Mutex // held by an open transaction and by every write outside one
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{cur: &db{d: newData(), now: time.Now}}
}

func (s *Store) db() *db {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

func (s *Store) read() *db { return s.db() }

// write waits for any open transaction so its commit cannot drop the change.
func (s *Store) write(fn func(d *db) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(s.db())
}

func (s *Store) Users() store.Users     { return &usersRepo{src: s} }
func (s *Store) Clients() store.Clients { return &clientsRepo{src: s} }
func (s *Store) Plans() store.Plans     { return &plansRepo{src: s} }
func (s *Store) Servers() store.Servers { return &serversRepo{src: s} }
func (s *Store) Apps() store.Apps       { return &appsRepo{src: s} }

// ApplyMigrations is a no-op; there is no schema.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error { return nil }

// Driver names the backend in health reports.
func (s *Store) Driver() string { return "memory" }

func (s *Store) Ping(context.Context) error { return nil }

// Tx snapshots the current data. Writes through the store itself block until
// the transaction commits or rolls back; reads keep seeing the last commit.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	s.txMu.Lock()

	cur := s.db()
	cur.mu.RLock()
	snapshot := cur.d.copy()
	cur.mu.RUnlock()

	return &txStore{parent: s, db: &db{d: snapshot, now: cur.now}}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

type txStore struct {
	parent *Store
	db     *db
	done   bool
}

func (t *txStore) read() *db { return t.db }

func (t *txStore) write(fn func(d *db) error) error {
	if t.done {
		return errTxDone
	}
	return fn(t.db)
}

func (t *txStore) Commit() error {
	if t.done {
		return errTxDone
	}
	t.done = true

	t.parent.mu.Lock()
	t.parent.cur = t.db
	t.parent.mu.Unlock()
	t.parent.txMu.Unlock()
	return nil
}

func (t *txStore) Rollback() error {
	if t.done {
		return errTxDone
	}
	t.done = true
	t.parent.txMu.Unlock()
	return nil
}

func (t *txStore) Users() store.Users     { return &usersRepo{src: t} }
func (t *txStore) Clients() store.Clients { return &clientsRepo{src: t} }
func (t *txStore) Plans() store.Plans     { return &plansRepo{src: t} }
func (t *txStore) Servers() store.Servers { return &serversRepo{src: t} }
func (t *txStore) Apps() store.Apps       { return &appsRepo{src: t} }

func (t *txStore) ApplyMigrations() error        { return nil }
func (t *txStore) Close() error                  { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, errNestedTx
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errNestedTx
}

func normEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
