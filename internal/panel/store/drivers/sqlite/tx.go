package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/store"
)

var errNestedTx = errors.New("sqlite: nested transactions are not supported")

type txStore struct {
	tx  *sql.Tx
	now func() time.Time
}

func newTx(tx *sql.Tx, now func() time.Time) *txStore {
	return &txStore{tx: tx, now: now}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // the outer DB stays open

// Ping is a no-op; the transaction already holds a live connection.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, errNestedTx
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errNestedTx
}

func (t *txStore) Users() store.Users     { return &usersRepo{q: t.tx, now: t.now} }
func (t *txStore) Clients() store.Clients { return &clientsRepo{q: t.tx, now: t.now} }
func (t *txStore) Plans() store.Plans     { return &plansRepo{q: t.tx, now: t.now} }
func (t *txStore) Servers() store.Servers { return &serversRepo{q: t.tx, now: t.now} }
func (t *txStore) Apps() store.Apps       { return &appsRepo{q: t.tx, now: t.now} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
