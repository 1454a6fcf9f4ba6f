package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/pkg/datex"
)

type clientsRepo struct {
	q   dbtx
	now func() time.Time
}

const clientColumns = `id, name, phone, email, due_date, notified, plan_id, screens, price, created_at, updated_at`

func scanClient(row rowScanner) (domain.Client, error) {
	var (
		c                    domain.Client
		dueDate              string
		notified             int
		planID               sql.NullString
		createdAt, updatedAt string
	)
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &dueDate, &notified,
		&planID, &c.Screens, &c.Price, &createdAt, &updatedAt)
	if err != nil {
		return domain.Client{}, err
	}
	if dueDate != "" {
		c.DueDate, _ = datex.Parse(dueDate, time.UTC)
	}
	c.Notified = notified != 0
	c.PlanID = planID.String
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return c, nil
}

const accessPointColumns = `id, client_id, app_id, app_name, username, password, connections`

func scanAccessPoint(row rowScanner) (domain.AccessPoint, error) {
	var ap domain.AccessPoint
	err := row.Scan(&ap.ID, &ap.ClientID, &ap.AppID, &ap.AppName, &ap.Username, &ap.Password, &ap.Connections)
	return ap, err
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	c, err := scanClient(r.q.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id))
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}

	points, err := r.accessPoints(ctx, `WHERE client_id = ?`, id)
	if err != nil {
		return domain.Client{}, err
	}
	c.AccessPoints = points[id]
	return c, nil
}

// ListClients reads every client first and every access point second, so
// no two result sets are open on the same connection.
func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	points, err := r.accessPoints(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range clients {
		clients[i].AccessPoints = points[clients[i].ID]
	}
	return clients, nil
}

func (r *clientsRepo) accessPoints(ctx context.Context, where string, args ...any) (map[string][]domain.AccessPoint, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+accessPointColumns+` FROM access_points `+where+` ORDER BY client_id, position`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.AccessPoint)
	for rows.Next() {
		ap, err := scanAccessPoint(rows)
		if err != nil {
			return nil, err
		}
		out[ap.ClientID] = append(out[ap.ClientID], ap)
	}
	return out, rows.Err()
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	return inTx(ctx, r.q, func(q dbtx) error {
		now := formatTime(r.now())
		_, err := q.ExecContext(ctx,
			`INSERT INTO clients (`+clientColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Phone, c.Email, datex.Format(c.DueDate), boolInt(c.Notified),
			nullString(c.PlanID), c.Screens, c.Price, now, now,
		)
		if err != nil {
			return mapConstraint(err, false)
		}
		return insertAccessPoints(ctx, q, c)
	})
}

func (r *clientsRepo) UpdateClient(ctx context.Context, c domain.Client) error {
	return inTx(ctx, r.q, func(q dbtx) error {
		res, err := q.ExecContext(ctx,
			`UPDATE clients
			    SET name = ?, phone = ?, email = ?, due_date = ?, notified = ?,
			        plan_id = ?, screens = ?, price = ?, updated_at = ?
			  WHERE id = ?`,
			c.Name, c.Phone, c.Email, datex.Format(c.DueDate), boolInt(c.Notified),
			nullString(c.PlanID), c.Screens, c.Price, formatTime(r.now()), c.ID,
		)
		if err != nil {
			return mapConstraint(err, false)
		}
		if err := requireAffected(res); err != nil {
			return err
		}

		if _, err := q.ExecContext(ctx, `DELETE FROM access_points WHERE client_id = ?`, c.ID); err != nil {
			return err
		}
		return insertAccessPoints(ctx, q, c)
	})
}

func insertAccessPoints(ctx context.Context, q dbtx, c domain.Client) error {
	for i, ap := range c.AccessPoints {
		_, err := q.ExecContext(ctx,
			`INSERT INTO access_points (`+accessPointColumns+`, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			ap.ID, c.ID, ap.AppID, ap.AppName, ap.Username, ap.Password, ap.Connections, i,
		)
		if err != nil {
			return mapConstraint(err, false)
		}
	}
	return nil
}

func (r *clientsRepo) DeleteClient(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return mapConstraint(err, true)
	}
	return requireAffected(res)
}

// inTx runs fn in a transaction unless q already is one.
func inTx(ctx context.Context, q dbtx, fn func(q dbtx) error) error {
	db, ok := q.(*sql.DB)
	if !ok {
		return fn(q)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
