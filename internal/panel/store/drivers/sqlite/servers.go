package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
)

type serversRepo struct {
	q   dbtx
	now func() time.Time
}

const serverColumns = `id, name, alias, created_at, updated_at`

func scanServer(row rowScanner) (domain.Server, error) {
	var (
		s                    domain.Server
		createdAt, updatedAt string
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Alias, &createdAt, &updatedAt); err != nil {
		return domain.Server{}, err
	}
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	return s, nil
}

func (r *serversRepo) GetServerByID(ctx context.Context, id string) (domain.Server, error) {
	s, err := scanServer(r.q.QueryRowContext(ctx, `SELECT `+serverColumns+` FROM servers WHERE id = ?`, id))
	if err != nil {
		return domain.Server{}, mapNotFound(err)
	}
	return s, nil
}

func (r *serversRepo) ListServers(ctx context.Context) ([]domain.Server, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+serverColumns+` FROM servers ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var servers []domain.Server
	for rows.Next() {
		s, err := scanServer(rows)
		if err != nil {
			return nil, err
		}
		servers = append(servers, s)
	}
	return servers, rows.Err()
}

func (r *serversRepo) CreateServer(ctx context.Context, s domain.Server) error {
	now := formatTime(r.now())
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO servers (`+serverColumns+`) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Alias, now, now,
	)
	return mapConstraint(err, false)
}

func (r *serversRepo) UpdateServer(ctx context.Context, s domain.Server) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE servers SET name = ?, alias = ?, updated_at = ? WHERE id = ?`,
		s.Name, s.Alias, formatTime(r.now()), s.ID,
	)
	if err != nil {
		return mapConstraint(err, false)
	}
	return requireAffected(res)
}

func (r *serversRepo) DeleteServer(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM servers WHERE id = ?`, id)
	if err != nil {
		return mapConstraint(err, true)
	}
	return requireAffected(res)
}
