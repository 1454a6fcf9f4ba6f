package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
)

type appsRepo struct {
	q   dbtx
	now func() time.Time
}

const appColumns = `id, name, access_code, android_url, ios_url, downloader_code, ntdown_code,
	multiple_access, server_id, created_at, updated_at`

func scanApp(row rowScanner) (domain.App, error) {
	var (
		a                    domain.App
		multi                int
		createdAt, updatedAt string
	)
	err := row.Scan(&a.ID, &a.Name, &a.AccessCode, &a.AndroidURL, &a.IOSURL, &a.DownloaderCode,
		&a.NTDownCode, &multi, &a.ServerID, &createdAt, &updatedAt)
	if err != nil {
		return domain.App{}, err
	}
	a.MultipleAccess = multi != 0
	a.CreatedAt = parseTime(createdAt)
	a.UpdatedAt = parseTime(updatedAt)
	return a, nil
}

func (r *appsRepo) GetAppByID(ctx context.Context, id string) (domain.App, error) {
	a, err := scanApp(r.q.QueryRowContext(ctx, `SELECT `+appColumns+` FROM apps WHERE id = ?`, id))
	if err != nil {
		return domain.App{}, mapNotFound(err)
	}
	return a, nil
}

func (r *appsRepo) ListApps(ctx context.Context) ([]domain.App, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+appColumns+` FROM apps ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.App
	for rows.Next() {
		a, err := scanApp(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *appsRepo) CreateApp(ctx context.Context, a domain.App) error {
	now := formatTime(r.now())
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO apps (`+appColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.AccessCode, a.AndroidURL, a.IOSURL, a.DownloaderCode, a.NTDownCode,
		boolInt(a.MultipleAccess), a.ServerID, now, now,
	)
	return mapConstraint(err, false)
}

func (r *appsRepo) UpdateApp(ctx context.Context, a domain.App) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE apps
		    SET name = ?, access_code = ?, android_url = ?, ios_url = ?, downloader_code = ?,
		        ntdown_code = ?, multiple_access = ?, server_id = ?, updated_at = ?
		  WHERE id = ?`,
		a.Name, a.AccessCode, a.AndroidURL, a.IOSURL, a.DownloaderCode, a.NTDownCode,
		boolInt(a.MultipleAccess), a.ServerID, formatTime(r.now()), a.ID,
	)
	if err != nil {
		return mapConstraint(err, false)
	}
	return requireAffected(res)
}

func (r *appsRepo) DeleteApp(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM apps WHERE id = ?`, id)
	if err != nil {
		return mapConstraint(err, true)
	}
	return requireAffected(res)
}
