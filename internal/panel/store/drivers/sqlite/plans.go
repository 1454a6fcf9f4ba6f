package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
)

type plansRepo struct {
	q   dbtx
	now func() time.Time
}

const planColumns = `id, name, screens, validity_months, price, notes, created_at, updated_at`

func scanPlan(row rowScanner) (domain.Plan, error) {
	var (
		p                    domain.Plan
		createdAt, updatedAt string
	)
	err := row.Scan(&p.ID, &p.Name, &p.Screens, &p.ValidityMonths, &p.Price, &p.Notes, &createdAt, &updatedAt)
	if err != nil {
		return domain.Plan{}, err
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}

func (r *plansRepo) GetPlanByID(ctx context.Context, id string) (domain.Plan, error) {
	p, err := scanPlan(r.q.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE id = ?`, id))
	if err != nil {
		return domain.Plan{}, mapNotFound(err)
	}
	return p, nil
}

func (r *plansRepo) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+planColumns+` FROM plans ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *plansRepo) CreatePlan(ctx context.Context, p domain.Plan) error {
	now := formatTime(r.now())
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO plans (`+planColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Screens, p.ValidityMonths, p.Price, p.Notes, now, now,
	)
	return mapConstraint(err, false)
}

func (r *plansRepo) UpdatePlan(ctx context.Context, p domain.Plan) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE plans
		    SET name = ?, screens = ?, validity_months = ?, price = ?, notes = ?, updated_at = ?
		  WHERE id = ?`,
		p.Name, p.Screens, p.ValidityMonths, p.Price, p.Notes, formatTime(r.now()), p.ID,
	)
	if err != nil {
		return mapConstraint(err, false)
	}
	return requireAffected(res)
}

func (r *plansRepo) DeletePlan(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return mapConstraint(err, true)
	}
	return requireAffected(res)
}
