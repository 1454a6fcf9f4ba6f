package memory

import (
	"context"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/store"
)

// query runs fn under the read lock of the db src currently points at.
func query[T any](src source, fn func(d *data) (T, error)) (T, error) {
	db := src.read()
	db.mu.RLock()
	defer db.mu.RUnlock()
	return fn(db.d)
}

// mutate runs fn under the write lock of the db src hands out.
func mutate(src source, fn func(db *db) error) error {
	return src.write(func(db *db) error {
		db.mu.Lock()
		defer db.mu.Unlock()
		return fn(db)
	})
}

type usersRepo struct{ src source }

func (r *usersRepo) GetUserByID(_ context.Context, id string) (domain.User, error) {
	return query(r.src, func(d *data) (domain.User, error) { return d.users.get(id) })
}

func (r *usersRepo) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	want := normEmail(email)
	return query(r.src, func(d *data) (domain.User, error) {
		u, ok := d.users.find(func(u domain.User) bool { return normEmail(u.Email) == want })
		if !ok {
			return domain.User{}, store.ErrNotFound
		}
		return u, nil
	})
}

func (r *usersRepo) CreateUser(_ context.Context, u domain.User) error {
	return mutate(r.src, func(db *db) error {
		want := normEmail(u.Email)
		if db.d.users.any(func(x domain.User) bool { return normEmail(x.Email) == want }) {
			return store.ErrAlreadyExists
		}
		u.CreatedAt = db.now().UTC()
		u.UpdatedAt = u.CreatedAt
		return db.d.users.insert(u)
	})
}

func (r *usersRepo) ListUsers(context.Context) ([]domain.User, error) {
	return query(r.src, func(d *data) ([]domain.User, error) { return d.users.list(), nil })
}

func (r *usersRepo) IsEmpty(context.Context) (bool, error) {
	return query(r.src, func(d *data) (bool, error) { return len(d.users.rows) == 0, nil })
}

type clientsRepo struct{ src source }

func (r *clientsRepo) GetClientByID(_ context.Context, id string) (domain.Client, error) {
	return query(r.src, func(d *data) (domain.Client, error) { return d.clients.get(id) })
}

func (r *clientsRepo) ListClients(context.Context) ([]domain.Client, error) {
	return query(r.src, func(d *data) ([]domain.Client, error) { return d.clients.list(), nil })
}

func (r *clientsRepo) CreateClient(_ context.Context, c domain.Client) error {
	return mutate(r.src, func(db *db) error {
		if err := checkRefs(db.d, c); err != nil {
			return err
		}
		c.CreatedAt = db.now().UTC()
		c.UpdatedAt = c.CreatedAt
		stampAccessPoints(&c)
		return db.d.clients.insert(c)
	})
}

func (r *clientsRepo) UpdateClient(_ context.Context, c domain.Client) error {
	return mutate(r.src, func(db *db) error {
		prev, err := db.d.clients.get(c.ID)
		if err != nil {
			return err
		}
		if err := checkRefs(db.d, c); err != nil {
			return err
		}
		c.CreatedAt = prev.CreatedAt
		c.UpdatedAt = db.now().UTC()
		stampAccessPoints(&c)
		return db.d.clients.update(c)
	})
}

func (r *clientsRepo) DeleteClient(_ context.Context, id string) error {
	return mutate(r.src, func(db *db) error { return db.d.clients.delete(id) })
}

// checkRefs mirrors the sqlite foreign keys: the plan and every access point
// app must exist.
func checkRefs(d *data, c domain.Client) error {
	if c.PlanID != "" {
		if _, err := d.plans.get(c.PlanID); err != nil {
			return store.ErrNotFound
		}
	}
	for _, ap := range c.AccessPoints {
		if _, err := d.apps.get(ap.AppID); err != nil {
			return store.ErrNotFound
		}
	}
	return nil
}

func stampAccessPoints(c *domain.Client) {
	for i := range c.AccessPoints {
		c.AccessPoints[i].ClientID = c.ID
	}
}

type plansRepo struct{ src source }

func (r *plansRepo) GetPlanByID(_ context.Context, id string) (domain.Plan, error) {
	return query(r.src, func(d *data) (domain.Plan, error) { return d.plans.get(id) })
}

func (r *plansRepo) ListPlans(context.Context) ([]domain.Plan, error) {
	return query(r.src, func(d *data) ([]domain.Plan, error) { return d.plans.list(), nil })
}

func (r *plansRepo) CreatePlan(_ context.Context, p domain.Plan) error {
	return mutate(r.src, func(db *db) error {
		p.CreatedAt = db.now().UTC()
		p.UpdatedAt = p.CreatedAt
		return db.d.plans.insert(p)
	})
}

func (r *plansRepo) UpdatePlan(_ context.Context, p domain.Plan) error {
	return mutate(r.src, func(db *db) error {
		prev, err := db.d.plans.get(p.ID)
		if err != nil {
			return err
		}
		p.CreatedAt = prev.CreatedAt
		p.UpdatedAt = db.now().UTC()
		return db.d.plans.update(p)
	})
}

func (r *plansRepo) DeletePlan(_ context.Context, id string) error {
	return mutate(r.src, func(db *db) error {
		if db.d.clients.any(func(c domain.Client) bool { return c.PlanID == id }) {
			return store.ErrInUse
		}
		return db.d.plans.delete(id)
	})
}

type serversRepo struct{ src source }

func (r *serversRepo) GetServerByID(_ context.Context, id string) (domain.Server, error) {
	return query(r.src, func(d *data) (domain.Server, error) { return d.servers.get(id) })
}

func (r *serversRepo) ListServers(context.Context) ([]domain.Server, error) {
	return query(r.src, func(d *data) ([]domain.Server, error) { return d.servers.list(), nil })
}

func (r *serversRepo) CreateServer(_ context.Context, s domain.Server) error {
	return mutate(r.src, func(db *db) error {
		s.CreatedAt = db.now().UTC()
		s.UpdatedAt = s.CreatedAt
		return db.d.servers.insert(s)
	})
}

func (r *serversRepo) UpdateServer(_ context.Context, s domain.Server) error {
	return mutate(r.src, func(db *db) error {
		prev, err := db.d.servers.get(s.ID)
		if err != nil {
			return err
		}
		s.CreatedAt = prev.CreatedAt
		s.UpdatedAt = db.now().UTC()
		return db.d.servers.update(s)
	})
}

func (r *serversRepo) DeleteServer(_ context.Context, id string) error {
	return mutate(r.src, func(db *db) error {
		if db.d.apps.any(func(a domain.App) bool { return a.ServerID == id }) {
			return store.ErrInUse
		}
		return db.d.servers.delete(id)
	})
}

type appsRepo struct{ src source }

func (r *appsRepo) GetAppByID(_ context.Context, id string) (domain.App, error) {
	return query(r.src, func(d *data) (domain.App, error) { return d.apps.get(id) })
}

func (r *appsRepo) ListApps(context.Context) ([]domain.App, error) {
	return query(r.src, func(d *data) ([]domain.App, error) { return d.apps.list(), nil })
}

func (r *appsRepo) CreateApp(_ context.Context, a domain.App) error {
	return mutate(r.src, func(db *db) error {
		if _, err := db.d.servers.get(a.ServerID); err != nil {
			return store.ErrNotFound
		}
		a.CreatedAt = db.now().UTC()
		a.UpdatedAt = a.CreatedAt
		return db.d.apps.insert(a)
	})
}

func (r *appsRepo) UpdateApp(_ context.Context, a domain.App) error {
	return mutate(r.src, func(db *db) error {
		prev, err := db.d.apps.get(a.ID)
		if err != nil {
			return err
		}
		if _, err := db.d.servers.get(a.ServerID); err != nil {
			return store.ErrNotFound
		}
		a.CreatedAt = prev.CreatedAt
		a.UpdatedAt = db.now().UTC()
		return db.d.apps.update(a)
	})
}

func (r *appsRepo) DeleteApp(_ context.Context, id string) error {
	return mutate(r.src, func(db *db) error {
		inUse := db.d.clients.any(func(c domain.Client) bool {
			for _, ap := range c.AccessPoints {
				if ap.AppID == id {
					return true
				}
			}
			return false
		})
		if inUse {
			return store.ErrInUse
		}
		return db.d.apps.delete(id)
	})
}
