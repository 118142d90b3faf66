package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"go-charity-backend/internal/domain"
	"go-charity-backend/pkg/utils"
)

// In-process repositories behind the same interfaces as the gorm ones.
// Selected with `db.driver: memory`; tests run against these so no test
// needs a live database.

type MemDonationRepo struct {
	mu    sync.RWMutex
	items []domain.Donation
}

func NewMemDonationRepo() *MemDonationRepo { return &MemDonationRepo{} }

func (r *MemDonationRepo) Create(_ context.Context, d *domain.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&d.ID, &d.CreatedAt)
	d.UpdatedAt = d.CreatedAt
	r.items = append(r.items, *d)
	return nil
}

func (r *MemDonationRepo) List(_ context.Context) ([]domain.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Donation, len(r.items))
	for i, d := range r.items {
		out[len(r.items)-1-i] = d
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemDonationRepo) FindByID(_ context.Context, id string) (*domain.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.items {
		if d.ID == id {
			cp := d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemDonationRepo) Update(_ context.Context, d *domain.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == d.ID {
			d.UpdatedAt = time.Now()
			r.items[i] = *d
			return nil
		}
	}
	return nil
}

func (r *MemDonationRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemDonationRepo) Totals(_ context.Context) (int64, float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var cash float64
	for _, d := range r.items {
		if d.Type == domain.DonationCash {
			cash += d.Amount
		}
	}
	return int64(len(r.items)), cash, nil
}

type MemVolunteerRepo struct {
	mu    sync.RWMutex
	items []domain.Volunteer
}

func NewMemVolunteerRepo() *MemVolunteerRepo { return &MemVolunteerRepo{} }

func (r *MemVolunteerRepo) Create(_ context.Context, v *domain.Volunteer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&v.ID, &v.CreatedAt)
	r.items = append(r.items, *v)
	return nil
}

func (r *MemVolunteerRepo) List(_ context.Context) ([]domain.Volunteer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Volunteer, len(r.items))
	for i, v := range r.items {
		out[len(r.items)-1-i] = v
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemVolunteerRepo) FindByID(_ context.Context, id string) (*domain.Volunteer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.items {
		if v.ID == id {
			cp := v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemVolunteerRepo) Update(_ context.Context, v *domain.Volunteer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == v.ID {
			r.items[i] = *v
			return nil
		}
	}
	return nil
}

func (r *MemVolunteerRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemVolunteerRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

type MemProgramRepo struct {
	mu    sync.RWMutex
	items []domain.Program
}

func NewMemProgramRepo() *MemProgramRepo { return &MemProgramRepo{} }

func (r *MemProgramRepo) Create(_ context.Context, p *domain.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&p.ID, &p.CreatedAt)
	p.UpdatedAt = p.CreatedAt
	r.items = append(r.items, *p)
	return nil
}

func (r *MemProgramRepo) List(_ context.Context) ([]domain.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Program, len(r.items))
	copy(out, r.items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *MemProgramRepo) FindByID(_ context.Context, id string) (*domain.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemProgramRepo) Update(_ context.Context, p *domain.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == p.ID {
			p.UpdatedAt = time.Now()
			r.items[i] = *p
			return nil
		}
	}
	return nil
}

func (r *MemProgramRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemProgramRepo) CountActive(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, p := range r.items {
		if p.Status == domain.ProgramActive {
			n++
		}
	}
	return n, nil
}

type MemNewsRepo struct {
	mu    sync.RWMutex
	items []domain.NewsArticle
}

func NewMemNewsRepo() *MemNewsRepo { return &MemNewsRepo{} }

func (r *MemNewsRepo) Create(_ context.Context, n *domain.NewsArticle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&n.ID, &n.CreatedAt)
	n.UpdatedAt = n.CreatedAt
	r.items = append(r.items, *n)
	return nil
}

func (r *MemNewsRepo) List(_ context.Context) ([]domain.NewsArticle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.NewsArticle, len(r.items))
	copy(out, r.items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *MemNewsRepo) FindByID(_ context.Context, id string) (*domain.NewsArticle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.items {
		if n.ID == id {
			cp := n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemNewsRepo) Update(_ context.Context, n *domain.NewsArticle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == n.ID {
			n.UpdatedAt = time.Now()
			r.items[i] = *n
			return nil
		}
	}
	return nil
}

func (r *MemNewsRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemNewsRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

type MemAdminRepo struct {
	mu    sync.RWMutex
	items []domain.Admin
}

func NewMemAdminRepo() *MemAdminRepo { return &MemAdminRepo{} }

func (r *MemAdminRepo) Create(_ context.Context, a *domain.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, x := range r.items {
		if x.Email == a.Email {
			return domain.ErrDuplicateEmail
		}
	}
	stamp(&a.ID, &a.CreatedAt)
	a.UpdatedAt = a.CreatedAt
	r.items = append(r.items, *a)
	return nil
}

func (r *MemAdminRepo) List(_ context.Context) ([]domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Admin, len(r.items))
	for i, a := range r.items {
		out[len(r.items)-1-i] = a
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemAdminRepo) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.items {
		if a.ID == id {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.items {
		if a.Email == email {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemAdminRepo) Update(_ context.Context, a *domain.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, x := range r.items {
		if x.Email == a.Email && x.ID != a.ID {
			return domain.ErrDuplicateEmail
		}
	}
	for i := range r.items {
		if r.items[i].ID == a.ID {
			a.UpdatedAt = time.Now()
			r.items[i] = *a
			return nil
		}
	}
	return nil
}

func (r *MemAdminRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func stamp(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = utils.NewID()
	}
	if createdAt.IsZero() {
		*createdAt = time.Now()
	}
}
