package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-charity-backend/internal/domain"
	"go-charity-backend/pkg/utils"
)

type AdminRepo struct{ db *gorm.DB }

func NewAdminRepo(db *gorm.DB) *AdminRepo { return &AdminRepo{db: db} }

func (r *AdminRepo) Create(ctx context.Context, a *domain.Admin) error {
	if a.ID == "" {
		a.ID = utils.NewID()
	}
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *AdminRepo) List(ctx context.Context) ([]domain.Admin, error) {
	var out []domain.Admin
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *AdminRepo) FindByID(ctx context.Context, id string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *AdminRepo) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.db.WithContext(ctx).First(&a, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *AdminRepo) Update(ctx context.Context, a *domain.Admin) error {
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *AdminRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Admin{})
	return res.RowsAffected > 0, res.Error
}

// isDupKey matches unique-violation messages across mysql and postgres
// without depending on gorm.ErrDuplicatedKey.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
