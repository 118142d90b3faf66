package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-charity-backend/internal/domain"
	"go-charity-backend/pkg/utils"
)

type VolunteerRepo struct{ db *gorm.DB }

func NewVolunteerRepo(db *gorm.DB) *VolunteerRepo { return &VolunteerRepo{db: db} }

func (r *VolunteerRepo) Create(ctx context.Context, v *domain.Volunteer) error {
	if v.ID == "" {
		v.ID = utils.NewID()
	}
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VolunteerRepo) List(ctx context.Context) ([]domain.Volunteer, error) {
	var out []domain.Volunteer
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *VolunteerRepo) FindByID(ctx context.Context, id string) (*domain.Volunteer, error) {
	var v domain.Volunteer
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &v, err
}

func (r *VolunteerRepo) Update(ctx context.Context, v *domain.Volunteer) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VolunteerRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Volunteer{})
	return res.RowsAffected > 0, res.Error
}

func (r *VolunteerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Volunteer{}).Count(&n).Error
	return n, err
}
