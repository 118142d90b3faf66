package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-charity-backend/internal/domain"
	"go-charity-backend/pkg/utils"
)

type DonationRepo struct{ db *gorm.DB }

func NewDonationRepo(db *gorm.DB) *DonationRepo { return &DonationRepo{db: db} }

func (r *DonationRepo) Create(ctx context.Context, d *domain.Donation) error {
	if d.ID == "" {
		d.ID = utils.NewID()
	}
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DonationRepo) List(ctx context.Context) ([]domain.Donation, error) {
	var out []domain.Donation
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *DonationRepo) FindByID(ctx context.Context, id string) (*domain.Donation, error) {
	var d domain.Donation
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &d, err
}

func (r *DonationRepo) Update(ctx context.Context, d *domain.Donation) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DonationRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Donation{})
	return res.RowsAffected > 0, res.Error
}

func (r *DonationRepo) Totals(ctx context.Context) (int64, float64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Donation{}).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	var cashTotal float64
	err := r.db.WithContext(ctx).Model(&domain.Donation{}).
		Where("type = ?", domain.DonationCash).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&cashTotal).Error
	return count, cashTotal, err
}
