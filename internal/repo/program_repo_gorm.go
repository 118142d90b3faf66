package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-charity-backend/internal/domain"
	"go-charity-backend/pkg/utils"
)

type ProgramRepo struct{ db *gorm.DB }

func NewProgramRepo(db *gorm.DB) *ProgramRepo { return &ProgramRepo{db: db} }

func (r *ProgramRepo) Create(ctx context.Context, p *domain.Program) error {
	if p.ID == "" {
		p.ID = utils.NewID()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

// List orders by scheduled date ascending: upcoming programs first.
func (r *ProgramRepo) List(ctx context.Context) ([]domain.Program, error) {
	var out []domain.Program
	err := r.db.WithContext(ctx).Order("date ASC").Find(&out).Error
	return out, err
}

func (r *ProgramRepo) FindByID(ctx context.Context, id string) (*domain.Program, error) {
	var p domain.Program
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *ProgramRepo) Update(ctx context.Context, p *domain.Program) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProgramRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Program{})
	return res.RowsAffected > 0, res.Error
}

func (r *ProgramRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Program{}).
		Where("status = ?", domain.ProgramActive).Count(&n).Error
	return n, err
}
