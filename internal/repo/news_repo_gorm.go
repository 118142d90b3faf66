package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-charity-backend/internal/domain"
	"go-charity-backend/pkg/utils"
)

type NewsRepo struct{ db *gorm.DB }

func NewNewsRepo(db *gorm.DB) *NewsRepo { return &NewsRepo{db: db} }

func (r *NewsRepo) Create(ctx context.Context, n *domain.NewsArticle) error {
	if n.ID == "" {
		n.ID = utils.NewID()
	}
	return r.db.WithContext(ctx).Create(n).Error
}

// List orders by article date descending: newest articles first.
func (r *NewsRepo) List(ctx context.Context) ([]domain.NewsArticle, error) {
	var out []domain.NewsArticle
	err := r.db.WithContext(ctx).Order("date DESC").Find(&out).Error
	return out, err
}

func (r *NewsRepo) FindByID(ctx context.Context, id string) (*domain.NewsArticle, error) {
	var n domain.NewsArticle
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &n, err
}

func (r *NewsRepo) Update(ctx context.Context, n *domain.NewsArticle) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *NewsRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.NewsArticle{})
	return res.RowsAffected > 0, res.Error
}

func (r *NewsRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.NewsArticle{}).Count(&n).Error
	return n, err
}
