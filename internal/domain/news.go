package domain

import (
	"context"
	"time"
)

type NewsArticle struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Excerpt   string    `gorm:"type:text;not null" json:"excerpt"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Image     string    `gorm:"size:512;not null" json:"image"`
	Category  string    `gorm:"size:64;not null" json:"category"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (NewsArticle) TableName() string { return "news_articles" }

func (n *NewsArticle) Validate() error {
	if err := required("title", n.Title); err != nil {
		return err
	}
	if err := required("excerpt", n.Excerpt); err != nil {
		return err
	}
	if err := required("content", n.Content); err != nil {
		return err
	}
	if err := required("image", n.Image); err != nil {
		return err
	}
	return required("category", n.Category)
}

type NewsRepository interface {
	Create(ctx context.Context, n *NewsArticle) error
	// List returns all articles newest first by article date.
	List(ctx context.Context) ([]NewsArticle, error)
	FindByID(ctx context.Context, id string) (*NewsArticle, error)
	Update(ctx context.Context, n *NewsArticle) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
