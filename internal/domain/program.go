package domain

import (
	"context"
	"fmt"
	"time"
)

const (
	ProgramActive   = "Active"
	ProgramInactive = "Inactive"
)

type Program struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Image       string    `gorm:"size:512;not null" json:"image"`
	Status      string    `gorm:"size:16;not null;default:Active" json:"status"`
	Link        string    `gorm:"size:512" json:"link"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Content     string    `gorm:"type:text" json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Program) TableName() string { return "programs" }

// Validate enforces the schema-level constraints and is re-run on every
// write, including partial updates. Content is only mandatory at
// creation and is checked by the create handler.
func (p *Program) Validate() error {
	if err := required("title", p.Title); err != nil {
		return err
	}
	if err := required("description", p.Description); err != nil {
		return err
	}
	if err := required("image", p.Image); err != nil {
		return err
	}
	if p.Date.IsZero() {
		return fmt.Errorf("missing required field: date")
	}
	switch p.Status {
	case ProgramActive, ProgramInactive:
		return nil
	default:
		return fmt.Errorf("invalid status: %q", p.Status)
	}
}

type ProgramRepository interface {
	Create(ctx context.Context, p *Program) error
	// List returns all programs ordered by scheduled date ascending.
	List(ctx context.Context) ([]Program, error)
	FindByID(ctx context.Context, id string) (*Program, error)
	Update(ctx context.Context, p *Program) error
	Delete(ctx context.Context, id string) (bool, error)
	CountActive(ctx context.Context) (int64, error)
}
