package domain

import (
	"context"
	"fmt"
	"time"
)

const (
	DonationCash  = "cash"
	DonationItems = "items"
)

// Donation is a public submission from the donate page. Amount is only
// meaningful for cash donations and Items for item donations, but both
// are persisted exactly as supplied; the schema never enforced
// exclusivity and accepted inputs must stay accepted.
type Donation struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Type      string    `gorm:"size:16;not null" json:"type"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Email     string    `gorm:"size:191;not null" json:"email"`
	Amount    float64   `json:"amount"`
	Items     string    `gorm:"type:text" json:"items"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Donation) TableName() string { return "donations" }

func (d *Donation) Validate() error {
	if err := required("type", d.Type); err != nil {
		return err
	}
	if d.Type != DonationCash && d.Type != DonationItems {
		return fmt.Errorf("invalid donation type: %q", d.Type)
	}
	if err := required("name", d.Name); err != nil {
		return err
	}
	return required("email", d.Email)
}

type DonationRepository interface {
	Create(ctx context.Context, d *Donation) error
	// List returns all donations newest first.
	List(ctx context.Context) ([]Donation, error)
	FindByID(ctx context.Context, id string) (*Donation, error)
	Update(ctx context.Context, d *Donation) error
	Delete(ctx context.Context, id string) (bool, error)
	// Totals reports the donation count and the summed amount of cash
	// donations, for the dashboard.
	Totals(ctx context.Context) (count int64, cashTotal float64, err error)
}
