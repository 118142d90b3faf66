package domain

import (
	"context"
	"fmt"
	"time"
)

const (
	VolunteerChildren  = "children"
	VolunteerElderly   = "elderly"
	VolunteerCommunity = "community"
)

type Volunteer struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Email     string    `gorm:"size:191;not null" json:"email"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Type      string    `gorm:"size:16;not null" json:"type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Volunteer) TableName() string { return "volunteers" }

func (v *Volunteer) Validate() error {
	if err := required("name", v.Name); err != nil {
		return err
	}
	if err := required("email", v.Email); err != nil {
		return err
	}
	if err := required("type", v.Type); err != nil {
		return err
	}
	switch v.Type {
	case VolunteerChildren, VolunteerElderly, VolunteerCommunity:
	default:
		return fmt.Errorf("invalid volunteer type: %q", v.Type)
	}
	return required("message", v.Message)
}

type VolunteerRepository interface {
	Create(ctx context.Context, v *Volunteer) error
	// List returns all volunteers newest first.
	List(ctx context.Context) ([]Volunteer, error)
	FindByID(ctx context.Context, id string) (*Volunteer, error)
	Update(ctx context.Context, v *Volunteer) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
