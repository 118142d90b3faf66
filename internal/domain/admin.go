package domain

import (
	"context"
	"fmt"
	"time"
)

// Admin roles. New accounts default to Editor.
const (
	RoleEditor     = "Editor"
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "Super Admin"
)

type Admin struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         string    `gorm:"size:32;not null;default:Editor" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Admin) TableName() string { return "admins" }

func (a *Admin) Validate() error {
	if err := required("name", a.Name); err != nil {
		return err
	}
	if err := required("email", a.Email); err != nil {
		return err
	}
	switch a.Role {
	case RoleEditor, RoleAdmin, RoleSuperAdmin:
		return nil
	default:
		return fmt.Errorf("invalid role: %q", a.Role)
	}
}

type AdminRepository interface {
	Create(ctx context.Context, a *Admin) error
	List(ctx context.Context) ([]Admin, error)
	FindByID(ctx context.Context, id string) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	Update(ctx context.Context, a *Admin) error
	Delete(ctx context.Context, id string) (bool, error)
}
