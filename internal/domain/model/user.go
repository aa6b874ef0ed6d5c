package model

import (
	"net/mail"
	"strings"
	"time"

	"storefront/internal/domain/apperror"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID         string    `bson:"_id"         json:"id"`
	Name       string    `bson:"name"        json:"name"`
	Email      string    `bson:"email"       json:"email"`
	Password   string    `bson:"password"    json:"-"`
	Role       Role      `bson:"role"        json:"role"`
	Phone      string    `bson:"phone"       json:"phone"`
	Address    string    `bson:"address"     json:"address"`
	TelegramID string    `bson:"telegram_id" json:"telegramId,omitempty"`
	CreatedAt  time.Time `bson:"created_at"  json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at"  json:"updatedAt"`
}

func (u *User) ApplyDefaults() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = RoleCustomer
	}
}

func (u *User) Validate() error {
	if err := required("name", u.Name); err != nil {
		return err
	}
	if err := required("email", u.Email); err != nil {
		return err
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return apperror.Validationf("email", "invalid email %q", u.Email)
	}

	return oneOf("role", u.Role, RoleCustomer, RoleAdmin)
}

// ValidatePassword checks a plain text password before hashing.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return apperror.Validation("password", "password must be at least 6 characters")
	}

	return nil
}
