package dto

import "storefront/internal/domain/model"

type UserInput struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Password   string     `json:"password"`
	Role       model.Role `json:"role"`
	Phone      string     `json:"phone"`
	Address    string     `json:"address"`
	TelegramID string     `json:"telegramId"`
}

func (in UserInput) User() *model.User {
	return &model.User{
		Name:       in.Name,
		Email:      in.Email,
		Role:       in.Role,
		Phone:      in.Phone,
		Address:    in.Address,
		TelegramID: in.TelegramID,
	}
}

// UserPatch changes profile fields. Password is hashed by the service and
// never goes through Apply.
type UserPatch struct {
	Name       *string     `json:"name"`
	Email      *string     `json:"email"`
	Password   *string     `json:"password"`
	Role       *model.Role `json:"role"`
	Phone      *string     `json:"phone"`
	Address    *string     `json:"address"`
	TelegramID *string     `json:"telegramId"`
}

func (in UserPatch) Apply(u *model.User) Fields {
	fields := Fields{}
	set(fields, "name", &u.Name, in.Name)
	set(fields, "email", &u.Email, in.Email)
	set(fields, "role", &u.Role, in.Role)
	set(fields, "phone", &u.Phone, in.Phone)
	set(fields, "address", &u.Address, in.Address)
	set(fields, "telegram_id", &u.TelegramID, in.TelegramID)

	return fields
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Token struct {
	AccessToken string     `json:"accessToken"`
	TokenType   string     `json:"tokenType"`
	ExpiresAt   int64      `json:"expiresAt"`
	User        model.User `json:"user"`
}
