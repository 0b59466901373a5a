package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
)

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	Image          string    `json:"image"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	TelegramChatID *int64
}

type LoginInput struct {
	Email    string
	Password string
}
