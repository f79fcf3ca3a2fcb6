package model

import "time"

type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	CIN          string    `json:"cin" db:"cin"`
	Phone        string    `json:"phone" db:"phone"`
	Address      string    `json:"address" db:"address"`
	Role         Role      `json:"role" db:"role"`
	IsMember     bool      `json:"is_member" db:"is_member"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type Profile struct {
	User
	MembershipCard *MembershipCard `json:"membership_card,omitempty"`
	ActiveRentals  int             `json:"active_rentals"`
	CartItems      int             `json:"cart_items"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	CIN      string `json:"cin" validate:"required,max=50"`
	Phone    string `json:"phone" validate:"max=30"`
	Address  string `json:"address"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	User      User   `json:"user"`
}

type UserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	CIN      string `json:"cin" validate:"required,max=50"`
	Phone    string `json:"phone" validate:"max=30"`
	Address  string `json:"address"`
	Role     Role   `json:"role" validate:"omitempty,oneof=admin customer"`
	Password string `json:"password" validate:"omitempty,min=6,max=72"`
}

type MembershipCard struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	CardNumber string    `json:"card_number" db:"card_number"`
	ValidFrom  time.Time `json:"valid_from" db:"valid_from"`
	ValidUntil time.Time `json:"valid_until" db:"valid_until"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

func (c MembershipCard) Expired(now time.Time) bool {
	return c.ValidUntil.Before(now)
}

type MembershipCardRequest struct {
	UserID     int64  `json:"user_id" validate:"required,gt=0"`
	CardNumber string `json:"card_number" validate:"max=50"`
	ValidFrom  *Date  `json:"valid_from"`
	ValidUntil Date   `json:"valid_until" validate:"required"`
}
