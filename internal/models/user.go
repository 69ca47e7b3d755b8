package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is a record of the backend users resource.
type User struct {
	ID          string    `json:"_id"`
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL,omitempty"`
	Role        string    `json:"role,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u User) GetID() string { return u.ID }

type UserDraft struct {
	UID         string `json:"uid,omitempty"`
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName" validate:"max=100"`
	PhotoURL    string `json:"photoURL,omitempty" validate:"omitempty,url"`
	Role        string `json:"role,omitempty" validate:"omitempty,oneof=admin manager staff"`
}

// Profile is the signed-in identity as reported by the identity provider.
type Profile struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName,omitempty"`
	PhotoURL      string `json:"photoURL,omitempty"`
	EmailVerified bool   `json:"emailVerified"`
}

// for sign-in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// for sign-up
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"displayName" validate:"max=100"`
}

// Code and NewPassword are empty when only requesting a reset code.
type PasswordResetRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code,omitempty"`
	NewPassword string `json:"newPassword,omitempty" validate:"omitempty,min=6"`
}

type ProfileUpdate struct {
	DisplayName *string `json:"displayName,omitempty" validate:"omitempty,max=100"`
	PhotoURL    *string `json:"photoURL,omitempty" validate:"omitempty,url"`
}

type LoginResponse struct {
	Token     string  `json:"token"`
	ExpiresIn int     `json:"expires_in"`
	User      Profile `json:"user"`
}

type PasswordResetResponse struct {
	Message string `json:"message"`
}

// JWT claims structure

type Claims struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
