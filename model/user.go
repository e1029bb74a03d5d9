package model

import "time"

type User struct {
	DTO
	Username string        `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Password string        `gorm:"not null" json:"-"`
	Email    string        `gorm:"not null" json:"email"`
	Role     string        `gorm:"not null;default:guest" json:"role"`
	Active   bool          `gorm:"not null;default:true" json:"active"`
	Profile  *GuestProfile `gorm:"foreignKey:UserId" json:"profile,omitempty"`
}

type Users []User

// GuestProfile holds contact details collected at registration or walk-in.
type GuestProfile struct {
	DTO
	UserId     uint   `gorm:"uniqueIndex;not null" json:"userId"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	IdProofUrl string `json:"idProofUrl"`
}

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address"`
}

type CreateStaffInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=manager receptionist housekeeping"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type PasswordResetToken struct {
	DTO
	UserId    uint      `gorm:"not null" json:"userId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	User      User      `gorm:"foreignKey:UserId" json:"user"`
}
