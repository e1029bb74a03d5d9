package model

type ContactMessage struct {
	DTO
	Name    string `gorm:"not null;size:100" validate:"required" json:"name"`
	Email   string `gorm:"not null" validate:"required,email" json:"email"`
	Subject string `gorm:"not null;size:150" validate:"required" json:"subject"`
	Message string `gorm:"not null" validate:"required" json:"message"`
	IsRead  bool   `gorm:"not null;default:false" json:"isRead"`
}

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=150"`
	Message string `json:"message" validate:"required"`
}
