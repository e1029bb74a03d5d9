package model

// Notification rows are created by system rules only, never by user input.
type Notification struct {
	DTO
	UserId   uint   `gorm:"not null;index" json:"userId"`
	User     User   `gorm:"foreignKey:UserId" json:"user"`
	EventKey string `gorm:"not null;size:100;index" json:"eventKey"`
	Message  string `gorm:"not null" json:"message"`
	IsRead   bool   `gorm:"not null;default:false" json:"isRead"`
}
