package model

type Feedback struct {
	DTO
	UserId            uint    `gorm:"not null" json:"userId"`
	User              User    `gorm:"foreignKey:UserId" json:"user"`
	BookingId         uint    `gorm:"not null;uniqueIndex" json:"bookingId"`
	Booking           Booking `gorm:"foreignKey:BookingId" json:"booking"`
	Rating            int     `gorm:"not null" json:"rating"`
	CleanlinessRating int     `gorm:"not null" json:"cleanlinessRating"`
	ServiceRating     int     `gorm:"not null" json:"serviceRating"`
	FacilitiesRating  int     `gorm:"not null" json:"facilitiesRating"`
	Comment           string  `json:"comment"`
	IsRead            bool    `gorm:"not null;default:false" json:"isRead"`
}

type SubmitFeedbackInput struct {
	Rating            int    `json:"rating" validate:"required,min=1,max=5"`
	CleanlinessRating int    `json:"cleanlinessRating" validate:"required,min=1,max=5"`
	ServiceRating     int    `json:"serviceRating" validate:"required,min=1,max=5"`
	FacilitiesRating  int    `json:"facilitiesRating" validate:"required,min=1,max=5"`
	Comment           string `json:"comment"`
}
