package model

import "hotel_manager/utils"

type Maintenance struct {
	DTO
	RoomId        uint             `gorm:"not null;index" json:"roomId"`
	Room          Room             `gorm:"foreignKey:RoomId" json:"room"`
	Issue         string           `gorm:"not null" validate:"required" json:"issue"`
	ScheduledDate utils.CustomDate `gorm:"type:date;not null" json:"scheduledDate"`
	IsCompleted   bool             `gorm:"not null;default:false" json:"isCompleted"`
}

type CreateMaintenanceInput struct {
	RoomId        uint   `json:"roomId" validate:"required"`
	Issue         string `json:"issue" validate:"required"`
	ScheduledDate string `json:"scheduledDate" validate:"required"`
}
