package model

import "hotel_manager/utils"

type StaffSalary struct {
	DTO
	UserId       uint    `gorm:"uniqueIndex;not null" json:"userId"`
	User         User    `gorm:"foreignKey:UserId" json:"user"`
	DailyRate    float64 `gorm:"not null" json:"dailyRate"`
	AssignedById *uint   `json:"assignedById,omitempty"`
}

// StaffAttendance keeps one row per (staff, date); the composite unique
// index backs up the application-level duplicate check.
type StaffAttendance struct {
	DTO
	UserId  uint             `gorm:"not null;uniqueIndex:idx_attendance_user_date" json:"userId"`
	User    User             `gorm:"foreignKey:UserId" json:"user"`
	Date    utils.CustomDate `gorm:"type:date;not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	Present bool             `gorm:"not null;default:false" json:"present"`
}

type AssignSalaryInput struct {
	UserId    uint    `json:"userId" validate:"required"`
	DailyRate float64 `json:"dailyRate" validate:"required,gt=0"`
}

type MarkAttendanceInput struct {
	UserId uint   `json:"userId" validate:"required"`
	Date   string `json:"date" validate:"required"`
}

type SalaryReportRow struct {
	UserId      uint    `json:"userId"`
	Username    string  `json:"username"`
	Role        string  `json:"role"`
	DailyRate   float64 `json:"dailyRate"`
	DaysPresent int64   `json:"daysPresent"`
	TotalSalary float64 `json:"totalSalary"`
}
