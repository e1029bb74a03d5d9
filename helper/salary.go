package helper

import (
	"errors"
	"strings"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/gorm"
)

var ErrDuplicateAttendance = errors.New(constants.DUPLICATE_ATTENDANCE)

// MarkAttendance records one attendance row per staff member per date.
// The composite unique index catches any race the pre-check misses.
func MarkAttendance(db *gorm.DB, userId uint, date utils.CustomDate, present bool) (*model.StaffAttendance, error) {
	var count int64
	err := db.Model(&model.StaffAttendance{}).
		Where("user_id = ? AND date = ?", userId, date).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateAttendance
	}

	attendance := model.StaffAttendance{UserId: userId, Date: date, Present: present}
	if err := db.Create(&attendance).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateAttendance
		}
		return nil, err
	}
	return &attendance, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

// monthRange converts "MM-YYYY" into [first day, first day of next month).
func monthRange(month string) (utils.CustomDate, utils.CustomDate, error) {
	t, err := time.Parse("01-2006", month)
	if err != nil {
		return utils.CustomDate{}, utils.CustomDate{}, err
	}
	start := utils.CustomDate{Time: t}
	end := utils.CustomDate{Time: t.AddDate(0, 1, 0)}
	return start, end, nil
}

// SalaryReport computes per-staff pay for the month: daily rate times
// days marked present.
func SalaryReport(month string) ([]model.SalaryReportRow, error) {
	start, end, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	db := database.DB
	var salaries []model.StaffSalary
	if err := db.Preload("User").Find(&salaries).Error; err != nil {
		return nil, err
	}

	rows := make([]model.SalaryReportRow, 0, len(salaries))
	for _, salary := range salaries {
		var daysPresent int64
		err := db.Model(&model.StaffAttendance{}).
			Where("user_id = ? AND present = ?", salary.UserId, true).
			Where("date >= ? AND date < ?", start, end).
			Count(&daysPresent).Error
		if err != nil {
			return nil, err
		}

		rows = append(rows, model.SalaryReportRow{
			UserId:      salary.UserId,
			Username:    salary.User.Username,
			Role:        salary.User.Role,
			DailyRate:   salary.DailyRate,
			DaysPresent: daysPresent,
			TotalSalary: Round2(salary.DailyRate * float64(daysPresent)),
		})
	}
	return rows, nil
}
