package helper

import (
	"testing"

	"hotel_manager/constants"
	"hotel_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestMarkAttendance(t *testing.T) {
	db := setupTestDB(t)
	staff := createTestUser(t, db, "housekeeper1", constants.ROLE_HOUSEKEEPING)

	attendance, err := MarkAttendance(db, staff.ID, date(t, "2026-08-10"), true)
	assert.NoError(t, err)
	assert.True(t, attendance.Present)

	_, err = MarkAttendance(db, staff.ID, date(t, "2026-08-10"), true)
	assert.ErrorIs(t, err, ErrDuplicateAttendance)

	// Marking absent for the same day is still a duplicate.
	_, err = MarkAttendance(db, staff.ID, date(t, "2026-08-10"), false)
	assert.ErrorIs(t, err, ErrDuplicateAttendance)

	_, err = MarkAttendance(db, staff.ID, date(t, "2026-08-11"), false)
	assert.NoError(t, err)
}

func TestMarkAttendanceSurfacesUnrelatedErrors(t *testing.T) {
	db := setupTestDB(t)
	staff := createTestUser(t, db, "housekeeper1", constants.ROLE_HOUSEKEEPING)
	assert.NoError(t, db.Migrator().DropTable(&model.StaffAttendance{}))

	_, err := MarkAttendance(db, staff.ID, date(t, "2026-08-10"), true)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateAttendance, "a broken table is not a duplicate mark")
}

func TestSalaryReport(t *testing.T) {
	db := setupTestDB(t)
	housekeeper := createTestUser(t, db, "housekeeper1", constants.ROLE_HOUSEKEEPING)
	receptionist := createTestUser(t, db, "receptionist1", constants.ROLE_RECEPTIONIST)

	assert.NoError(t, db.Create(&model.StaffSalary{UserId: housekeeper.ID, DailyRate: 800}).Error)
	assert.NoError(t, db.Create(&model.StaffSalary{UserId: receptionist.ID, DailyRate: 1200.50}).Error)

	for _, day := range []string{"2026-08-03", "2026-08-04", "2026-08-05"} {
		_, err := MarkAttendance(db, housekeeper.ID, date(t, day), true)
		assert.NoError(t, err)
	}
	// Absences never pay out.
	_, err := MarkAttendance(db, housekeeper.ID, date(t, "2026-08-06"), false)
	assert.NoError(t, err)
	// Days outside the month are not counted.
	_, err = MarkAttendance(db, housekeeper.ID, date(t, "2026-07-31"), true)
	assert.NoError(t, err)
	_, err = MarkAttendance(db, housekeeper.ID, date(t, "2026-09-01"), true)
	assert.NoError(t, err)

	_, err = MarkAttendance(db, receptionist.ID, date(t, "2026-08-03"), true)
	assert.NoError(t, err)

	rows, err := SalaryReport("08-2026")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	byUser := make(map[uint]model.SalaryReportRow, len(rows))
	for _, row := range rows {
		byUser[row.UserId] = row
	}

	assert.Equal(t, int64(3), byUser[housekeeper.ID].DaysPresent)
	assert.Equal(t, 2400.0, byUser[housekeeper.ID].TotalSalary)
	assert.Equal(t, "housekeeper1", byUser[housekeeper.ID].Username)

	assert.Equal(t, int64(1), byUser[receptionist.ID].DaysPresent)
	assert.Equal(t, 1200.50, byUser[receptionist.ID].TotalSalary)
}

func TestSalaryReportRejectsBadMonth(t *testing.T) {
	setupTestDB(t)

	_, err := SalaryReport("2026-08")
	assert.Error(t, err)
}
