package helper

import (
	"log"
	"time"

	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/go-co-op/gocron/v2"
)

var maintenanceScheduler gocron.Scheduler

// ScanDueMaintenance alerts managers about open maintenance jobs whose
// scheduled date has arrived.
func ScanDueMaintenance() {
	log.Println("[CRON] ScanDueMaintenance triggered")

	db := database.DB
	var jobs []model.Maintenance
	err := db.Where("is_completed = ?", false).
		Where("scheduled_date <= ?", utils.Today()).
		Find(&jobs).Error
	if err != nil {
		log.Printf("failed to scan maintenance jobs: %v", err)
		return
	}

	for i := range jobs {
		NotifyMaintenanceDue(&jobs[i])
	}
}

// StartMaintenanceScheduler runs the due-maintenance scan every morning.
func StartMaintenanceScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.Local),
	)
	if err != nil {
		log.Fatal(err)
	}

	maintenanceScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(7, 0, 0),
			),
		),
		gocron.NewTask(ScanDueMaintenance),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("maintenance scheduler started (07:00 daily)")
}
