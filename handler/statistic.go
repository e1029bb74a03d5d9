package handler

import (
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats aggregates the manager dashboard figures.
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.DB
	today := utils.Today()
	yesterday := utils.CustomDate{Time: today.AddDate(0, 0, -1)}

	var totalRooms, occupiedRooms int64
	db.Model(&model.Room{}).Count(&totalRooms)
	db.Model(&model.Booking{}).Where("status = ?", model.StatusCheckedIn).Count(&occupiedRooms)

	occupancyRate := 0.0
	if totalRooms > 0 {
		occupancyRate = float64(occupiedRooms) / float64(totalRooms) * 100
	}

	var pendingBookings, arrivalsToday int64
	db.Model(&model.Booking{}).Where("status = ?", model.StatusPending).Count(&pendingBookings)
	db.Model(&model.Booking{}).Where("status = ? AND check_in = ?", model.StatusPending, today).Count(&arrivalsToday)

	var revenueToday, revenueYesterday float64
	startToday := today.Time
	startYesterday := yesterday.Time
	db.Model(&model.Booking{}).
		Where("is_paid = ? AND paid_at >= ? AND paid_at < ?", true, startToday, startToday.Add(24*time.Hour)).
		Select("COALESCE(SUM(total), 0)").Scan(&revenueToday)
	db.Model(&model.Booking{}).
		Where("is_paid = ? AND paid_at >= ? AND paid_at < ?", true, startYesterday, startToday).
		Select("COALESCE(SUM(total), 0)").Scan(&revenueYesterday)

	var cleaningQueue, openMaintenance, lowStockItems int64
	db.Model(&model.Booking{}).Where("needs_cleaning = ?", true).Count(&cleaningQueue)
	db.Model(&model.Maintenance{}).Where("is_completed = ?", false).Count(&openMaintenance)
	db.Model(&model.InventoryItem{}).Where("quantity < threshold").Count(&lowStockItems)

	var avgRating float64
	db.Model(&model.Feedback{}).Select("COALESCE(AVG(rating), 0)").Scan(&avgRating)

	var unreadFeedback, lowRatingCount int64
	db.Model(&model.Feedback{}).Where("is_read = ?", false).Count(&unreadFeedback)
	db.Model(&model.Feedback{}).Where("rating <= ?", 2).Count(&lowRatingCount)

	var unpaidTotal float64
	db.Model(&model.Booking{}).
		Where("is_paid = ? AND status IN ?", false, []string{model.StatusPending, model.StatusCheckedIn}).
		Select("COALESCE(SUM(total), 0)").Scan(&unpaidTotal)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"totalRooms":       totalRooms,
		"occupiedRooms":    occupiedRooms,
		"occupancyRate":    occupancyRate,
		"pendingBookings":  pendingBookings,
		"arrivalsToday":    arrivalsToday,
		"revenueToday":     revenueToday,
		"revenueYesterday": revenueYesterday,
		"revenueGrowth":    utils.CalculateGrowth(revenueToday, revenueYesterday),
		"cleaningQueue":    cleaningQueue,
		"openMaintenance":  openMaintenance,
		"lowStockItems":    lowStockItems,
		"averageRating":    avgRating,
		"unreadFeedback":   unreadFeedback,
		"lowRatingCount":   lowRatingCount,
		"unpaidTotal":      unpaidTotal,
	})
}

// GetRevenueByMonth sums paid booking totals per day for a month.
func GetRevenueByMonth(c *fiber.Ctx) error {
	month := c.Query("month")
	if !utils.IsValidMMYYYY(month) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "month must be in MM-YYYY format", nil)
	}
	start, _ := time.Parse("01-2006", month)
	end := start.AddDate(0, 1, 0)

	type dailyRevenue struct {
		Day   string  `json:"day"`
		Total float64 `json:"total"`
	}
	var rows []dailyRevenue
	err := database.DB.Model(&model.Booking{}).
		Select("DATE(paid_at) as day, SUM(total) as total").
		Where("is_paid = ? AND paid_at >= ? AND paid_at < ?", true, start, end).
		Group("DATE(paid_at)").
		Order("day asc").
		Scan(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}
