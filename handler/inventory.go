package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetInventory(c *fiber.Ctx) error {
	var items []model.InventoryItem
	query := database.DB.Order("name asc")
	if c.Query("belowThreshold") == "true" {
		query = query.Where("quantity < threshold")
	}
	if err := query.Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func CreateInventoryItem(c *fiber.Ctx) error {
	input, ok := c.Locals("createInventoryItemInput").(model.CreateInventoryItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	item := model.InventoryItem{
		Name:        input.Name,
		Description: input.Description,
		Quantity:    input.Quantity,
		Threshold:   input.Threshold,
	}
	if item.Threshold == 0 {
		item.Threshold = 10
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func EditInventoryItem(c *fiber.Ctx) error {
	input, ok := c.Locals("editInventoryItemInput").(model.EditInventoryItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	itemId := c.Locals("itemId").(int)

	var item model.InventoryItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Inventory item not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Threshold != nil {
		item.Threshold = *input.Threshold
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if item.IsBelowThreshold() {
		helper.NotifyLowStock(&item)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

// LogInventoryUsage decrements stock and appends a usage row in one
// transaction. Fires the low-stock alert when the threshold is crossed.
func LogInventoryUsage(c *fiber.Ctx) error {
	_, user, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	input, ok := c.Locals("logUsageInput").(model.LogUsageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var item model.InventoryItem
	var logRow model.InventoryUsageLog
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, input.ItemId).Error; err != nil {
			return err
		}
		if item.Quantity < input.QuantityUsed {
			return errors.New(constants.INSUFFICIENT_STOCK)
		}

		item.Quantity -= input.QuantityUsed
		if err := tx.Model(&item).Update("quantity", item.Quantity).Error; err != nil {
			return err
		}

		logRow = model.InventoryUsageLog{
			ItemId:       item.ID,
			RoomId:       input.RoomId,
			UsedById:     user.ID,
			QuantityUsed: input.QuantityUsed,
		}
		return tx.Create(&logRow).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Inventory item not found", err)
		}
		if err.Error() == constants.INSUFFICIENT_STOCK {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.INSUFFICIENT_STOCK, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if item.IsBelowThreshold() {
		helper.NotifyLowStock(&item)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, logRow)
}

func GetUsageLogs(c *fiber.Ctx) error {
	var logs []model.InventoryUsageLog
	query := database.DB.Preload("Item").Preload("UsedBy")
	if itemId := c.Query("itemId"); itemId != "" {
		query = query.Where("item_id = ?", itemId)
	}
	if err := query.Order("created_at desc").Limit(200).Find(&logs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, logs)
}
