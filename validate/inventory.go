package validate

import (
	"errors"
	"strconv"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateInventoryItem() fiber.Handler {
	return body[model.CreateInventoryItemInput]("createInventoryItemInput")
}

func EditInventoryItem(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditInventoryItemInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("editInventoryItemInput", input)
		c.Locals("itemId", valueKey)
		return c.Next()
	}
}

func LogUsage() fiber.Handler {
	return body[model.LogUsageInput]("logUsageInput")
}
