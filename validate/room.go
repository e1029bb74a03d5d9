package validate

import (
	"errors"
	"strconv"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateRoom() fiber.Handler {
	return body[model.CreateRoomInput]("createRoomInput")
}

func EditRoom(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditRoomInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("editRoomInput", input)
		c.Locals("roomId", valueKey)
		return c.Next()
	}
}

func AddRoomImage() fiber.Handler {
	return body[model.AddRoomImageInput]("addRoomImageInput")
}

func CreatePricedItem() fiber.Handler {
	return body[model.CreatePricedItemInput]("createPricedItemInput")
}
