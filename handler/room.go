package handler

import (
	"errors"
	"strconv"
	"strings"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetRooms(c *fiber.Ctx) error {
	var rooms model.Rooms
	var total int64
	db := database.DB
	search := strings.TrimSpace(c.Query("search", ""))
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	if page < 1 {
		page = 1
	}

	query := db.Model(&model.Room{}).Preload("Amenities").Preload("SpaServices").Preload("Images")
	if search != "" {
		query = query.Where("room_number ILIKE ? OR type ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if roomType := c.Query("type"); roomType != "" {
		query = query.Where("type = ?", roomType)
	}

	if err := query.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	query = utils.ApplyPagination(query, &limit, &page)
	if err := query.Order("room_number asc").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rooms": rooms,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func GetRoomById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var room model.Room
	err := database.DB.Preload("Amenities").Preload("SpaServices").Preload("Images").First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Room not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

// SearchAvailableRooms lists rooms free for the requested date range.
func SearchAvailableRooms(c *fiber.Ctx) error {
	checkIn, err := utils.ParseDate(c.Query("checkIn"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid checkIn date", err)
	}
	checkOut, err := utils.ParseDate(c.Query("checkOut"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid checkOut date", err)
	}
	if !checkOut.After(checkIn.Time) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CHECKOUT_BEFORE_CHECKIN, errors.New("invalid range"))
	}
	if checkIn.Before(utils.Today().Time) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CHECKIN_IN_PAST, errors.New("invalid range"))
	}

	var roomType *model.RoomType
	if t := c.Query("type"); t != "" {
		rt := model.RoomType(t)
		roomType = &rt
	}

	rooms, err := helper.FindAvailableRooms(database.DB, checkIn, checkOut, roomType)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rooms)
}

func CreateRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("createRoomInput").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var room model.Room
	if err := copier.Copy(&room, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	room.IsAvailable = true

	db := database.DB
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&room).Error; err != nil {
			return err
		}
		if len(input.AmenityIds) > 0 {
			var amenities []model.Amenity
			if err := tx.Where("id IN ?", input.AmenityIds).Find(&amenities).Error; err != nil {
				return err
			}
			if err := tx.Model(&room).Association("Amenities").Replace(amenities); err != nil {
				return err
			}
		}
		if len(input.SpaServiceIds) > 0 {
			var services []model.SpaService
			if err := tx.Where("id IN ?", input.SpaServiceIds).Find(&services).Error; err != nil {
				return err
			}
			if err := tx.Model(&room).Association("SpaServices").Replace(services); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create room", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

func EditRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("editRoomInput").(model.EditRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	roomId := c.Locals("roomId").(int)

	var room model.Room
	if err := database.DB.First(&room, roomId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Room not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.RoomNumber != nil {
		room.RoomNumber = *input.RoomNumber
	}
	if input.Type != nil {
		room.Type = *input.Type
	}
	// Price edits only affect future bookings; existing bookings keep
	// their snapshotted totals.
	if input.PricePerNight != nil {
		room.PricePerNight = *input.PricePerNight
	}
	if input.IsAvailable != nil {
		room.IsAvailable = *input.IsAvailable
	}

	db := database.DB
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&room).Error; err != nil {
			return err
		}
		if input.AmenityIds != nil {
			var amenities []model.Amenity
			if err := tx.Where("id IN ?", *input.AmenityIds).Find(&amenities).Error; err != nil {
				return err
			}
			if err := tx.Model(&room).Association("Amenities").Replace(amenities); err != nil {
				return err
			}
		}
		if input.SpaServiceIds != nil {
			var services []model.SpaService
			if err := tx.Where("id IN ?", *input.SpaServiceIds).Find(&services).Error; err != nil {
				return err
			}
			if err := tx.Model(&room).Association("SpaServices").Replace(services); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update room", err)
	}

	database.DB.Preload("Amenities").Preload("SpaServices").Preload("Images").First(&room, room.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func DeleteRoom(c *fiber.Ctx) error {
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	for _, id := range ids {
		var count int64
		database.DB.Model(&model.Booking{}).
			Where("room_id = ?", id).
			Where("status IN ?", []string{model.StatusPending, model.StatusCheckedIn}).
			Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ROOM_HAS_BOOKINGS, errors.New("room in use"))
		}
	}

	if err := database.DB.Delete(&model.Room{}, ids).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Rooms deleted",
		"ids":     ids,
	})
}

// AddRoomImage attaches an already-uploaded image URL to the room.
func AddRoomImage(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input, ok := c.Locals("addRoomImageInput").(model.AddRoomImageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var room model.Room
	if err := database.DB.First(&room, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Room not found", err)
	}

	image := model.RoomImage{RoomId: room.ID, Url: input.Url}
	if err := database.DB.Create(&image).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, image)
}

// UploadRoomImage accepts a multipart image and pushes it to the media
// CDN server-side, for clients that cannot do signed direct uploads.
func UploadRoomImage(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var room model.Room
	if err := database.DB.First(&room, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Room not found", err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Image file is required", err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer file.Close()

	cld, err := helper.NewCloudinary()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	publicID := slug.Make("room-"+room.RoomNumber) + "-" + uuid.New().String()[:8]
	url, _, err := helper.UploadImage(cld, c.Context(), file, "rooms", publicID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload failed", err)
	}

	image := model.RoomImage{RoomId: room.ID, Url: url}
	if err := database.DB.Create(&image).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, image)
}

func DeleteRoomImage(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var image model.RoomImage
	if err := database.DB.First(&image, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Image not found", err)
	}

	if cld, err := helper.NewCloudinary(); err == nil {
		// URL path after /upload/ is the public ID
		if idx := strings.Index(image.Url, "/upload/"); idx != -1 {
			publicID := image.Url[idx+len("/upload/"):]
			if dot := strings.LastIndex(publicID, "."); dot != -1 {
				publicID = publicID[:dot]
			}
			helper.DestroyImage(cld, publicID)
		}
	}

	if err := database.DB.Delete(&image).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Image deleted"})
}

// --- amenity / spa catalog ---

func GetAmenities(c *fiber.Ctx) error {
	var amenities []model.Amenity
	if err := database.DB.Order("name asc").Find(&amenities).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, amenities)
}

func CreateAmenity(c *fiber.Ctx) error {
	input, ok := c.Locals("createPricedItemInput").(model.CreatePricedItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	amenity := model.Amenity{Name: input.Name, Price: input.Price}
	if err := database.DB.Create(&amenity).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, amenity)
}

func DeleteAmenity(c *fiber.Ctx) error {
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	if err := database.DB.Delete(&model.Amenity{}, arrayId.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Amenities deleted", "ids": arrayId.IDs})
}

func GetSpaServices(c *fiber.Ctx) error {
	var services []model.SpaService
	if err := database.DB.Order("name asc").Find(&services).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, services)
}

func CreateSpaService(c *fiber.Ctx) error {
	input, ok := c.Locals("createPricedItemInput").(model.CreatePricedItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	service := model.SpaService{Name: input.Name, Price: input.Price}
	if err := database.DB.Create(&service).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, service)
}

func DeleteSpaService(c *fiber.Ctx) error {
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	if err := database.DB.Delete(&model.SpaService{}, arrayId.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Spa services deleted", "ids": arrayId.IDs})
}
