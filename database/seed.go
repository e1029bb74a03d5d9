package database

import (
	"log"

	"hotel_manager/constants"
	"hotel_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "admin123"
	}
	users := []model.User{
		{Username: "admin", Email: "admin@hotel.local", Password: HashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, user := range users {
		if err := db.Where(model.User{Username: user.Username}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed data for user:", user.Username, "error:", err)
		}
	}

	amenities := []model.Amenity{
		{Name: "Breakfast", Price: 250},
		{Name: "Airport Pickup", Price: 800},
		{Name: "Late Checkout", Price: 500},
		{Name: "Mini Bar", Price: 400},
	}
	for _, amenity := range amenities {
		if err := db.Where(model.Amenity{Name: amenity.Name}).FirstOrCreate(&amenity).Error; err != nil {
			log.Println("failed to seed data for amenity:", amenity.Name, "error:", err)
		}
	}

	spaServices := []model.SpaService{
		{Name: "Swedish Massage", Price: 1500},
		{Name: "Aromatherapy", Price: 1800},
		{Name: "Sauna Session", Price: 900},
	}
	for _, spa := range spaServices {
		if err := db.Where(model.SpaService{Name: spa.Name}).FirstOrCreate(&spa).Error; err != nil {
			log.Println("failed to seed data for spa service:", spa.Name, "error:", err)
		}
	}

	rooms := []model.Room{
		{RoomNumber: "101", Type: model.Single, PricePerNight: 1000, IsAvailable: true},
		{RoomNumber: "102", Type: model.Single, PricePerNight: 1000, IsAvailable: true},
		{RoomNumber: "201", Type: model.Double, PricePerNight: 1800, IsAvailable: true},
		{RoomNumber: "202", Type: model.Double, PricePerNight: 1800, IsAvailable: true},
		{RoomNumber: "301", Type: model.Suite, PricePerNight: 3500, IsAvailable: true},
	}
	for _, room := range rooms {
		if err := db.Where(model.Room{RoomNumber: room.RoomNumber}).FirstOrCreate(&room).Error; err != nil {
			log.Println("failed to seed data for room:", room.RoomNumber, "error:", err)
		}
	}

	inventory := []model.InventoryItem{
		{Name: "Towels", Quantity: 200, Threshold: 50},
		{Name: "Bed Sheets", Quantity: 150, Threshold: 40},
		{Name: "Toiletry Kits", Quantity: 300, Threshold: 80},
	}
	for _, item := range inventory {
		if err := db.Where(model.InventoryItem{Name: item.Name}).FirstOrCreate(&item).Error; err != nil {
			log.Println("failed to seed data for inventory item:", item.Name, "error:", err)
		}
	}
}
