package model

type RoomType string

const (
	Single RoomType = "Single"
	Double RoomType = "Double"
	Suite  RoomType = "Suite"
)

type Room struct {
	DTO
	RoomNumber    string       `gorm:"uniqueIndex;not null;size:10" validate:"required" json:"roomNumber"`
	Type          RoomType     `gorm:"not null;default:Single" json:"type"`
	PricePerNight float64      `gorm:"not null" validate:"required,gt=0" json:"pricePerNight"`
	IsAvailable   bool         `gorm:"not null;default:true" json:"isAvailable"`
	Amenities     []Amenity    `gorm:"many2many:room_amenities;" json:"amenities"`
	SpaServices   []SpaService `gorm:"many2many:room_spa_services;" json:"spaServices"`
	Images        []RoomImage  `gorm:"foreignKey:RoomId;constraint:OnDelete:CASCADE" json:"images"`
}

type Rooms []Room

type RoomImage struct {
	DTO
	RoomId uint   `gorm:"not null" json:"roomId"`
	Url    string `gorm:"not null" json:"url"`
}

type Amenity struct {
	DTO
	Name  string  `gorm:"not null;size:100" validate:"required" json:"name"`
	Price float64 `gorm:"not null;default:0" json:"price"`
}

type SpaService struct {
	DTO
	Name  string  `gorm:"not null;size:100" validate:"required" json:"name"`
	Price float64 `gorm:"not null" validate:"required" json:"price"`
}

type CreateRoomInput struct {
	RoomNumber    string   `json:"roomNumber" validate:"required,max=10"`
	Type          RoomType `json:"type" validate:"required,oneof=Single Double Suite"`
	PricePerNight float64  `json:"pricePerNight" validate:"required,gt=0"`
	AmenityIds    []uint   `json:"amenityIds"`
	SpaServiceIds []uint   `json:"spaServiceIds"`
}

type EditRoomInput struct {
	RoomNumber    *string   `json:"roomNumber,omitempty"`
	Type          *RoomType `json:"type,omitempty" validate:"omitempty,oneof=Single Double Suite"`
	PricePerNight *float64  `json:"pricePerNight,omitempty" validate:"omitempty,gt=0"`
	IsAvailable   *bool     `json:"isAvailable,omitempty"`
	AmenityIds    *[]uint   `json:"amenityIds,omitempty"`
	SpaServiceIds *[]uint   `json:"spaServiceIds,omitempty"`
}

type AddRoomImageInput struct {
	Url string `json:"url" validate:"required,url"`
}

type CreatePricedItemInput struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Price float64 `json:"price" validate:"gte=0"`
}
