package model

import (
	"time"

	"hotel_manager/utils"
)

// Booking statuses. Canceled and No-Show are terminal, as is Checked Out.
const (
	StatusPending    = "Pending"
	StatusCheckedIn  = "Checked In"
	StatusCheckedOut = "Checked Out"
	StatusCanceled   = "Canceled"
	StatusNoShow     = "No-Show"
)

// Payment methods.
const (
	PaymentCash    = "Cash"
	PaymentUPI     = "UPI"
	PaymentCard    = "Card"
	PaymentWallet  = "Wallet"
	PaymentGateway = "Gateway"
)

// BookingItem kinds.
const (
	ItemAmenity = "amenity"
	ItemSpa     = "spa"
)

type Booking struct {
	DTO
	PublicCode string           `gorm:"uniqueIndex;size:20" json:"publicCode"`
	UserId     uint             `gorm:"not null;index" json:"userId"`
	User       User             `gorm:"foreignKey:UserId" json:"user"`
	RoomId     uint             `gorm:"not null;index" json:"roomId"`
	Room       Room             `gorm:"foreignKey:RoomId" json:"room"`
	CheckIn    utils.CustomDate `gorm:"type:date;not null" json:"checkIn"`
	CheckOut   utils.CustomDate `gorm:"type:date;not null" json:"checkOut"`
	Guests     uint             `gorm:"not null;default:1" json:"guests"`
	Status     string           `gorm:"not null;default:Pending;index" json:"status"`

	// Line items are priced at booking time; catalog edits never rewrite them.
	Items []BookingItem `gorm:"foreignKey:BookingId;constraint:OnDelete:CASCADE" json:"items"`

	Subtotal float64 `gorm:"default:0" json:"subtotal"`
	Tax      float64 `gorm:"default:0" json:"tax"`
	Discount float64 `gorm:"default:0" json:"discount"`
	Total    float64 `gorm:"default:0" json:"total"`

	IsPaid           bool       `gorm:"not null;default:false" json:"isPaid"`
	PaymentMethod    string     `gorm:"size:50" json:"paymentMethod"`
	PaymentOrderId   string     `gorm:"size:100;index" json:"paymentOrderId"`
	GatewayPaymentId string     `gorm:"size:100" json:"gatewayPaymentId"`
	PaidAt           *time.Time `json:"paidAt,omitempty"`
	PaymentTime      *time.Time `json:"paymentTime,omitempty"`
	InvoiceEmailedAt *time.Time `json:"invoiceEmailedAt,omitempty"`

	NeedsCleaning bool       `gorm:"not null;default:false" json:"needsCleaning"`
	CleanedById   *uint      `json:"cleanedById,omitempty"`
	CleanedBy     *User      `gorm:"foreignKey:CleanedById" json:"cleanedBy,omitempty"`
	CleanedAt     *time.Time `json:"cleanedAt,omitempty"`

	IdProofUrl string `json:"idProofUrl"`
}

type Bookings []Booking

// BookingItem is a price snapshot of an amenity or spa service selected for a stay.
type BookingItem struct {
	DTO
	BookingId uint    `gorm:"not null;index" json:"bookingId"`
	Kind      string  `gorm:"not null;size:10" json:"kind"`
	Name      string  `gorm:"not null;size:100" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
}

type CreateBookingInput struct {
	RoomId        uint   `json:"roomId" validate:"required"`
	CheckIn       string `json:"checkIn" validate:"required"`
	CheckOut      string `json:"checkOut" validate:"required"`
	Guests        uint   `json:"guests" validate:"omitempty,min=1"`
	AmenityIds    []uint `json:"amenityIds"`
	SpaServiceIds []uint `json:"spaServiceIds"`
	IdProofUrl    string `json:"idProofUrl"`
}

// WalkInBookingInput creates the guest account and the pre-paid booking in one call.
type WalkInBookingInput struct {
	Username      string `json:"username" validate:"required,min=3,max=50"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address"`
	IdProofUrl    string `json:"idProofUrl"`
	RoomId        uint   `json:"roomId" validate:"required"`
	CheckIn       string `json:"checkIn" validate:"required"`
	CheckOut      string `json:"checkOut" validate:"required"`
	Guests        uint   `json:"guests" validate:"omitempty,min=1"`
	AmenityIds    []uint `json:"amenityIds"`
	SpaServiceIds []uint `json:"spaServiceIds"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=Cash UPI Card Wallet"`
}

type FilterBooking struct {
	Pagination
	RoomId  *uint   `json:"roomId"`
	Status  *string `json:"status"`
	CheckIn *string `json:"checkIn"`
}

// BillBreakdown mirrors the figures persisted on the booking row.
type BillBreakdown struct {
	RoomTotal    float64 `json:"roomTotal"`
	AmenityTotal float64 `json:"amenityTotal"`
	SpaTotal     float64 `json:"spaTotal"`
	Subtotal     float64 `json:"subtotal"`
	Tax          float64 `json:"tax"`
	Discount     float64 `json:"discount"`
	Total        float64 `json:"total"`
}
