package model

type InventoryItem struct {
	DTO
	Name        string `gorm:"not null;size:100" validate:"required" json:"name"`
	Description string `json:"description"`
	Quantity    uint   `gorm:"not null;default:0" json:"quantity"`
	Threshold   uint   `gorm:"not null;default:10" json:"threshold"`
}

func (i *InventoryItem) IsBelowThreshold() bool {
	return i.Quantity < i.Threshold
}

// InventoryUsageLog rows are append-only.
type InventoryUsageLog struct {
	DTO
	ItemId       uint          `gorm:"not null;index" json:"itemId"`
	Item         InventoryItem `gorm:"foreignKey:ItemId" json:"item"`
	RoomId       *uint         `json:"roomId,omitempty"`
	UsedById     uint          `gorm:"not null" json:"usedById"`
	UsedBy       User          `gorm:"foreignKey:UsedById" json:"usedBy"`
	QuantityUsed uint          `gorm:"not null" json:"quantityUsed"`
}

type CreateInventoryItemInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Quantity    uint   `json:"quantity"`
	Threshold   uint   `json:"threshold"`
}

type EditInventoryItemInput struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
	Quantity    *uint   `json:"quantity,omitempty"`
	Threshold   *uint   `json:"threshold,omitempty"`
}

type LogUsageInput struct {
	ItemId       uint  `json:"itemId" validate:"required"`
	RoomId       *uint `json:"roomId,omitempty"`
	QuantityUsed uint  `json:"quantityUsed" validate:"required,min=1"`
}
