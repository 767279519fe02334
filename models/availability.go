package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Availability là sổ tồn kho: một dòng cho một phòng trong một ngày.
// (room_id, date) là khóa duy nhất; luôn giữ 0 <= available <= total.
type Availability struct {
	ID             uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	RoomID         uuid.UUID        `json:"roomId" gorm:"type:uuid;not null;uniqueIndex:idx_room_date" validate:"required"`
	Room           *Room            `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Date           time.Time        `json:"date" gorm:"type:date;not null;uniqueIndex:idx_room_date"`
	TotalUnits     int              `json:"totalUnits" gorm:"not null;default:5" validate:"gte=0"`
	AvailableUnits int              `json:"availableUnits" gorm:"not null" validate:"gte=0"`
	PriceOverride  *decimal.Decimal `json:"priceOverride" gorm:"type:decimal(10,2)"`
	IsBlocked      bool             `json:"isBlocked" gorm:"not null;default:false"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (a *Availability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsSellable kiểm tra ngày này còn bán được đủ số lượng không
func (a *Availability) IsSellable(units int) bool {
	return !a.IsBlocked && a.AvailableUnits >= units
}

// EffectivePrice trả về giá áp dụng cho ngày này: override dương nếu có, không thì giá gốc
func (a *Availability) EffectivePrice(basePrice decimal.Decimal) decimal.Decimal {
	if a.HasOverride() {
		return *a.PriceOverride
	}
	return basePrice
}

// HasOverride chỉ nhận override khi giá trị dương
func (a *Availability) HasOverride() bool {
	return a.PriceOverride != nil && a.PriceOverride.IsPositive()
}

func (a *Availability) Validate() error {
	validate := validator.New()

	if err := validate.Struct(a); err != nil {
		return err
	}

	if a.Date.IsZero() {
		return fmt.Errorf("ngày không được để trống")
	}

	if a.AvailableUnits > a.TotalUnits {
		return fmt.Errorf("số phòng trống (%d) không được vượt quá tổng số phòng (%d)", a.AvailableUnits, a.TotalUnits)
	}

	if a.PriceOverride != nil && !a.PriceOverride.IsPositive() {
		return fmt.Errorf("giá override phải lớn hơn 0")
	}

	return nil
}
