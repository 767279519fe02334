package models

import (
	"time"

	"staycore/constants"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking giữ một phòng trong khoảng [check-in, check-out), check-out không tính đêm.
// Footprint (phòng, ngày, số khách) ghi trên booking là nguồn sự thật khi trả tồn kho.
type Booking struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	HotelID      uuid.UUID       `json:"hotelId" gorm:"type:uuid;not null;index"`
	Hotel        *Hotel          `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	RoomID       uuid.UUID       `json:"roomId" gorm:"type:uuid;not null;index"`
	Room         *Room           `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	CheckInDate  time.Time       `json:"checkInDate" gorm:"type:date;not null"`
	CheckOutDate time.Time       `json:"checkOutDate" gorm:"type:date;not null"`
	Guests       int             `json:"guests" gorm:"not null;default:1"`
	TotalPrice   decimal.Decimal `json:"totalPrice" gorm:"type:decimal(10,2);not null"`
	Status       string          `json:"status" gorm:"not null;default:pending"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = constants.BookingStatusPending
	}
	return nil
}

// Nights số đêm của booking
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// IsTerminal booking đã kết thúc vòng đời chưa
func (b *Booking) IsTerminal() bool {
	return b.Status == constants.BookingStatusCancelled || b.Status == constants.BookingStatusCompleted
}

// HoldsInventory booking đang giữ tồn kho hay không (pending/confirmed)
func (b *Booking) HoldsInventory() bool {
	return b.Status == constants.BookingStatusPending || b.Status == constants.BookingStatusConfirmed
}
