package services

import (
	"context"
	stderrors "errors"

	"staycore/errors"
	"staycore/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogService là mặt tiếp xúc hẹp giữa engine đặt phòng và danh mục
// khách sạn/phòng: engine chỉ cần biết phòng có tồn tại, thuộc khách sạn
// nào và giá gốc mỗi đêm là bao nhiêu.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// HotelExists kiểm tra khách sạn có tồn tại không
func (s *CatalogService) HotelExists(ctx context.Context, hotelID uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Hotel{}).Where("id = ?", hotelID).Count(&count).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra khách sạn", err)
	}
	return count > 0, nil
}

// RoomExists kiểm tra phòng có tồn tại không
func (s *CatalogService) RoomExists(ctx context.Context, roomID uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", roomID).Count(&count).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra phòng", err)
	}
	return count > 0, nil
}

// RoomBelongsToHotel kiểm tra phòng có thuộc khách sạn không
func (s *CatalogService) RoomBelongsToHotel(ctx context.Context, roomID, hotelID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ? AND hotel_id = ?", roomID, hotelID).
		Count(&count).Error
	if err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra phòng của khách sạn", err)
	}
	return count > 0, nil
}

// GetRoom lấy phòng theo ID
func (s *CatalogService) GetRoom(ctx context.Context, roomID uuid.UUID) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, "id = ?", roomID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy phòng", errors.ErrRoomNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy thông tin phòng", err)
	}
	return &room, nil
}

// GetBaseNightlyPrice lấy giá gốc mỗi đêm của phòng
func (s *CatalogService) GetBaseNightlyPrice(ctx context.Context, roomID uuid.UUID) (decimal.Decimal, error) {
	room, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return decimal.Zero, err
	}
	return room.Price, nil
}
