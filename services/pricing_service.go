package services

import (
	"context"
	stderrors "errors"
	"time"

	"staycore/constants"
	"staycore/dto"
	"staycore/errors"
	"staycore/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PricingService tính giá mỗi đêm và cả khoảng ngày: ngày có override dương
// thì lấy override, không thì lấy giá gốc của phòng. Chỉ đọc, mọi phép tính
// chạy trên decimal để tránh trôi số khi cộng dồn.
type PricingService struct {
	db *gorm.DB
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{db: db}
}

// PriceForNight giá một đêm của phòng; special = true khi override được áp dụng
func (s *PricingService) PriceForNight(ctx context.Context, roomID uuid.UUID, date time.Time) (decimal.Decimal, bool, error) {
	base, err := s.basePrice(ctx, roomID)
	if err != nil {
		return decimal.Zero, false, err
	}

	var record models.Availability
	err = s.db.WithContext(ctx).
		Where("room_id = ? AND date = ?", roomID, NormalizeDate(date)).
		First(&record).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return base, false, nil
		}
		return decimal.Zero, false, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy giá theo ngày", err)
	}

	if record.HasOverride() {
		return *record.PriceOverride, true, nil
	}
	return base, false, nil
}

// PriceForRange tổng giá các đêm trong [checkIn, checkOut)
func (s *PricingService) PriceForRange(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (decimal.Decimal, error) {
	nights, err := s.nightPrices(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, n := range nights {
		total = total.Add(n.Price)
	}
	return total, nil
}

// QuoteRange báo giá chi tiết từng đêm kèm tổng và trung bình mỗi đêm
func (s *PricingService) QuoteRange(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) ([]dto.NightQuote, decimal.Decimal, decimal.Decimal, error) {
	nights, err := s.nightPrices(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}

	total := decimal.Zero
	for _, n := range nights {
		total = total.Add(n.Price)
	}

	average := decimal.Zero
	if len(nights) > 0 {
		average = total.DivRound(decimal.NewFromInt(int64(len(nights))), 2)
	}
	return nights, total, average, nil
}

func (s *PricingService) nightPrices(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) ([]dto.NightQuote, error) {
	from, to := NormalizeDate(checkIn), NormalizeDate(checkOut)
	if !to.After(from) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	base, err := s.basePrice(ctx, roomID)
	if err != nil {
		return nil, err
	}

	var records []models.Availability
	err = s.db.WithContext(ctx).
		Where("room_id = ? AND date >= ? AND date < ?", roomID, from, to).
		Find(&records).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy giá theo khoảng ngày", err)
	}

	byDate := make(map[string]*models.Availability, len(records))
	for i := range records {
		byDate[NormalizeDate(records[i].Date).Format(constants.DateLayout)] = &records[i]
	}

	nights := make([]dto.NightQuote, 0, len(records))
	for _, date := range DatesBetween(from, to) {
		night := dto.NightQuote{Date: date.Format(constants.DateLayout), Price: base}
		if record, ok := byDate[night.Date]; ok && record.HasOverride() {
			night.Price = *record.PriceOverride
			night.IsSpecialRate = true
		}
		nights = append(nights, night)
	}
	return nights, nil
}

func (s *PricingService) basePrice(ctx context.Context, roomID uuid.UUID) (decimal.Decimal, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).Select("id", "price").First(&room, "id = ?", roomID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy phòng", errors.ErrRoomNotFound)
		}
		return decimal.Zero, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy giá phòng", err)
	}
	return room.Price, nil
}
