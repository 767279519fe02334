package services

import (
	"context"
	"sort"
	"time"

	"staycore/constants"
	"staycore/dto"
	"staycore/errors"
	"staycore/models"
	"staycore/services/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityService trả lời câu hỏi "phòng này còn chỗ cho cả khoảng ngày
// không". Chỉ đọc, không ghi; kết quả là ảnh chụp tại thời điểm gọi và chỉ
// đúng cho tới khi có giao dịch giữ chỗ kế tiếp.
type AvailabilityService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewAvailabilityService(db *gorm.DB, log logger.Logger) *AvailabilityService {
	return &AvailabilityService{db: db, log: log}
}

// CheckRange kiểm tra phòng còn đủ `units` suất cho MỌI đêm trong
// [checkIn, checkOut). Ngày thiếu dòng tồn kho tính là hết chỗ.
func (s *AvailabilityService) CheckRange(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, units int) (bool, error) {
	if units < 1 {
		units = 1
	}
	from, to := NormalizeDate(checkIn), NormalizeDate(checkOut)
	if !to.After(from) {
		return false, errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	var records []models.Availability
	err := s.db.WithContext(ctx).
		Where("room_id = ? AND date >= ? AND date < ?", roomID, from, to).
		Find(&records).Error
	if err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra tồn kho", err)
	}

	byDate := make(map[string]*models.Availability, len(records))
	for i := range records {
		byDate[NormalizeDate(records[i].Date).Format(constants.DateLayout)] = &records[i]
	}

	for _, date := range DatesBetween(from, to) {
		record, ok := byDate[date.Format(constants.DateLayout)]
		if !ok || !record.IsSellable(units) {
			return false, nil
		}
	}
	return true, nil
}

// SearchRange tìm các phòng còn chỗ cho TOÀN BỘ khoảng ngày. Phòng chỉ được
// nhận khi tập ngày đạt yêu cầu của nó phủ kín mọi đêm trong khoảng; phủ một
// phần thì loại, không trả kết quả nửa vời. Kết quả sắp theo (ngày, tên phòng).
func (s *AvailabilityService) SearchRange(ctx context.Context, req *dto.SearchAvailabilityRequest) ([]models.Availability, error) {
	from, to, err := parseRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	minUnits := req.MinUnits
	if minUnits < 1 {
		minUnits = 1
	}

	query := s.db.WithContext(ctx).Preload("Room").
		Where("date >= ? AND date < ?", from, to).
		Where("is_blocked = ?", false).
		Where("available_units >= ?", minUnits)

	if req.RoomID != "" {
		roomID, err := uuid.Parse(req.RoomID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidID, "ID phòng không hợp lệ", err)
		}
		query = query.Where("room_id = ?", roomID)
	}
	if req.HotelID != "" {
		hotelID, err := uuid.Parse(req.HotelID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidID, "ID khách sạn không hợp lệ", err)
		}
		query = query.Where("room_id IN (?)",
			s.db.Model(&models.Room{}).Select("id").Where("hotel_id = ?", hotelID))
	}

	var records []models.Availability
	if err := query.Find(&records).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tìm phòng trống", err)
	}

	required := DatesBetween(from, to)

	// Gom theo phòng rồi loại phòng không phủ đủ mọi đêm
	datesByRoom := make(map[uuid.UUID]map[string]bool)
	for _, r := range records {
		if datesByRoom[r.RoomID] == nil {
			datesByRoom[r.RoomID] = make(map[string]bool)
		}
		datesByRoom[r.RoomID][NormalizeDate(r.Date).Format(constants.DateLayout)] = true
	}

	qualified := make(map[uuid.UUID]bool)
	for roomID, dates := range datesByRoom {
		covered := true
		for _, d := range required {
			if !dates[d.Format(constants.DateLayout)] {
				covered = false
				break
			}
		}
		if covered {
			qualified[roomID] = true
		}
	}

	result := make([]models.Availability, 0, len(records))
	for _, r := range records {
		if qualified[r.RoomID] {
			result = append(result, r)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		di, dj := NormalizeDate(result[i].Date), NormalizeDate(result[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		var ni, nj string
		if result[i].Room != nil {
			ni = result[i].Room.Name
		}
		if result[j].Room != nil {
			nj = result[j].Room.Name
		}
		return ni < nj
	})

	return result, nil
}

// RoomCalendar trả về lịch tồn kho của một phòng trong [from, to)
func (s *AvailabilityService) RoomCalendar(ctx context.Context, roomID uuid.UUID, from, to time.Time) (*dto.RoomCalendarResponse, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, "id = ?", roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy phòng", errors.ErrRoomNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy thông tin phòng", err)
	}

	var records []models.Availability
	err := s.db.WithContext(ctx).
		Where("room_id = ? AND date >= ? AND date < ?", roomID, NormalizeDate(from), NormalizeDate(to)).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy lịch tồn kho", err)
	}

	calendar := &dto.RoomCalendarResponse{
		RoomID:   room.ID.String(),
		RoomName: room.Name,
		Days:     make([]dto.CalendarDay, 0, len(records)),
	}
	for _, r := range records {
		price := r.EffectivePrice(room.Price)
		calendar.Days = append(calendar.Days, dto.CalendarDay{
			Date:           NormalizeDate(r.Date).Format(constants.DateLayout),
			TotalUnits:     r.TotalUnits,
			AvailableUnits: r.AvailableUnits,
			IsBlocked:      r.IsBlocked,
			IsAvailable:    r.IsSellable(1),
			Price:          &price,
		})
	}
	return calendar, nil
}
