package services

import (
	"context"
	stderrors "errors"
	"time"

	"staycore/constants"
	"staycore/dto"
	"staycore/errors"
	"staycore/models"
	"staycore/services/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerService quản lý các dòng tồn kho (một phòng / một ngày).
// Mọi thao tác ghi theo khoảng ngày đều chạy trong một transaction và khóa
// dòng theo thứ tự ngày tăng dần, cùng kỷ luật với ReservationService.
type LedgerService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewLedgerService(db *gorm.DB, log logger.Logger) *LedgerService {
	return &LedgerService{db: db, log: log}
}

// forUpdate khóa dòng SELECT ... FOR UPDATE trên postgres; sqlite vốn chỉ có
// một writer tại một thời điểm nên không cần (và không hỗ trợ) mệnh đề này.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// Create tạo một dòng tồn kho; trùng (room, date) sẽ bị từ chối
func (s *LedgerService) Create(ctx context.Context, req *dto.CreateAvailabilityRequest) (*models.Availability, error) {
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidID, "ID phòng không hợp lệ", err)
	}

	date, err := time.Parse(constants.DateLayout, req.Date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày không hợp lệ, cần YYYY-MM-DD", err)
	}
	date = NormalizeDate(date)

	total := constants.DefaultTotalUnits
	if req.TotalUnits != nil {
		total = *req.TotalUnits
	}
	available := total
	if req.AvailableUnits != nil {
		available = *req.AvailableUnits
	}

	record := &models.Availability{
		RoomID:         roomID,
		Date:           date,
		TotalUnits:     total,
		AvailableUnits: available,
		PriceOverride:  req.PriceOverride,
		IsBlocked:      req.IsBlocked,
	}
	if err := record.Validate(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeValidation, err.Error(), err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Availability{}).
			Where("room_id = ? AND date = ?", roomID, date).
			Count(&count).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra tồn kho", err)
		}
		if count > 0 {
			return errors.NewAppError(errors.ErrCodeConflictingRecord, "Ngày này của phòng đã có dòng tồn kho", errors.ErrRecordExists)
		}
		if err := tx.Create(record).Error; err != nil {
			if isDuplicateErr(err) {
				return errors.NewAppError(errors.ErrCodeConflictingRecord, "Ngày này của phòng đã có dòng tồn kho", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo dòng tồn kho", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// GetByID lấy dòng tồn kho theo ID, kèm phòng
func (s *LedgerService) GetByID(ctx context.Context, id uuid.UUID) (*models.Availability, error) {
	var record models.Availability
	err := s.db.WithContext(ctx).Preload("Room").First(&record, "id = ?", id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy dòng tồn kho", errors.ErrRecordNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy dòng tồn kho", err)
	}
	return &record, nil
}

// List liệt kê tồn kho theo bộ lọc, có phân trang
func (s *LedgerService) List(ctx context.Context, filter dto.AvailabilityFilter) ([]models.Availability, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Availability{}).Preload("Room")

	if filter.RoomID != "" {
		roomID, err := uuid.Parse(filter.RoomID)
		if err != nil {
			return nil, 0, errors.NewAppError(errors.ErrCodeInvalidID, "ID phòng không hợp lệ", err)
		}
		query = query.Where("room_id = ?", roomID)
	}
	if filter.FromDate != "" {
		from, err := time.Parse(constants.DateLayout, filter.FromDate)
		if err != nil {
			return nil, 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày bắt đầu không hợp lệ", err)
		}
		query = query.Where("date >= ?", NormalizeDate(from))
	}
	if filter.ToDate != "" {
		to, err := time.Parse(constants.DateLayout, filter.ToDate)
		if err != nil {
			return nil, 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày kết thúc không hợp lệ", err)
		}
		query = query.Where("date < ?", NormalizeDate(to))
	}
	if filter.AvailableOnly {
		query = query.Where("is_blocked = ? AND available_units > 0", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đếm tồn kho", err)
	}

	var records []models.Availability
	query = query.Order("date ASC")
	if filter.Limit > 0 {
		query = query.Offset(filter.Page * filter.Limit).Limit(filter.Limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy danh sách tồn kho", err)
	}

	return records, total, nil
}

// Patch cập nhật một dòng tồn kho, chỉ đụng tới field được gửi lên
func (s *LedgerService) Patch(ctx context.Context, req *dto.UpdateAvailabilityRequest) (*models.Availability, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidID, "ID không hợp lệ", err)
	}

	var record models.Availability
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(&record, "id = ?", id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy dòng tồn kho", errors.ErrRecordNotFound)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy dòng tồn kho", err)
		}

		if req.TotalUnits != nil {
			record.TotalUnits = *req.TotalUnits
		}
		if req.AvailableUnits != nil {
			record.AvailableUnits = *req.AvailableUnits
		}
		if req.ClearOverride {
			record.PriceOverride = nil
		} else if req.PriceOverride != nil {
			record.PriceOverride = req.PriceOverride
		}
		if req.IsBlocked != nil {
			record.IsBlocked = *req.IsBlocked
		}

		if err := record.Validate(); err != nil {
			return errors.NewAppError(errors.ErrCodeValidation, err.Error(), err)
		}

		if err := tx.Save(&record).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật dòng tồn kho", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// Delete xóa một dòng tồn kho theo ID
func (s *LedgerService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Availability{}, "id = ?", id)
	if result.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi xóa dòng tồn kho", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy dòng tồn kho", errors.ErrRecordNotFound)
	}
	return nil
}

// CreateRange tạo tồn kho cho mọi đêm trong [checkIn, checkOut); ngày đã có
// dòng thì giữ nguyên (không ghi đè giá override hay cờ chặn đã đặt trước đó)
func (s *LedgerService) CreateRange(ctx context.Context, req *dto.RangeAvailabilityRequest) (*dto.RangeAvailabilityResult, error) {
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidID, "ID phòng không hợp lệ", err)
	}

	from, to, err := parseRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	total := constants.DefaultTotalUnits
	if req.TotalUnits != nil {
		total = *req.TotalUnits
	}
	available := total
	if req.AvailableUnits != nil {
		available = *req.AvailableUnits
	}
	if available > total || available < 0 || total < 0 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Số phòng trống phải nằm trong [0, tổng số phòng]", nil)
	}
	if req.PriceOverride != nil && !req.PriceOverride.IsPositive() {
		return nil, errors.NewAppError(errors.ErrCodeInvalidPrice, "Giá override phải lớn hơn 0", nil)
	}

	result := &dto.RangeAvailabilityResult{}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := existingDates(tx, roomID, from, to)
		if err != nil {
			return err
		}

		for _, date := range DatesBetween(from, to) {
			if existing[date.Format(constants.DateLayout)] {
				result.Skipped++
				continue
			}
			record := models.Availability{
				RoomID:         roomID,
				Date:           date,
				TotalUnits:     total,
				AvailableUnits: available,
				PriceOverride:  req.PriceOverride,
			}
			if err := tx.Create(&record).Error; err != nil {
				if isDuplicateErr(err) {
					result.Skipped++
					continue
				}
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo tồn kho theo khoảng ngày", err)
			}
			result.Created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Tạo tồn kho phòng %s [%s, %s): %d tạo mới, %d bỏ qua",
		roomID, req.CheckInDate, req.CheckOutDate, result.Created, result.Skipped)
	return result, nil
}

// BlockRange chặn bán mọi đêm trong [checkIn, checkOut): dòng đã có thì bật
// cờ chặn, ngày chưa có dòng thì tạo mới với 0 suất và cờ chặn bật sẵn
func (s *LedgerService) BlockRange(ctx context.Context, req *dto.BlockRangeRequest) (*dto.BlockRangeResult, error) {
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidID, "ID phòng không hợp lệ", err)
	}

	from, to, err := parseRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	result := &dto.BlockRangeResult{}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var records []models.Availability
		err := forUpdate(tx).
			Where("room_id = ? AND date >= ? AND date < ?", roomID, from, to).
			Order("date ASC").
			Find(&records).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy tồn kho cần chặn", err)
		}

		existing := make(map[string]bool, len(records))
		for i := range records {
			existing[NormalizeDate(records[i].Date).Format(constants.DateLayout)] = true
			if records[i].IsBlocked {
				continue
			}
			records[i].IsBlocked = true
			if err := tx.Save(&records[i]).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi chặn ngày", err)
			}
			result.Updated++
		}

		for _, date := range DatesBetween(from, to) {
			if existing[date.Format(constants.DateLayout)] {
				continue
			}
			record := models.Availability{
				RoomID:         roomID,
				Date:           date,
				TotalUnits:     constants.DefaultTotalUnits,
				AvailableUnits: 0,
				IsBlocked:      true,
			}
			if err := tx.Create(&record).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo ngày chặn", err)
			}
			result.Created++
		}
		return nil
	})
	if err != nil {
		if isContentionErr(err) {
			return nil, errors.NewAppError(errors.ErrCodeStoreContention, "Hệ thống đang bận, vui lòng thử lại", err)
		}
		return nil, err
	}

	s.log.Info("Chặn phòng %s [%s, %s): %d cập nhật, %d tạo mới",
		roomID, req.CheckInDate, req.CheckOutDate, result.Updated, result.Created)
	return result, nil
}

// RecordsForRange lấy các dòng tồn kho của một phòng trong [from, to), theo ngày tăng dần
func (s *LedgerService) RecordsForRange(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]models.Availability, error) {
	var records []models.Availability
	err := s.db.WithContext(ctx).
		Where("room_id = ? AND date >= ? AND date < ?", roomID, NormalizeDate(from), NormalizeDate(to)).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy tồn kho theo khoảng ngày", err)
	}
	return records, nil
}

func parseRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	from, err := time.Parse(constants.DateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày bắt đầu không hợp lệ", err)
	}
	to, err := time.Parse(constants.DateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày kết thúc không hợp lệ", err)
	}
	from, to = NormalizeDate(from), NormalizeDate(to)
	if !to.After(from) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}
	return from, to, nil
}

func existingDates(tx *gorm.DB, roomID uuid.UUID, from, to time.Time) (map[string]bool, error) {
	var records []models.Availability
	err := tx.Select("date").
		Where("room_id = ? AND date >= ? AND date < ?", roomID, from, to).
		Find(&records).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra ngày đã có tồn kho", err)
	}
	existing := make(map[string]bool, len(records))
	for _, r := range records {
		existing[NormalizeDate(r.Date).Format(constants.DateLayout)] = true
	}
	return existing, nil
}
