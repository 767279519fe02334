package services

import (
	"context"
	"time"

	"staycore/constants"
	"staycore/errors"
	"staycore/metrics"
	"staycore/models"
	"staycore/services/logger"

	"gorm.io/gorm"
)

// reserveTimeout chặn giao dịch giữ chỗ không chờ khóa vô hạn
const reserveTimeout = 5 * time.Second

// ReservationService là nơi DUY NHẤT được trừ/cộng tồn kho. Mỗi thao tác
// theo khoảng ngày chạy trong đúng một transaction, khóa dòng theo thứ tự
// ngày tăng dần để hai giao dịch chồng khoảng không bao giờ deadlock nhau.
type ReservationService struct {
	db    *gorm.DB
	log   logger.Logger
	queue *ReleaseQueue
}

func NewReservationService(db *gorm.DB, log logger.Logger, queue *ReleaseQueue) *ReservationService {
	return &ReservationService{db: db, log: log, queue: queue}
}

// Reserve trừ `units` suất cho MỌI đêm trong [CheckIn, CheckOut). Kiểm tra
// lại từng đêm ngay tại thời điểm commit: thiếu dòng, bị chặn hay không đủ
// suất ở bất kỳ đêm nào thì hủy toàn bộ, không để lại giảm trừ dở dang.
func (s *ReservationService) Reserve(ctx context.Context, fp Footprint) error {
	if err := validateFootprint(fp); err != nil {
		return err
	}

	ctx, cancel := withDeadline(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.ReserveInTx(tx, fp)
	})
	if err != nil {
		return mapStoreErr(err)
	}

	s.log.Info("Giữ chỗ phòng %s [%s, %s) x%d",
		fp.RoomID, fp.CheckIn.Format(constants.DateLayout), fp.CheckOut.Format(constants.DateLayout), fp.Units)
	return nil
}

// Release cộng trả `units` suất cho mọi đêm trong khoảng. Ngày thiếu dòng
// tồn kho được bỏ qua (không phải lỗi): trả tồn kho là hành động bù,
// thiếu dữ liệu không được phép cản nó.
func (s *ReservationService) Release(ctx context.Context, fp Footprint) error {
	if err := validateFootprint(fp); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.ReleaseInTx(tx, fp)
	})
	if err != nil {
		return errors.NewAppError(errors.ErrCodeReleaseFailure, "Trả tồn kho thất bại", err)
	}

	s.log.Info("Trả tồn kho phòng %s [%s, %s) x%d",
		fp.RoomID, fp.CheckIn.Format(constants.DateLayout), fp.CheckOut.Format(constants.DateLayout), fp.Units)
	return nil
}

// ReleaseOrQueue trả tồn kho; thất bại thì đưa vào hàng đợi retry thay vì
// báo lỗi cho người hủy phòng. Mất một lần release là mất suất bán vĩnh
// viễn nên không bao giờ được nuốt lỗi mà không xếp hàng lại.
func (s *ReservationService) ReleaseOrQueue(ctx context.Context, fp Footprint) {
	if err := s.Release(ctx, fp); err != nil {
		s.log.Error("Release thất bại, đưa vào hàng đợi retry: %v", err)
		s.QueueRelease(ctx, fp)
	}
}

// QueueRelease xếp một footprint vào hàng đợi retry mà không thử trả ngay
func (s *ReservationService) QueueRelease(ctx context.Context, fp Footprint) {
	s.queue.Enqueue(ctx, fp)
}

// Adjust đổi footprint của một booking: trả khoảng cũ rồi giữ khoảng mới
// trong CÙNG một transaction. Giữ khoảng mới thất bại thì rollback trả lại
// nguyên trạng — với người gọi, hoặc cả hai phía xong hoặc không gì xảy ra.
func (s *ReservationService) Adjust(ctx context.Context, old, new Footprint) error {
	if old.Equal(new) {
		return nil
	}

	ctx, cancel := withDeadline(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.AdjustInTx(tx, old, new)
	})
	if err != nil {
		return mapStoreErr(err)
	}
	return nil
}

// ReserveInTx giữ chỗ bên trong transaction đang mở của người gọi, dùng khi
// giữ chỗ và ghi booking phải nằm trong cùng một giao dịch
func (s *ReservationService) ReserveInTx(tx *gorm.DB, fp Footprint) error {
	err := reserveInTx(tx, fp)
	switch {
	case err == nil:
		metrics.ReserveTotal.WithLabelValues(metrics.ResultOK).Inc()
	case errors.HasCode(err, errors.ErrCodeInsufficientAvailability):
		metrics.ReserveTotal.WithLabelValues(metrics.ResultInsufficient).Inc()
	case isContentionErr(err):
		metrics.ReserveTotal.WithLabelValues(metrics.ResultContention).Inc()
	default:
		metrics.ReserveTotal.WithLabelValues(metrics.ResultError).Inc()
	}
	return err
}

// ReleaseInTx trả tồn kho bên trong transaction đang mở của người gọi
func (s *ReservationService) ReleaseInTx(tx *gorm.DB, fp Footprint) error {
	if err := validateFootprint(fp); err != nil {
		return err
	}
	_, err := releaseInTx(tx, fp)
	if err != nil {
		metrics.ReleaseTotal.WithLabelValues(metrics.ResultError).Inc()
		return err
	}
	metrics.ReleaseTotal.WithLabelValues(metrics.ResultOK).Inc()
	return nil
}

// AdjustInTx đổi footprint bên trong transaction đang mở của người gọi
func (s *ReservationService) AdjustInTx(tx *gorm.DB, old, new Footprint) error {
	if old.Equal(new) {
		return nil
	}
	if err := validateFootprint(new); err != nil {
		return err
	}
	if err := s.ReleaseInTx(tx, old); err != nil {
		return err
	}
	if err := s.ReserveInTx(tx, new); err != nil {
		return err
	}
	s.log.Info("Đổi giữ chỗ: phòng %s [%s, %s) x%d -> phòng %s [%s, %s) x%d",
		old.RoomID, old.CheckIn.Format(constants.DateLayout), old.CheckOut.Format(constants.DateLayout), old.Units,
		new.RoomID, new.CheckIn.Format(constants.DateLayout), new.CheckOut.Format(constants.DateLayout), new.Units)
	return nil
}

// reserveInTx khóa các dòng của khoảng theo ngày tăng dần rồi kiểm tra và
// trừ từng đêm. Gọi bên trong transaction đang mở.
func reserveInTx(tx *gorm.DB, fp Footprint) error {
	var records []models.Availability
	err := forUpdate(tx).
		Where("room_id = ? AND date >= ? AND date < ?",
			fp.RoomID, NormalizeDate(fp.CheckIn), NormalizeDate(fp.CheckOut)).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return err
	}

	byDate := make(map[string]*models.Availability, len(records))
	for i := range records {
		byDate[NormalizeDate(records[i].Date).Format(constants.DateLayout)] = &records[i]
	}

	for _, date := range fp.Dates() {
		key := date.Format(constants.DateLayout)
		record, ok := byDate[key]
		if !ok {
			return errors.NewAppError(errors.ErrCodeInsufficientAvailability,
				"Ngày "+key+" chưa mở bán", errors.ErrRangeNotCovered)
		}
		if record.IsBlocked {
			return errors.NewAppError(errors.ErrCodeInsufficientAvailability,
				"Ngày "+key+" đã bị chặn bán", errors.ErrDateBlocked)
		}
		if record.AvailableUnits < fp.Units {
			return errors.NewAppError(errors.ErrCodeInsufficientAvailability,
				"Ngày "+key+" không còn đủ phòng", errors.ErrNoAvailability)
		}
	}

	for _, date := range fp.Dates() {
		record := byDate[date.Format(constants.DateLayout)]
		result := tx.Model(&models.Availability{}).
			Where("id = ?", record.ID).
			Update("available_units", gorm.Expr("available_units - ?", fp.Units))
		if result.Error != nil {
			return result.Error
		}
	}
	return nil
}

// releaseInTx cộng trả theo khoảng, chặn trên ở total_units; trả về số đêm
// được cộng thật sự (đêm thiếu dòng bị bỏ qua).
func releaseInTx(tx *gorm.DB, fp Footprint) (int, error) {
	var records []models.Availability
	err := forUpdate(tx).
		Where("room_id = ? AND date >= ? AND date < ?",
			fp.RoomID, NormalizeDate(fp.CheckIn), NormalizeDate(fp.CheckOut)).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return 0, err
	}

	released := 0
	for i := range records {
		restored := records[i].AvailableUnits + fp.Units
		if restored > records[i].TotalUnits {
			restored = records[i].TotalUnits
		}
		result := tx.Model(&models.Availability{}).
			Where("id = ?", records[i].ID).
			Update("available_units", restored)
		if result.Error != nil {
			return released, result.Error
		}
		released++
	}
	return released, nil
}

func validateFootprint(fp Footprint) error {
	if fp.Units < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số lượng giữ chỗ phải lớn hơn 0", nil)
	}
	if !NormalizeDate(fp.CheckOut).After(NormalizeDate(fp.CheckIn)) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return nil
}

// mapStoreErr giữ nguyên AppError, gói lỗi tranh chấp khóa thành StoreContention
func mapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}
	if isContentionErr(err) {
		return errors.NewAppError(errors.ErrCodeStoreContention, "Hệ thống đang bận, vui lòng thử lại", err)
	}
	return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật tồn kho", err)
}

func withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, reserveTimeout)
}
