package services

import (
	"context"
	stderrors "errors"
	"time"

	"staycore/builders"
	"staycore/commands"
	"staycore/constants"
	"staycore/dto"
	"staycore/errors"
	"staycore/metrics"
	"staycore/models"
	"staycore/services/logger"
	"staycore/services/notification"
	"staycore/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BookingService điều phối toàn bộ vòng đời đặt phòng: kiểm tra danh mục,
// tính giá, giữ/trả tồn kho qua ReservationService và chuyển trạng thái qua
// máy trạng thái. Booking chỉ được ghi tại đây; tồn kho chỉ được sửa qua
// coordinator.
type BookingService struct {
	db          *gorm.DB
	log         logger.Logger
	catalog     *CatalogService
	checker     *AvailabilityService
	coordinator *ReservationService
	pricing     *PricingService
	notifier    notification.Service
}

func NewBookingService(
	db *gorm.DB,
	log logger.Logger,
	catalog *CatalogService,
	checker *AvailabilityService,
	coordinator *ReservationService,
	pricing *PricingService,
	notifier notification.Service,
) *BookingService {
	return &BookingService{
		db:          db,
		log:         log,
		catalog:     catalog,
		checker:     checker,
		coordinator: coordinator,
		pricing:     pricing,
		notifier:    notifier,
	}
}

// bookingFootprint dựng footprint từ chính giá trị đã lưu trên booking:
// trả kho phải trả đúng phần booking đã giữ, không nhìn tồn kho hiện tại
func bookingFootprint(b *models.Booking) Footprint {
	return Footprint{
		RoomID:   b.RoomID,
		CheckIn:  b.CheckInDate,
		CheckOut: b.CheckOutDate,
		Units:    b.Guests,
	}
}

// Create đặt phòng mới. Giữ chỗ và ghi booking nằm trong CÙNG một
// transaction: giữ chỗ thất bại thì không có dòng booking nào được ghi,
// ghi booking thất bại thì phần giữ chỗ cũng được rollback.
func (s *BookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error) {
	if err := validator.ValidateBookingCreate(req); err != nil {
		return nil, err
	}

	hotelID, err := validator.ParseID(req.HotelID)
	if err != nil {
		return nil, err
	}
	roomID, err := validator.ParseID(req.RoomID)
	if err != nil {
		return nil, err
	}
	checkIn, checkOut, err := validator.ValidateDateRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	ok, err := s.catalog.HotelExists(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy khách sạn", errors.ErrHotelNotFound)
	}

	ok, err = s.catalog.RoomBelongsToHotel(ctx, roomID, hotelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Phòng không thuộc khách sạn này", errors.ErrRoomNotInHotel)
	}

	// Giá chốt tại thời điểm đặt; đổi override sau này không ảnh hưởng booking cũ
	var total decimal.Decimal
	if req.TotalPrice != nil {
		total = *req.TotalPrice
	} else {
		total, err = s.pricing.PriceForRange(ctx, roomID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
	}

	booking := builders.NewBookingBuilder().
		WithHotel(hotelID).
		WithRoom(roomID).
		WithStay(NormalizeDate(checkIn), NormalizeDate(checkOut)).
		WithGuests(req.Guests).
		WithStatus(constants.BookingStatusPending).
		WithTotalPrice(total).
		Build()

	fp := bookingFootprint(booking)

	ctx, cancel := withDeadline(ctx)
	defer cancel()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.coordinator.ReserveInTx(tx, fp); err != nil {
			return err
		}
		return commands.NewCreateBookingCommand(booking, tx).Execute()
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}

	metrics.BookingsTotal.WithLabelValues("created").Inc()
	s.log.Info("Đặt phòng %s: phòng %s [%s, %s) %d khách",
		booking.ID, roomID, req.CheckInDate, req.CheckOutDate, booking.Guests)
	s.notify(booking.ID, "created")
	return booking, nil
}

// Update thay toàn bộ thông tin đặt phòng (trừ trạng thái). Nếu footprint
// đổi thì trả khoảng cũ và giữ khoảng mới trong cùng transaction với lần
// ghi booking; giữ khoảng mới thất bại thì booking giữ nguyên như cũ.
func (s *BookingService) Update(ctx context.Context, req *dto.UpdateBookingRequest) (*models.Booking, error) {
	id, err := validator.ParseID(req.ID)
	if err != nil {
		return nil, err
	}
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.IsTerminal() {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Booking đã kết thúc, không thể sửa", nil)
	}

	hotelID, err := validator.ParseID(req.HotelID)
	if err != nil {
		return nil, err
	}
	roomID, err := validator.ParseID(req.RoomID)
	if err != nil {
		return nil, err
	}
	checkIn, checkOut, err := validator.ValidateDateRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if req.Guests == 0 {
		req.Guests = constants.MinGuests
	}
	if err := validator.ValidateGuests(req.Guests); err != nil {
		return nil, err
	}
	if err := validator.ValidatePrice(req.TotalPrice); err != nil {
		return nil, err
	}

	ok, err := s.catalog.RoomBelongsToHotel(ctx, roomID, hotelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Phòng không thuộc khách sạn này", errors.ErrRoomNotInHotel)
	}

	oldFp := bookingFootprint(booking)
	newFp := Footprint{RoomID: roomID, CheckIn: checkIn, CheckOut: checkOut, Units: req.Guests}

	var total decimal.Decimal
	switch {
	case req.TotalPrice != nil:
		total = *req.TotalPrice
	case !oldFp.Equal(newFp):
		total, err = s.pricing.PriceForRange(ctx, roomID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
	default:
		total = booking.TotalPrice
	}

	ctx, cancel := withDeadline(ctx)
	defer cancel()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.coordinator.AdjustInTx(tx, oldFp, newFp); err != nil {
			return err
		}
		booking.HotelID = hotelID
		booking.RoomID = roomID
		booking.CheckInDate = NormalizeDate(checkIn)
		booking.CheckOutDate = NormalizeDate(checkOut)
		booking.Guests = req.Guests
		booking.TotalPrice = total
		return commands.NewUpdateBookingCommand(booking, tx).Execute()
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}

	s.notify(booking.ID, "updated")
	return booking, nil
}

// Patch cập nhật từng phần: field nil giữ nguyên. Trạng thái không được ghi
// đè trực tiếp mà đi qua máy trạng thái như các thao tác confirm/cancel.
func (s *BookingService) Patch(ctx context.Context, req *dto.PatchBookingRequest) (*models.Booking, error) {
	id, err := validator.ParseID(req.ID)
	if err != nil {
		return nil, err
	}
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	roomID := booking.RoomID
	if req.RoomID != nil {
		roomID, err = validator.ParseID(*req.RoomID)
		if err != nil {
			return nil, err
		}
	}
	checkIn := booking.CheckInDate
	if req.CheckInDate != nil {
		checkIn, err = validator.ParseDate(*req.CheckInDate)
		if err != nil {
			return nil, err
		}
	}
	checkOut := booking.CheckOutDate
	if req.CheckOutDate != nil {
		checkOut, err = validator.ParseDate(*req.CheckOutDate)
		if err != nil {
			return nil, err
		}
	}
	if !NormalizeDate(checkOut).After(NormalizeDate(checkIn)) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	guests := booking.Guests
	if req.Guests != nil {
		guests = *req.Guests
		if err := validator.ValidateGuests(guests); err != nil {
			return nil, err
		}
	}
	if err := validator.ValidatePrice(req.TotalPrice); err != nil {
		return nil, err
	}

	oldFp := bookingFootprint(booking)
	newFp := Footprint{RoomID: roomID, CheckIn: checkIn, CheckOut: checkOut, Units: guests}
	footprintChanged := !oldFp.Equal(newFp)

	// Booking đã kết thúc: không còn giữ tồn kho, chỉ còn sửa được giá
	if booking.IsTerminal() && (footprintChanged || req.Status != nil) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Booking đã kết thúc, không thể sửa", nil)
	}

	if roomID != booking.RoomID {
		ok, err := s.catalog.RoomBelongsToHotel(ctx, roomID, booking.HotelID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Phòng không thuộc khách sạn này", errors.ErrRoomNotInHotel)
		}
	}

	var total decimal.Decimal
	switch {
	case req.TotalPrice != nil:
		total = *req.TotalPrice
	case footprintChanged:
		total, err = s.pricing.PriceForRange(ctx, roomID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
	default:
		total = booking.TotalPrice
	}

	ctx, cancel := withDeadline(ctx)
	defer cancel()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if footprintChanged {
			if err := s.coordinator.AdjustInTx(tx, oldFp, newFp); err != nil {
				return err
			}
		}
		booking.RoomID = roomID
		booking.CheckInDate = NormalizeDate(checkIn)
		booking.CheckOutDate = NormalizeDate(checkOut)
		booking.Guests = guests
		booking.TotalPrice = total
		return commands.NewUpdateBookingCommand(booking, tx).Execute()
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if req.Status != nil && *req.Status != booking.Status {
		return s.transition(ctx, booking, *req.Status)
	}
	return booking, nil
}

// transition đưa yêu cầu đổi trạng thái về đúng thao tác nghiệp vụ
func (s *BookingService) transition(ctx context.Context, booking *models.Booking, target string) (*models.Booking, error) {
	switch target {
	case constants.BookingStatusConfirmed:
		return s.Confirm(ctx, booking.ID)
	case constants.BookingStatusCancelled:
		return s.Cancel(ctx, booking.ID)
	case constants.BookingStatusCompleted:
		return s.completeOne(ctx, booking)
	case constants.BookingStatusPending:
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Không thể chuyển về trạng thái chờ xác nhận", nil)
	default:
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Trạng thái không hợp lệ: "+target, nil)
	}
}

// Confirm xác nhận booking đang chờ. Không đụng tồn kho: phần giữ chỗ đã
// được trừ từ lúc tạo.
func (s *BookingService) Confirm(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	state := models.GetBookingState(booking.Status)
	if err := state.Confirm(booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Không thể xác nhận booking ở trạng thái hiện tại", err)
	}

	if err := commands.NewUpdateBookingCommand(booking, s.db.WithContext(ctx)).Execute(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Xác nhận booking thất bại", err)
	}

	metrics.BookingsTotal.WithLabelValues("confirmed").Inc()
	s.notify(booking.ID, "confirmed")
	return booking, nil
}

// Cancel hủy booking và trả lại đúng phần tồn kho booking đã giữ. Đường
// thường: đổi trạng thái và trả kho trong một transaction. Trả kho hỏng
// thì vẫn chốt hủy và đẩy footprint vào hàng đợi retry — khách đã hủy
// không bao giờ phải chờ tồn kho.
func (s *BookingService) Cancel(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	held := booking.HoldsInventory()
	state := models.GetBookingState(booking.Status)
	if err := state.Cancel(booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Không thể hủy booking ở trạng thái hiện tại", err)
	}

	fp := bookingFootprint(booking)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := commands.NewUpdateBookingCommand(booking, tx).Execute(); err != nil {
			return err
		}
		if held {
			return s.coordinator.ReleaseInTx(tx, fp)
		}
		return nil
	})
	if err != nil {
		if !held {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Hủy booking thất bại", err)
		}
		if saveErr := commands.NewUpdateBookingCommand(booking, s.db.WithContext(ctx)).Execute(); saveErr != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Hủy booking thất bại", saveErr)
		}
		s.log.Error("Trả tồn kho khi hủy booking %s thất bại, đưa vào hàng đợi retry: %v", booking.ID, err)
		s.coordinator.QueueRelease(ctx, fp)
	}

	metrics.BookingsTotal.WithLabelValues("cancelled").Inc()
	s.notify(booking.ID, "cancelled")
	return booking, nil
}

// completeOne chuyển một booking sang hoàn thành qua máy trạng thái
func (s *BookingService) completeOne(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	state := models.GetBookingState(booking.Status)
	if err := state.Complete(booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Không thể hoàn thành booking ở trạng thái hiện tại", err)
	}

	if err := commands.NewUpdateBookingCommand(booking, s.db.WithContext(ctx)).Execute(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Hoàn thành booking thất bại", err)
	}

	metrics.BookingsTotal.WithLabelValues("completed").Inc()
	s.notify(booking.ID, "completed")
	return booking, nil
}

// CompleteDeparted chuyển các booking đã xác nhận và đã qua ngày trả phòng
// sang hoàn thành. Chạy theo lịch; không đụng tồn kho vì các đêm đó đã
// được ở hết.
func (s *BookingService) CompleteDeparted(ctx context.Context, now time.Time) (int, error) {
	var due []models.Booking
	err := s.db.WithContext(ctx).
		Where("status = ? AND check_out_date <= ?", constants.BookingStatusConfirmed, NormalizeDate(now)).
		Find(&due).Error
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi quét booking đến hạn hoàn thành", err)
	}

	completed := 0
	for i := range due {
		if _, err := s.completeOne(ctx, &due[i]); err != nil {
			s.log.Error("Không thể hoàn thành booking %s: %v", due[i].ID, err)
			continue
		}
		completed++
	}
	if completed > 0 {
		s.log.Info("Đã hoàn thành %d booking quá ngày trả phòng", completed)
	}
	return completed, nil
}

// Delete xóa hẳn booking. Booking còn giữ tồn kho thì phải trả kho thành
// công trong cùng transaction, không thì không xóa — khác với Cancel, xóa
// là thao tác quản trị nên thất bại sạch để gọi lại được.
func (s *BookingService) Delete(ctx context.Context, id uuid.UUID) error {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if booking.HoldsInventory() {
			if err := s.coordinator.ReleaseInTx(tx, bookingFootprint(booking)); err != nil {
				return err
			}
		}
		return commands.NewDeleteBookingCommand(booking.ID, tx).Execute()
	})
	if err != nil {
		return mapStoreErr(err)
	}

	s.log.Info("Đã xóa booking %s", id)
	return nil
}

// Quote báo giá một khoảng ngày mà không giữ chỗ: trả về giá từng đêm,
// tổng tiền và cờ còn phòng cho số khách yêu cầu
func (s *BookingService) Quote(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error) {
	roomID, err := validator.ParseID(req.RoomID)
	if err != nil {
		return nil, err
	}
	checkIn, checkOut, err := validator.ValidateDateRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	guests := req.Guests
	if guests == 0 {
		guests = constants.MinGuests
	}
	if err := validator.ValidateGuests(guests); err != nil {
		return nil, err
	}

	ok, err := s.catalog.RoomExists(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy phòng", errors.ErrRoomNotFound)
	}

	available, err := s.checker.CheckRange(ctx, roomID, checkIn, checkOut, guests)
	if err != nil {
		return nil, err
	}

	breakdown, total, average, err := s.pricing.QuoteRange(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return &dto.QuoteResponse{
		RoomID:           req.RoomID,
		CheckInDate:      req.CheckInDate,
		CheckOutDate:     req.CheckOutDate,
		Nights:           len(breakdown),
		Guests:           guests,
		Available:        available,
		NightlyBreakdown: breakdown,
		TotalPrice:       total,
		AveragePerNight:  average,
		Currency:         constants.QuoteCurrency,
	}, nil
}

// GetByID lấy booking theo ID, kèm thông tin phòng
func (s *BookingService) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).Preload("Room").First(&booking, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy booking", errors.ErrBookingNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy booking", err)
	}
	return &booking, nil
}

// ListByHotel liệt kê booking của một khách sạn, mới nhất trước
func (s *BookingService) ListByHotel(ctx context.Context, hotelID uuid.UUID, status string, page, limit int) ([]models.Booking, int64, error) {
	return s.list(ctx, "hotel_id = ?", hotelID, status, page, limit)
}

// ListByRoom liệt kê booking của một phòng, mới nhất trước
func (s *BookingService) ListByRoom(ctx context.Context, roomID uuid.UUID, status string, page, limit int) ([]models.Booking, int64, error) {
	return s.list(ctx, "room_id = ?", roomID, status, page, limit)
}

func (s *BookingService) list(ctx context.Context, cond string, id uuid.UUID, status string, page, limit int) ([]models.Booking, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Booking{}).Where(cond, id)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đếm booking", err)
	}

	var bookings []models.Booking
	err := query.Preload("Room").
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi liệt kê booking", err)
	}
	return bookings, total, nil
}

func (s *BookingService) notify(id uuid.UUID, event string) {
	if s.notifier == nil {
		return
	}
	message := notification.NewBookingMessageBuilder(id.String(), event).Build()
	if err := s.notifier.SendMessage(message); err != nil {
		s.log.Error("Gửi thông báo booking thất bại: %v", err)
	}
}
