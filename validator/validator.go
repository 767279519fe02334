package validator

import (
	"time"

	"staycore/constants"
	"staycore/dto"
	"staycore/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParseDate parse ngày theo định dạng chuẩn của API
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày không hợp lệ, cần YYYY-MM-DD", err)
	}
	return d, nil
}

// ParseID parse UUID, trả AppError khi sai định dạng
func ParseID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.NewAppError(errors.ErrCodeInvalidID, "ID không hợp lệ", err)
	}
	return id, nil
}

// ValidateDateRange parse và kiểm tra khoảng [checkIn, checkOut), checkOut phải sau checkIn
func ValidateDateRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	if checkIn == "" || checkOut == "" {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Ngày nhận phòng và trả phòng không được để trống", nil)
	}

	from, err := ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày nhận phòng không hợp lệ", err)
	}

	to, err := ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng không hợp lệ", err)
	}

	if !to.After(from) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return from, to, nil
}

// ValidateGuests số khách trong giới hạn cho phép
func ValidateGuests(guests int) error {
	if guests < constants.MinGuests || guests > constants.MaxGuests {
		return errors.NewAppError(errors.ErrCodeInvalidGuests, "Số khách phải từ 1 đến 10", nil)
	}
	return nil
}

// ValidateUnits số lượng phòng yêu cầu phải dương
func ValidateUnits(units int) error {
	if units < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số lượng phòng phải lớn hơn 0", nil)
	}
	return nil
}

// ValidatePrice giá phải dương nếu được truyền lên
func ValidatePrice(price *decimal.Decimal) error {
	if price != nil && !price.IsPositive() {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "Giá phải lớn hơn 0", nil)
	}
	return nil
}

// ValidateAvailabilityCreate kiểm tra yêu cầu tạo dòng tồn kho
func ValidateAvailabilityCreate(req *dto.CreateAvailabilityRequest) error {
	if req.RoomID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	if _, err := ParseID(req.RoomID); err != nil {
		return err
	}

	if _, err := ParseDate(req.Date); err != nil {
		return err
	}

	if req.TotalUnits != nil && *req.TotalUnits < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Tổng số phòng không được âm", nil)
	}

	if req.AvailableUnits != nil && *req.AvailableUnits < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số phòng trống không được âm", nil)
	}

	if req.TotalUnits != nil && req.AvailableUnits != nil && *req.AvailableUnits > *req.TotalUnits {
		return errors.NewAppError(errors.ErrCodeValidation, "Số phòng trống không được vượt quá tổng số phòng", nil)
	}

	if err := ValidatePrice(req.PriceOverride); err != nil {
		return err
	}

	return nil
}

// ValidateAvailabilityPatch kiểm tra patch tồn kho: chỉ các field có mặt
func ValidateAvailabilityPatch(req *dto.UpdateAvailabilityRequest) error {
	if _, err := ParseID(req.ID); err != nil {
		return err
	}

	if req.TotalUnits != nil && *req.TotalUnits < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Tổng số phòng không được âm", nil)
	}

	if req.AvailableUnits != nil && *req.AvailableUnits < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số phòng trống không được âm", nil)
	}

	if req.PriceOverride != nil && !req.PriceOverride.IsPositive() {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "Giá override phải lớn hơn 0", nil)
	}

	return nil
}

// ValidateBookingCreate kiểm tra yêu cầu đặt phòng
func ValidateBookingCreate(req *dto.CreateBookingRequest) error {
	if _, err := ParseID(req.HotelID); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidID, "ID khách sạn không hợp lệ", nil)
	}

	if _, err := ParseID(req.RoomID); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidID, "ID phòng không hợp lệ", nil)
	}

	if _, _, err := ValidateDateRange(req.CheckInDate, req.CheckOutDate); err != nil {
		return err
	}

	if req.Guests == 0 {
		req.Guests = constants.MinGuests
	}
	if err := ValidateGuests(req.Guests); err != nil {
		return err
	}

	if err := ValidatePrice(req.TotalPrice); err != nil {
		return err
	}

	return nil
}
