package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Ledger errors
	ErrCodeInvalidRange             ErrorCode = "INVALID_RANGE"
	ErrCodeInsufficientAvailability ErrorCode = "INSUFFICIENT_AVAILABILITY"
	ErrCodeConflictingRecord        ErrorCode = "CONFLICTING_RECORD"
	ErrCodeDateBlocked              ErrorCode = "DATE_BLOCKED"
	ErrCodeStoreContention          ErrorCode = "STORE_CONTENTION"
	ErrCodeReleaseFailure           ErrorCode = "RELEASE_FAILURE"

	// Booking errors
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrCodeInvalidGuests     ErrorCode = "INVALID_GUESTS"
	ErrCodeInvalidPrice      ErrorCode = "INVALID_PRICE"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidID     ErrorCode = "INVALID_ID"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode kiểm tra error có mang ErrorCode cụ thể không
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingCancelled  = errors.New("booking already cancelled")
	ErrBookingCompleted  = errors.New("booking already completed")
	ErrBookingConfirmed  = errors.New("booking already confirmed")
	ErrBookingNotPending = errors.New("booking not pending")

	// Ledger errors
	ErrRecordNotFound  = errors.New("availability record not found")
	ErrRecordExists    = errors.New("availability record already exists")
	ErrDateBlocked     = errors.New("date is blocked")
	ErrNoAvailability  = errors.New("not enough units available")
	ErrRangeNotCovered = errors.New("date range not fully covered")

	// Catalog errors
	ErrHotelNotFound = errors.New("hotel not found")
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomNotInHotel = errors.New("room does not belong to hotel")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
