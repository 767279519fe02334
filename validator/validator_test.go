package validator

import (
	"testing"

	"staycore/constants"
	"staycore/dto"
	"staycore/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-10")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Format(constants.DateLayout) != "2026-09-10" {
		t.Errorf("expected 2026-09-10, got %s", d.Format(constants.DateLayout))
	}

	if _, err := ParseDate("10/09/2026"); !errors.HasCode(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT, got %v", err)
	}
}

func TestParseID(t *testing.T) {
	want := uuid.New()
	got, err := ParseID(want.String())
	if err != nil {
		t.Fatalf("ParseID failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	if _, err := ParseID("not-a-uuid"); !errors.HasCode(err, errors.ErrCodeInvalidID) {
		t.Errorf("expected INVALID_ID, got %v", err)
	}
}

func TestValidateDateRange(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		from, to, err := ValidateDateRange("2026-09-10", "2026-09-12")
		if err != nil {
			t.Fatalf("ValidateDateRange failed: %v", err)
		}
		if !to.After(from) {
			t.Error("expected check-out after check-in")
		}
	})

	t.Run("EmptyDates", func(t *testing.T) {
		if _, _, err := ValidateDateRange("", "2026-09-12"); !errors.HasCode(err, errors.ErrCodeRequiredField) {
			t.Errorf("expected REQUIRED_FIELD, got %v", err)
		}
		if _, _, err := ValidateDateRange("2026-09-10", ""); !errors.HasCode(err, errors.ErrCodeRequiredField) {
			t.Errorf("expected REQUIRED_FIELD, got %v", err)
		}
	})

	t.Run("SameDayStay", func(t *testing.T) {
		if _, _, err := ValidateDateRange("2026-09-10", "2026-09-10"); !errors.HasCode(err, errors.ErrCodeInvalidRange) {
			t.Errorf("expected INVALID_RANGE, got %v", err)
		}
	})

	t.Run("Inverted", func(t *testing.T) {
		if _, _, err := ValidateDateRange("2026-09-12", "2026-09-10"); !errors.HasCode(err, errors.ErrCodeInvalidRange) {
			t.Errorf("expected INVALID_RANGE, got %v", err)
		}
	})

	t.Run("Unparseable", func(t *testing.T) {
		if _, _, err := ValidateDateRange("chủ nhật", "2026-09-12"); !errors.HasCode(err, errors.ErrCodeInvalidRange) {
			t.Errorf("expected INVALID_RANGE, got %v", err)
		}
	})
}

func TestValidateGuests(t *testing.T) {
	if err := ValidateGuests(constants.MinGuests); err != nil {
		t.Errorf("min guests must pass, got %v", err)
	}
	if err := ValidateGuests(constants.MaxGuests); err != nil {
		t.Errorf("max guests must pass, got %v", err)
	}
	if err := ValidateGuests(0); !errors.HasCode(err, errors.ErrCodeInvalidGuests) {
		t.Errorf("expected INVALID_GUESTS for 0, got %v", err)
	}
	if err := ValidateGuests(constants.MaxGuests + 1); !errors.HasCode(err, errors.ErrCodeInvalidGuests) {
		t.Errorf("expected INVALID_GUESTS above the cap, got %v", err)
	}
}

func TestValidateUnits(t *testing.T) {
	if err := ValidateUnits(1); err != nil {
		t.Errorf("one unit must pass, got %v", err)
	}
	if err := ValidateUnits(0); !errors.HasCode(err, errors.ErrCodeValidation) {
		t.Errorf("expected VALIDATION_ERROR for 0 units, got %v", err)
	}
}

func TestValidatePrice(t *testing.T) {
	if err := ValidatePrice(nil); err != nil {
		t.Errorf("nil price must pass, got %v", err)
	}

	positive := decimal.NewFromInt(100)
	if err := ValidatePrice(&positive); err != nil {
		t.Errorf("positive price must pass, got %v", err)
	}

	zero := decimal.Zero
	if err := ValidatePrice(&zero); !errors.HasCode(err, errors.ErrCodeInvalidPrice) {
		t.Errorf("expected INVALID_PRICE for 0, got %v", err)
	}

	negative := decimal.NewFromInt(-5)
	if err := ValidatePrice(&negative); !errors.HasCode(err, errors.ErrCodeInvalidPrice) {
		t.Errorf("expected INVALID_PRICE for negatives, got %v", err)
	}
}

func TestValidateAvailabilityCreate(t *testing.T) {
	base := func() *dto.CreateAvailabilityRequest {
		return &dto.CreateAvailabilityRequest{
			RoomID: uuid.NewString(),
			Date:   "2026-09-10",
		}
	}

	if err := ValidateAvailabilityCreate(base()); err != nil {
		t.Fatalf("minimal request must pass, got %v", err)
	}

	t.Run("MissingRoom", func(t *testing.T) {
		req := base()
		req.RoomID = ""
		if err := ValidateAvailabilityCreate(req); !errors.HasCode(err, errors.ErrCodeRequiredField) {
			t.Errorf("expected REQUIRED_FIELD, got %v", err)
		}
	})

	t.Run("NegativeUnits", func(t *testing.T) {
		req := base()
		minus := -1
		req.TotalUnits = &minus
		if err := ValidateAvailabilityCreate(req); !errors.HasCode(err, errors.ErrCodeValidation) {
			t.Errorf("expected VALIDATION_ERROR, got %v", err)
		}
	})

	t.Run("AvailableAboveTotal", func(t *testing.T) {
		req := base()
		total, available := 2, 5
		req.TotalUnits = &total
		req.AvailableUnits = &available
		if err := ValidateAvailabilityCreate(req); !errors.HasCode(err, errors.ErrCodeValidation) {
			t.Errorf("expected VALIDATION_ERROR, got %v", err)
		}
	})

	t.Run("ZeroOverride", func(t *testing.T) {
		req := base()
		zero := decimal.Zero
		req.PriceOverride = &zero
		if err := ValidateAvailabilityCreate(req); !errors.HasCode(err, errors.ErrCodeInvalidPrice) {
			t.Errorf("expected INVALID_PRICE, got %v", err)
		}
	})
}

func TestValidateAvailabilityPatch(t *testing.T) {
	if err := ValidateAvailabilityPatch(&dto.UpdateAvailabilityRequest{ID: "xxx"}); !errors.HasCode(err, errors.ErrCodeInvalidID) {
		t.Errorf("expected INVALID_ID, got %v", err)
	}

	negative := -3
	err := ValidateAvailabilityPatch(&dto.UpdateAvailabilityRequest{
		ID:             uuid.NewString(),
		AvailableUnits: &negative,
	})
	if !errors.HasCode(err, errors.ErrCodeValidation) {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestValidateBookingCreate(t *testing.T) {
	base := func() *dto.CreateBookingRequest {
		return &dto.CreateBookingRequest{
			HotelID:      uuid.NewString(),
			RoomID:       uuid.NewString(),
			CheckInDate:  "2026-09-10",
			CheckOutDate: "2026-09-12",
			Guests:       2,
		}
	}

	if err := ValidateBookingCreate(base()); err != nil {
		t.Fatalf("valid request must pass, got %v", err)
	}

	t.Run("DefaultsGuestsToMin", func(t *testing.T) {
		req := base()
		req.Guests = 0
		if err := ValidateBookingCreate(req); err != nil {
			t.Fatalf("zero guests must default, got %v", err)
		}
		if req.Guests != constants.MinGuests {
			t.Errorf("expected guests defaulted to %d, got %d", constants.MinGuests, req.Guests)
		}
	})

	t.Run("BadHotelID", func(t *testing.T) {
		req := base()
		req.HotelID = "abc"
		if err := ValidateBookingCreate(req); !errors.HasCode(err, errors.ErrCodeInvalidID) {
			t.Errorf("expected INVALID_ID, got %v", err)
		}
	})

	t.Run("NegativePrice", func(t *testing.T) {
		req := base()
		negative := decimal.NewFromInt(-100)
		req.TotalPrice = &negative
		if err := ValidateBookingCreate(req); !errors.HasCode(err, errors.ErrCodeInvalidPrice) {
			t.Errorf("expected INVALID_PRICE, got %v", err)
		}
	})
}
