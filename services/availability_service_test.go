package services

import (
	"context"
	"testing"

	"staycore/dto"
	"staycore/errors"
	"staycore/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestCheckRange(t *testing.T) {
	db := newTestDB(t)
	_, room := seedHotelRoom(t, db)
	svc := NewAvailabilityService(db, testLogger())
	ctx := context.Background()

	openRange(t, db, room.ID, "2026-11-01", "2026-11-04", 3, 2)

	t.Run("AllNightsOpen", func(t *testing.T) {
		ok, err := svc.CheckRange(ctx, room.ID, day(t, "2026-11-01"), day(t, "2026-11-04"), 2)
		if err != nil {
			t.Fatalf("CheckRange failed: %v", err)
		}
		if !ok {
			t.Error("expected room to be available for the whole range")
		}
	})

	t.Run("MissingDayCountsAsSoldOut", func(t *testing.T) {
		ok, err := svc.CheckRange(ctx, room.ID, day(t, "2026-11-01"), day(t, "2026-11-05"), 1)
		if err != nil {
			t.Fatalf("CheckRange failed: %v", err)
		}
		if ok {
			t.Error("a night without a ledger row must count as sold out")
		}
	})

	t.Run("UnitsShort", func(t *testing.T) {
		ok, err := svc.CheckRange(ctx, room.ID, day(t, "2026-11-01"), day(t, "2026-11-03"), 3)
		if err != nil {
			t.Fatalf("CheckRange failed: %v", err)
		}
		if ok {
			t.Error("expected false when a night has fewer units than requested")
		}
	})

	t.Run("BlockedDay", func(t *testing.T) {
		seedDay(t, db, room.ID, "2026-11-04", 3, 3, true, nil)
		ok, err := svc.CheckRange(ctx, room.ID, day(t, "2026-11-04"), day(t, "2026-11-05"), 1)
		if err != nil {
			t.Fatalf("CheckRange failed: %v", err)
		}
		if ok {
			t.Error("a blocked night must count as sold out")
		}
	})

	t.Run("ZeroUnitsCoercedToOne", func(t *testing.T) {
		ok, err := svc.CheckRange(ctx, room.ID, day(t, "2026-11-01"), day(t, "2026-11-02"), 0)
		if err != nil {
			t.Fatalf("CheckRange failed: %v", err)
		}
		if !ok {
			t.Error("units below one should be treated as one")
		}
	})

	t.Run("InvalidRange", func(t *testing.T) {
		_, err := svc.CheckRange(ctx, room.ID, day(t, "2026-11-03"), day(t, "2026-11-01"), 1)
		if !errors.HasCode(err, errors.ErrCodeInvalidRange) {
			t.Errorf("expected INVALID_RANGE, got %v", err)
		}
	})
}

func TestSearchRangeFullCoverageOnly(t *testing.T) {
	db := newTestDB(t)
	hotel, covered := seedHotelRoom(t, db)
	partial := &models.Room{HotelID: hotel.ID, Name: "Bungalow Garden", Price: decimal.NewFromInt(80)}
	if err := db.Create(partial).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}

	openRange(t, db, covered.ID, "2026-11-01", "2026-11-03", 2, 2)
	// phòng thứ hai chỉ mở một đêm: không được lọt vào kết quả
	seedDay(t, db, partial.ID, "2026-11-01", 2, 2, false, nil)

	svc := NewAvailabilityService(db, testLogger())
	records, err := svc.SearchRange(context.Background(), &dto.SearchAvailabilityRequest{
		CheckInDate:  "2026-11-01",
		CheckOutDate: "2026-11-03",
	})
	if err != nil {
		t.Fatalf("SearchRange failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records (both nights of the covered room), got %d", len(records))
	}
	for _, r := range records {
		if r.RoomID != covered.ID {
			t.Errorf("partially covered room must be excluded, got record for %s", r.RoomID)
		}
	}
}

func TestSearchRangeMinUnits(t *testing.T) {
	db := newTestDB(t)
	_, room := seedHotelRoom(t, db)
	openRange(t, db, room.ID, "2026-11-01", "2026-11-03", 3, 2)

	svc := NewAvailabilityService(db, testLogger())
	records, err := svc.SearchRange(context.Background(), &dto.SearchAvailabilityRequest{
		CheckInDate:  "2026-11-01",
		CheckOutDate: "2026-11-03",
		MinUnits:     3,
	})
	if err != nil {
		t.Fatalf("SearchRange failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no rooms with 3 free units, got %d records", len(records))
	}
}

func TestSearchRangeSortedByDateThenRoom(t *testing.T) {
	db := newTestDB(t)
	hotel, deluxe := seedHotelRoom(t, db) // "Deluxe Sea View"
	bungalow := &models.Room{HotelID: hotel.ID, Name: "Bungalow Garden", Price: decimal.NewFromInt(80)}
	if err := db.Create(bungalow).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}

	openRange(t, db, deluxe.ID, "2026-11-01", "2026-11-03", 2, 2)
	openRange(t, db, bungalow.ID, "2026-11-01", "2026-11-03", 2, 2)

	svc := NewAvailabilityService(db, testLogger())
	records, err := svc.SearchRange(context.Background(), &dto.SearchAvailabilityRequest{
		CheckInDate:  "2026-11-01",
		CheckOutDate: "2026-11-03",
	})
	if err != nil {
		t.Fatalf("SearchRange failed: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}

	wantRooms := []string{"Bungalow Garden", "Deluxe Sea View", "Bungalow Garden", "Deluxe Sea View"}
	for i, r := range records {
		if r.Room == nil {
			t.Fatalf("record %d missing preloaded room", i)
		}
		if r.Room.Name != wantRooms[i] {
			t.Errorf("record %d: expected %q, got %q", i, wantRooms[i], r.Room.Name)
		}
	}
	if !records[0].Date.Before(records[2].Date) {
		t.Error("expected results ordered by date first")
	}
}

func TestSearchRangeFiltersByHotel(t *testing.T) {
	db := newTestDB(t)
	hotel, room := seedHotelRoom(t, db)

	other := &models.Hotel{Name: "Khách sạn Tuần Châu", Country: "Việt Nam", City: "Hạ Long", Stars: 3}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("create hotel: %v", err)
	}
	otherRoom := &models.Room{HotelID: other.ID, Name: "Standard", Price: decimal.NewFromInt(50)}
	if err := db.Create(otherRoom).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}

	openRange(t, db, room.ID, "2026-11-01", "2026-11-03", 2, 2)
	openRange(t, db, otherRoom.ID, "2026-11-01", "2026-11-03", 2, 2)

	svc := NewAvailabilityService(db, testLogger())
	records, err := svc.SearchRange(context.Background(), &dto.SearchAvailabilityRequest{
		CheckInDate:  "2026-11-01",
		CheckOutDate: "2026-11-03",
		HotelID:      hotel.ID.String(),
	})
	if err != nil {
		t.Fatalf("SearchRange failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records for the filtered hotel, got %d", len(records))
	}
	for _, r := range records {
		if r.RoomID != room.ID {
			t.Errorf("expected only rooms of hotel %s, got room %s", hotel.ID, r.RoomID)
		}
	}
}

func TestRoomCalendar(t *testing.T) {
	db := newTestDB(t)
	_, room := seedHotelRoom(t, db) // giá gốc 100
	seedDay(t, db, room.ID, "2026-11-01", 3, 2, false, nil)
	seedDay(t, db, room.ID, "2026-11-02", 3, 0, false, decPtr(150))

	svc := NewAvailabilityService(db, testLogger())
	calendar, err := svc.RoomCalendar(context.Background(), room.ID, day(t, "2026-11-01"), day(t, "2026-11-03"))
	if err != nil {
		t.Fatalf("RoomCalendar failed: %v", err)
	}

	if calendar.RoomName != room.Name {
		t.Errorf("expected room name %q, got %q", room.Name, calendar.RoomName)
	}
	if len(calendar.Days) != 2 {
		t.Fatalf("expected 2 calendar days, got %d", len(calendar.Days))
	}

	first, second := calendar.Days[0], calendar.Days[1]
	if first.Date != "2026-11-01" || !first.IsAvailable {
		t.Errorf("expected 2026-11-01 available, got %+v", first)
	}
	if !first.Price.Equal(decimal.NewFromInt(100)) {
		t.Errorf("night without override must use the base price, got %s", first.Price)
	}
	if second.IsAvailable {
		t.Error("night with 0 units must not be available")
	}
	if !second.Price.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected override price 150, got %s", second.Price)
	}
}

func TestRoomCalendarRoomNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db, testLogger())

	_, err := svc.RoomCalendar(context.Background(), uuid.New(), day(t, "2026-11-01"), day(t, "2026-11-03"))
	if !errors.HasCode(err, errors.ErrCodeDBNotFound) {
		t.Errorf("expected DB_NOT_FOUND, got %v", err)
	}
}
