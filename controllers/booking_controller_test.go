package controllers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func TestCreateBookingEndpoint(t *testing.T) {
	db := newTestDB(t)
	hotel, room := seedHotelRoom(t, db)
	openRange(t, db, room.ID, "2026-09-10", "2026-09-12", 2, 2)
	router := newTestRouter(db)

	w := performJSON(t, router, http.MethodPost, "/api/v1/booking", map[string]interface{}{
		"hotelId":      hotel.ID.String(),
		"roomId":       room.ID.String(),
		"checkInDate":  "2026-09-10",
		"checkOutDate": "2026-09-12",
		"guests":       2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	data := dataMap(t, decodeResponse(t, w))
	if data["status"] != "pending" {
		t.Errorf("expected pending booking, got %v", data["status"])
	}
	if data["nights"].(float64) != 2 {
		t.Errorf("expected 2 nights, got %v", data["nights"])
	}
	if data["totalPrice"] != "200" {
		t.Errorf("expected price 200, got %v", data["totalPrice"])
	}
	if got := availableOn(t, db, room.ID, "2026-09-10"); got != 0 {
		t.Errorf("expected inventory held, got %d free", got)
	}

	t.Run("SoldOutConflicts", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPost, "/api/v1/booking", map[string]interface{}{
			"hotelId":      hotel.ID.String(),
			"roomId":       room.ID.String(),
			"checkInDate":  "2026-09-10",
			"checkOutDate": "2026-09-12",
			"guests":       1,
		})
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
		if resp := decodeResponse(t, w); resp.Code != 0 {
			t.Errorf("expected code 0, got %d", resp.Code)
		}
	})

	t.Run("MissingFieldsRejected", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPost, "/api/v1/booking", map[string]interface{}{
			"roomId": room.ID.String(),
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestBookingLifecycleEndpoints(t *testing.T) {
	db := newTestDB(t)
	hotel, room := seedHotelRoom(t, db)
	openRange(t, db, room.ID, "2026-09-10", "2026-09-12", 2, 2)
	router := newTestRouter(db)

	w := performJSON(t, router, http.MethodPost, "/api/v1/booking", map[string]interface{}{
		"hotelId":      hotel.ID.String(),
		"roomId":       room.ID.String(),
		"checkInDate":  "2026-09-10",
		"checkOutDate": "2026-09-12",
		"guests":       2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	bookingID := dataMap(t, decodeResponse(t, w))["id"].(string)

	w = performJSON(t, router, http.MethodPut, "/api/v1/bookingConfirm", map[string]interface{}{"id": bookingID})
	if w.Code != http.StatusOK {
		t.Fatalf("confirm: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := dataMap(t, decodeResponse(t, w))["status"]; got != "confirmed" {
		t.Errorf("expected confirmed, got %v", got)
	}

	w = performJSON(t, router, http.MethodGet, "/api/v1/booking/"+bookingID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}

	w = performJSON(t, router, http.MethodPut, "/api/v1/bookingCancel", map[string]interface{}{"id": bookingID})
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := availableOn(t, db, room.ID, "2026-09-10"); got != 2 {
		t.Errorf("cancel must return units, got %d", got)
	}

	t.Run("DoubleCancelRejected", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPut, "/api/v1/bookingCancel", map[string]interface{}{"id": bookingID})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("DeleteThenGone", func(t *testing.T) {
		w := performJSON(t, router, http.MethodDelete, "/api/v1/booking?id="+bookingID, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("delete: expected 200, got %d: %s", w.Code, w.Body.String())
		}
		w = performJSON(t, router, http.MethodGet, "/api/v1/booking/"+bookingID, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 after delete, got %d", w.Code)
		}
	})
}

func TestPatchBookingEndpoint(t *testing.T) {
	db := newTestDB(t)
	hotel, room := seedHotelRoom(t, db)
	openRange(t, db, room.ID, "2026-09-10", "2026-09-12", 3, 3)
	router := newTestRouter(db)

	w := performJSON(t, router, http.MethodPost, "/api/v1/booking", map[string]interface{}{
		"hotelId":      hotel.ID.String(),
		"roomId":       room.ID.String(),
		"checkInDate":  "2026-09-10",
		"checkOutDate": "2026-09-12",
		"guests":       2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	bookingID := dataMap(t, decodeResponse(t, w))["id"].(string)

	w = performJSON(t, router, http.MethodPut, "/api/v1/bookingPatch", map[string]interface{}{
		"id":     bookingID,
		"guests": 3,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := dataMap(t, decodeResponse(t, w))["guests"].(float64); got != 3 {
		t.Errorf("expected 3 guests, got %v", got)
	}

	t.Run("MoveToUnopenedRangeConflicts", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPut, "/api/v1/bookingPatch", map[string]interface{}{
			"id":           bookingID,
			"checkInDate":  "2026-09-20",
			"checkOutDate": "2026-09-22",
		})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestQuoteBookingEndpoint(t *testing.T) {
	db := newTestDB(t)
	_, room := seedHotelRoom(t, db)
	openRange(t, db, room.ID, "2026-09-10", "2026-09-12", 2, 2)
	router := newTestRouter(db)

	w := performJSON(t, router, http.MethodPost, "/api/v1/bookingQuote", map[string]interface{}{
		"roomId":       room.ID.String(),
		"checkInDate":  "2026-09-10",
		"checkOutDate": "2026-09-12",
		"guests":       2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := dataMap(t, decodeResponse(t, w))
	if data["available"] != true {
		t.Errorf("expected available quote, got %v", data["available"])
	}
	if data["totalPrice"] != "200" {
		t.Errorf("expected total 200, got %v", data["totalPrice"])
	}
	if data["currency"] != "USD" {
		t.Errorf("expected USD, got %v", data["currency"])
	}

	// báo giá không được giữ chỗ
	if got := availableOn(t, db, room.ID, "2026-09-10"); got != 2 {
		t.Errorf("quote must not consume inventory, got %d", got)
	}

	t.Run("UnknownRoom", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPost, "/api/v1/bookingQuote", map[string]interface{}{
			"roomId":       uuid.NewString(),
			"checkInDate":  "2026-09-10",
			"checkOutDate": "2026-09-12",
		})
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestBookingListEndpoints(t *testing.T) {
	db := newTestDB(t)
	hotel, room := seedHotelRoom(t, db)
	openRange(t, db, room.ID, "2026-09-10", "2026-09-12", 4, 4)
	router := newTestRouter(db)

	for i := 0; i < 2; i++ {
		w := performJSON(t, router, http.MethodPost, "/api/v1/booking", map[string]interface{}{
			"hotelId":      hotel.ID.String(),
			"roomId":       room.ID.String(),
			"checkInDate":  "2026-09-10",
			"checkOutDate": "2026-09-12",
			"guests":       1,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create %d: expected 201, got %d: %s", i, w.Code, w.Body.String())
		}
	}

	w := performJSON(t, router, http.MethodGet, "/api/v1/bookingByHotel?hotelId="+hotel.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeResponse(t, w)
	if resp.Pagination == nil || resp.Pagination.Total != 2 {
		t.Errorf("expected 2 bookings in pagination, got %+v", resp.Pagination)
	}

	w = performJSON(t, router, http.MethodGet,
		"/api/v1/bookingByRoom?roomId="+room.ID.String()+"&status=pending&limit=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp = decodeResponse(t, w)
	items, ok := resp.Data.([]interface{})
	if !ok || len(items) != 1 {
		t.Errorf("expected one row per page, got %v", resp.Data)
	}
	if resp.Pagination == nil || resp.Pagination.Total != 2 {
		t.Errorf("expected total 2, got %+v", resp.Pagination)
	}

	t.Run("BadHotelID", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/api/v1/bookingByHotel?hotelId=abc", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
