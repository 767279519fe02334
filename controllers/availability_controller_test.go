package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"staycore/constants"
	"staycore/models"
	"staycore/response"
	"staycore/services"
	"staycore/services/logger"
	"staycore/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB mở sqlite riêng cho mỗi test, một connection duy nhất để các
// transaction ghi tuần tự hóa như trên một writer
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") +
		"?_busy_timeout=5000&_txlock=immediate&_loc=UTC"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Hotel{}, &models.Room{}, &models.Availability{}, &models.Booking{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newTestRouter dựng router với đúng bộ service như routes.SetupRoutes,
// không Redis và không websocket
func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logger.NewDefaultLogger(logger.ErrorLevel)
	queue := services.NewReleaseQueue(nil, log)
	coordinator := services.NewReservationService(db, log, queue)
	checker := services.NewAvailabilityService(db, log)
	ledger := services.NewLedgerService(db, log)
	bookingService := services.NewBookingService(
		db, log,
		services.NewCatalogService(db),
		checker,
		coordinator,
		services.NewPricingService(db),
		&notification.NoopService{},
	)

	availabilityCtl := NewAvailabilityController(ledger, checker)
	bookingCtl := NewBookingController(bookingService)

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.GET("/availability", availabilityCtl.GetAvailabilities)
		v1.GET("/availability/:id", availabilityCtl.GetAvailability)
		v1.POST("/availability", availabilityCtl.CreateAvailability)
		v1.PUT("/availabilityUpdate", availabilityCtl.UpdateAvailability)
		v1.DELETE("/availability", availabilityCtl.DeleteAvailability)
		v1.POST("/availabilityRange", availabilityCtl.CreateAvailabilityRange)
		v1.PUT("/availabilityBlock", availabilityCtl.BlockAvailabilityRange)
		v1.GET("/availabilitySearch", availabilityCtl.SearchAvailability)
		v1.GET("/roomCalendar", availabilityCtl.GetRoomCalendar)

		v1.POST("/booking", bookingCtl.CreateBooking)
		v1.POST("/bookingQuote", bookingCtl.QuoteBooking)
		v1.PUT("/bookingUpdate", bookingCtl.UpdateBooking)
		v1.PUT("/bookingPatch", bookingCtl.PatchBooking)
		v1.PUT("/bookingConfirm", bookingCtl.ConfirmBooking)
		v1.PUT("/bookingCancel", bookingCtl.CancelBooking)
		v1.DELETE("/booking", bookingCtl.DeleteBooking)
		v1.GET("/booking/:id", bookingCtl.GetBooking)
		v1.GET("/bookingByHotel", bookingCtl.GetBookingsByHotel)
		v1.GET("/bookingByRoom", bookingCtl.GetBookingsByRoom)
	}
	return router
}

func seedHotelRoom(t *testing.T, db *gorm.DB) (*models.Hotel, *models.Room) {
	t.Helper()

	hotel := &models.Hotel{Name: "Khách sạn Hòn Gai", Country: "Việt Nam", City: "Hạ Long", Stars: 4}
	if err := db.Create(hotel).Error; err != nil {
		t.Fatalf("create hotel: %v", err)
	}
	room := &models.Room{
		HotelID: hotel.ID,
		Name:    "Deluxe Sea View",
		Price:   decimal.NewFromInt(100),
	}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}
	return hotel, room
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return d
}

func seedDay(t *testing.T, db *gorm.DB, roomID uuid.UUID, date string, total, available int, blocked bool) *models.Availability {
	t.Helper()

	record := &models.Availability{
		RoomID:         roomID,
		Date:           services.NormalizeDate(day(t, date)),
		TotalUnits:     total,
		AvailableUnits: available,
		IsBlocked:      blocked,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("seed availability %s: %v", date, err)
	}
	return record
}

func openRange(t *testing.T, db *gorm.DB, roomID uuid.UUID, from, to string, total, available int) {
	t.Helper()
	for _, d := range services.DatesBetween(day(t, from), day(t, to)) {
		seedDay(t, db, roomID, d.Format(constants.DateLayout), total, available, false)
	}
}

func availableOn(t *testing.T, db *gorm.DB, roomID uuid.UUID, date string) int {
	t.Helper()

	var record models.Availability
	err := db.Where("room_id = ? AND date = ?", roomID, services.NormalizeDate(day(t, date))).First(&record).Error
	if err != nil {
		t.Fatalf("load availability %s: %v", date, err)
	}
	return record.AvailableUnits
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return resp
}

func dataMap(t *testing.T, resp response.Response) map[string]interface{} {
	t.Helper()

	m, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected object payload, got %T", resp.Data)
	}
	return m
}

func TestCreateAvailabilityEndpoint(t *testing.T) {
	db := newTestDB(t)
	_, room := seedHotelRoom(t, db)
	router := newTestRouter(db)

	body := map[string]interface{}{
		"roomId":     room.ID.String(),
		"date":       "2026-10-01",
		"totalUnits": 3,
	}

	w := performJSON(t, router, http.MethodPost, "/api/v1/availability", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeResponse(t, w)
	if resp.Code != 1 {
		t.Errorf("expected code 1, got %d", resp.Code)
	}
	if got := dataMap(t, resp)["availableUnits"].(float64); got != 3 {
		t.Errorf("expected availableUnits 3, got %v", got)
	}

	t.Run("DuplicateConflicts", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPost, "/api/v1/availability", body)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
		if resp := decodeResponse(t, w); resp.Code != 0 {
			t.Errorf("expected code 0, got %d", resp.Code)
		}
	})

	t.Run("MissingFieldsRejected", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPost, "/api/v1/availability", map[string]interface{}{"date": "2026-10-01"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestAvailabilityDetailAndDelete(t *testing.T) {
	db := newTestDB(t)
	_, room := seedHotelRoom(t, db)
	record := seedDay(t, db, room.ID, "2026-10-01", 3, 3, false)
	router := newTestRouter(db)

	w := performJSON(t, router, http.MethodGet, "/api/v1/availability/"+record.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := dataMap(t, decodeResponse(t, w))
	if data["date"] != "2026-10-01" || data["roomName"] != "Deluxe Sea View" {
		t.Errorf("unexpected payload: %v", data)
	}

	t.Run("BadID", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/api/v1/availability/abc", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/api/v1/availability/"+uuid.NewString(), nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("DeleteThenGone", func(t *testing.T) {
		w := performJSON(t, router, http.MethodDelete, "/api/v1/availability?id="+record.ID.String(), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		w = performJSON(t, router, http.MethodDelete, "/api/v1/availability?id="+record.ID.String(), nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("second delete: expected 404, got %d", w.Code)
		}
	})
}

func TestUpdateAvailabilityEndpoint(t *testing.T) {
	db := newTestDB(t)
	_, room := seedHotelRoom(t, db)
	record := seedDay(t, db, room.ID, "2026-10-01", 3, 3, false)
	router := newTestRouter(db)

	w := performJSON(t, router, http.MethodPut, "/api/v1/availabilityUpdate", map[string]interface{}{
		"id":             record.ID.String(),
		"availableUnits": 1,
		"isBlocked":      true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := dataMap(t, decodeResponse(t, w))
	if data["availableUnits"].(float64) != 1 || data["isBlocked"] != true {
		t.Errorf("unexpected payload: %v", data)
	}

	t.Run("ValidationError", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPut, "/api/v1/availabilityUpdate", map[string]interface{}{
			"id":             record.ID.String(),
			"availableUnits": 9,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for available > total, got %d", w.Code)
		}
	})
}

func TestAvailabilityRangeAndBlockEndpoints(t *testing.T) {
	db := newTestDB(t)
	_, room := seedHotelRoom(t, db)
	router := newTestRouter(db)

	w := performJSON(t, router, http.MethodPost, "/api/v1/availabilityRange", map[string]interface{}{
		"roomId":       room.ID.String(),
		"checkInDate":  "2026-10-01",
		"checkOutDate": "2026-10-04",
		"totalUnits":   2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if got := dataMap(t, decodeResponse(t, w))["created"].(float64); got != 3 {
		t.Errorf("expected 3 created, got %v", got)
	}

	w = performJSON(t, router, http.MethodPut, "/api/v1/availabilityBlock", map[string]interface{}{
		"roomId":       room.ID.String(),
		"checkInDate":  "2026-10-01",
		"checkOutDate": "2026-10-04",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := dataMap(t, decodeResponse(t, w))["updated"].(float64); got != 3 {
		t.Errorf("expected 3 updated, got %v", got)
	}

	// sau khi chặn, không còn ngày nào bán được
	w = performJSON(t, router, http.MethodGet,
		"/api/v1/availability?roomId="+room.ID.String()+"&availableOnly=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Pagination == nil || resp.Pagination.Total != 0 {
		t.Errorf("expected empty sellable list, got %+v", resp.Pagination)
	}
}

func TestSearchAvailabilityEndpoint(t *testing.T) {
	db := newTestDB(t)
	_, room := seedHotelRoom(t, db)
	openRange(t, db, room.ID, "2026-10-01", "2026-10-03", 2, 2)
	router := newTestRouter(db)

	w := performJSON(t, router, http.MethodGet,
		"/api/v1/availabilitySearch?checkInDate=2026-10-01&checkOutDate=2026-10-03", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if raw["total"].(float64) != 2 {
		t.Errorf("expected 2 qualifying rows, got %v", raw["total"])
	}

	t.Run("MissingDatesRejected", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/api/v1/availabilitySearch?checkInDate=2026-10-01", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestRoomCalendarEndpoint(t *testing.T) {
	db := newTestDB(t)
	_, room := seedHotelRoom(t, db)
	openRange(t, db, room.ID, "2026-10-01", "2026-10-03", 2, 2)
	router := newTestRouter(db)

	w := performJSON(t, router, http.MethodGet,
		"/api/v1/roomCalendar?roomId="+room.ID.String()+"&fromDate=2026-10-01&toDate=2026-10-03", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := dataMap(t, decodeResponse(t, w))
	days, ok := data["days"].([]interface{})
	if !ok || len(days) != 2 {
		t.Errorf("expected 2 calendar days, got %v", data["days"])
	}

	t.Run("UnknownRoom", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet,
			"/api/v1/roomCalendar?roomId="+uuid.NewString()+"&fromDate=2026-10-01&toDate=2026-10-03", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("MissingDates", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/api/v1/roomCalendar?roomId="+room.ID.String(), nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
