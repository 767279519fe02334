package controllers

import (
	"staycore/dto"
	"staycore/response"
	"staycore/services"
	"staycore/validator"

	"github.com/gin-gonic/gin"
)

// BookingController nhận các thao tác vòng đời đặt phòng
type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) BookingController {
	return BookingController{Service: service}
}

// CreateBooking godoc
// @Summary Đặt phòng mới
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Thông tin đặt phòng"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response "Hết phòng trong khoảng ngày yêu cầu"
// @Failure 503 {object} response.Response "Hệ thống đang bận, thử lại sau"
// @Router /booking [post]
func (ctl BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctl.Service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Created(c, dto.MakeBookingResponse(*booking))
}

// QuoteBooking godoc
// @Summary Báo giá khoảng ngày, không giữ chỗ
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Phòng, khoảng ngày, số khách"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookingQuote [post]
func (ctl BookingController) QuoteBooking(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	quote, err := ctl.Service.Quote(c.Request.Context(), &req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, quote)
}

// UpdateBooking godoc
// @Summary Thay toàn bộ thông tin đặt phòng
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.UpdateBookingRequest true "Thông tin mới"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response "Khoảng ngày mới không đủ phòng"
// @Router /bookingUpdate [put]
func (ctl BookingController) UpdateBooking(c *gin.Context) {
	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctl.Service.Update(c.Request.Context(), &req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, dto.MakeBookingResponse(*booking))
}

// PatchBooking godoc
// @Summary Cập nhật từng phần đặt phòng
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.PatchBookingRequest true "Các field cần sửa"
// @Success 200 {object} response.Response
// @Router /bookingPatch [put]
func (ctl BookingController) PatchBooking(c *gin.Context) {
	var req dto.PatchBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctl.Service.Patch(c.Request.Context(), &req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, dto.MakeBookingResponse(*booking))
}

// ConfirmBooking godoc
// @Summary Xác nhận đặt phòng đang chờ
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.BookingIDRequest true "ID đặt phòng"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "Trạng thái hiện tại không cho xác nhận"
// @Router /bookingConfirm [put]
func (ctl BookingController) ConfirmBooking(c *gin.Context) {
	var req dto.BookingIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	id, err := validator.ParseID(req.ID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	booking, err := ctl.Service.Confirm(c.Request.Context(), id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, dto.MakeBookingResponse(*booking))
}

// CancelBooking godoc
// @Summary Hủy đặt phòng và trả lại tồn kho đã giữ
// @Tags booking
// @Accept json
// @Produce json
// @Param request body dto.BookingIDRequest true "ID đặt phòng"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "Đặt phòng đã hủy hoặc đã kết thúc"
// @Router /bookingCancel [put]
func (ctl BookingController) CancelBooking(c *gin.Context) {
	var req dto.BookingIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	id, err := validator.ParseID(req.ID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	booking, err := ctl.Service.Cancel(c.Request.Context(), id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, dto.MakeBookingResponse(*booking))
}

// DeleteBooking godoc
// @Summary Xóa hẳn đặt phòng (trả tồn kho nếu còn giữ)
// @Tags booking
// @Produce json
// @Param id query string true "ID đặt phòng"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /booking [delete]
func (ctl BookingController) DeleteBooking(c *gin.Context) {
	id, err := validator.ParseID(c.Query("id"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	if err := ctl.Service.Delete(c.Request.Context(), id); err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetBooking godoc
// @Summary Chi tiết một đặt phòng
// @Tags booking
// @Produce json
// @Param id path string true "ID đặt phòng"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /booking/{id} [get]
func (ctl BookingController) GetBooking(c *gin.Context) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	booking, err := ctl.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, dto.MakeBookingResponse(*booking))
}

// GetBookingsByHotel godoc
// @Summary Danh sách đặt phòng của một khách sạn
// @Tags booking
// @Produce json
// @Param hotelId query string true "ID khách sạn"
// @Param status query string false "Lọc theo trạng thái"
// @Param page query int false "Trang (từ 0)"
// @Param limit query int false "Số dòng mỗi trang"
// @Success 200 {object} response.Response
// @Router /bookingByHotel [get]
func (ctl BookingController) GetBookingsByHotel(c *gin.Context) {
	hotelID, err := validator.ParseID(c.Query("hotelId"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	page, limit := parsePaging(c)

	bookings, total, err := ctl.Service.ListByHotel(c.Request.Context(), hotelID, c.Query("status"), page, limit)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	items := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, dto.MakeBookingResponse(booking))
	}
	response.SuccessWithPagination(c, items, page, limit, int(total))
}

// GetBookingsByRoom godoc
// @Summary Danh sách đặt phòng của một phòng
// @Tags booking
// @Produce json
// @Param roomId query string true "ID phòng"
// @Param status query string false "Lọc theo trạng thái"
// @Param page query int false "Trang (từ 0)"
// @Param limit query int false "Số dòng mỗi trang"
// @Success 200 {object} response.Response
// @Router /bookingByRoom [get]
func (ctl BookingController) GetBookingsByRoom(c *gin.Context) {
	roomID, err := validator.ParseID(c.Query("roomId"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	page, limit := parsePaging(c)

	bookings, total, err := ctl.Service.ListByRoom(c.Request.Context(), roomID, c.Query("status"), page, limit)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	items := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, dto.MakeBookingResponse(booking))
	}
	response.SuccessWithPagination(c, items, page, limit, int(total))
}
