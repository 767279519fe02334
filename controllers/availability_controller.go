package controllers

import (
	"strconv"

	"staycore/constants"
	"staycore/dto"
	"staycore/response"
	"staycore/services"
	"staycore/validator"

	"github.com/gin-gonic/gin"
)

// AvailabilityController nhận các thao tác quản trị trên sổ tồn kho
type AvailabilityController struct {
	Ledger  *services.LedgerService
	Checker *services.AvailabilityService
}

func NewAvailabilityController(ledger *services.LedgerService, checker *services.AvailabilityService) AvailabilityController {
	return AvailabilityController{
		Ledger:  ledger,
		Checker: checker,
	}
}

func parsePaging(c *gin.Context) (int, int) {
	page := constants.DefaultPage
	limit := constants.DefaultLimit
	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed >= 0 {
			page = parsed
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return page, limit
}

// GetAvailabilities godoc
// @Summary Danh sách tồn kho theo bộ lọc
// @Tags availability
// @Produce json
// @Param roomId query string false "ID phòng"
// @Param fromDate query string false "Từ ngày (YYYY-MM-DD)"
// @Param toDate query string false "Đến ngày (YYYY-MM-DD)"
// @Param availableOnly query bool false "Chỉ ngày còn bán được"
// @Param page query int false "Trang (từ 0)"
// @Param limit query int false "Số dòng mỗi trang"
// @Success 200 {object} response.Response
// @Router /availability [get]
func (ctl AvailabilityController) GetAvailabilities(c *gin.Context) {
	page, limit := parsePaging(c)

	filter := dto.AvailabilityFilter{
		RoomID:        c.Query("roomId"),
		FromDate:      c.Query("fromDate"),
		ToDate:        c.Query("toDate"),
		AvailableOnly: c.Query("availableOnly") == "true",
		Page:          page,
		Limit:         limit,
	}

	records, total, err := ctl.Ledger.List(c.Request.Context(), filter)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	items := make([]dto.AvailabilityResponse, 0, len(records))
	for _, record := range records {
		items = append(items, dto.MakeAvailabilityResponse(record))
	}
	response.SuccessWithPagination(c, items, page, limit, int(total))
}

// GetAvailability godoc
// @Summary Chi tiết một dòng tồn kho
// @Tags availability
// @Produce json
// @Param id path string true "ID dòng tồn kho"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /availability/{id} [get]
func (ctl AvailabilityController) GetAvailability(c *gin.Context) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	record, err := ctl.Ledger.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, dto.MakeAvailabilityResponse(*record))
}

// CreateAvailability godoc
// @Summary Tạo một dòng tồn kho cho (phòng, ngày)
// @Tags availability
// @Accept json
// @Produce json
// @Param request body dto.CreateAvailabilityRequest true "Thông tin tồn kho"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response "Đã có dòng cho (phòng, ngày) này"
// @Router /availability [post]
func (ctl AvailabilityController) CreateAvailability(c *gin.Context) {
	var req dto.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	record, err := ctl.Ledger.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Created(c, dto.MakeAvailabilityResponse(*record))
}

// UpdateAvailability godoc
// @Summary Cập nhật từng phần một dòng tồn kho
// @Tags availability
// @Accept json
// @Produce json
// @Param request body dto.UpdateAvailabilityRequest true "Các field cần sửa"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /availabilityUpdate [put]
func (ctl AvailabilityController) UpdateAvailability(c *gin.Context) {
	var req dto.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	record, err := ctl.Ledger.Patch(c.Request.Context(), &req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, dto.MakeAvailabilityResponse(*record))
}

// DeleteAvailability godoc
// @Summary Xóa một dòng tồn kho
// @Tags availability
// @Produce json
// @Param id query string true "ID dòng tồn kho"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /availability [delete]
func (ctl AvailabilityController) DeleteAvailability(c *gin.Context) {
	id, err := validator.ParseID(c.Query("id"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	if err := ctl.Ledger.Delete(c.Request.Context(), id); err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, nil)
}

// CreateAvailabilityRange godoc
// @Summary Mở bán một khoảng ngày, bỏ qua ngày đã có dòng
// @Tags availability
// @Accept json
// @Produce json
// @Param request body dto.RangeAvailabilityRequest true "Khoảng ngày và cấu hình"
// @Success 201 {object} response.Response
// @Router /availabilityRange [post]
func (ctl AvailabilityController) CreateAvailabilityRange(c *gin.Context) {
	var req dto.RangeAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	result, err := ctl.Ledger.CreateRange(c.Request.Context(), &req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Created(c, result)
}

// BlockAvailabilityRange godoc
// @Summary Chặn bán một khoảng ngày của phòng
// @Tags availability
// @Accept json
// @Produce json
// @Param request body dto.BlockRangeRequest true "Phòng và khoảng ngày cần chặn"
// @Success 200 {object} response.Response
// @Router /availabilityBlock [put]
func (ctl AvailabilityController) BlockAvailabilityRange(c *gin.Context) {
	var req dto.BlockRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	result, err := ctl.Ledger.BlockRange(c.Request.Context(), &req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, result)
}

// SearchAvailability godoc
// @Summary Tìm phòng còn trống đủ mọi ngày trong khoảng
// @Tags availability
// @Produce json
// @Param checkInDate query string true "Ngày nhận phòng (YYYY-MM-DD)"
// @Param checkOutDate query string true "Ngày trả phòng (YYYY-MM-DD)"
// @Param minUnits query int false "Số suất tối thiểu mỗi ngày"
// @Param hotelId query string false "Giới hạn theo khách sạn"
// @Param roomId query string false "Giới hạn theo phòng"
// @Success 200 {object} response.Response
// @Router /availabilitySearch [get]
func (ctl AvailabilityController) SearchAvailability(c *gin.Context) {
	var req dto.SearchAvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Thiếu ngày nhận phòng hoặc ngày trả phòng")
		return
	}

	records, err := ctl.Checker.SearchRange(c.Request.Context(), &req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	items := make([]dto.AvailabilityResponse, 0, len(records))
	for _, record := range records {
		items = append(items, dto.MakeAvailabilityResponse(record))
	}
	response.SuccessWithTotal(c, items, len(items))
}

// GetRoomCalendar godoc
// @Summary Lịch tồn kho của một phòng theo khoảng ngày
// @Tags availability
// @Produce json
// @Param roomId query string true "ID phòng"
// @Param fromDate query string true "Từ ngày (YYYY-MM-DD)"
// @Param toDate query string true "Đến ngày (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /roomCalendar [get]
func (ctl AvailabilityController) GetRoomCalendar(c *gin.Context) {
	roomID, err := validator.ParseID(c.Query("roomId"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	from, to, err := validator.ValidateDateRange(c.Query("fromDate"), c.Query("toDate"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	calendar, err := ctl.Checker.RoomCalendar(c.Request.Context(), roomID, from, to)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, calendar)
}
