package controllers

import (
	"log"
	"net/url"
	"strings"

	"staycore/constants"
	"staycore/dto"
	"staycore/models"
	"staycore/response"
	"staycore/services"
	"staycore/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// RoomController quản lý danh mục phòng
type RoomController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewRoomController(db *gorm.DB, redisCli *redis.Client) RoomController {
	return RoomController{
		DB:    db,
		Redis: redisCli,
	}
}

func (ctl RoomController) invalidateRoomCache(c *gin.Context) {
	if err := services.InvalidateCache(c.Request.Context(), ctl.Redis, constants.CacheKeyRooms); err != nil {
		log.Printf("Lỗi khi xóa cache phòng: %v", err)
	}
}

func (ctl RoomController) GetRooms(c *gin.Context) {
	ctx := c.Request.Context()

	var rooms []models.Room
	if hit, err := services.GetFromRedis(ctx, ctl.Redis, constants.CacheKeyRooms, &rooms); err != nil || !hit {
		if err := ctl.DB.WithContext(ctx).Preload("Hotel").Find(&rooms).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(ctx, ctl.Redis, constants.CacheKeyRooms, rooms, constants.CacheTTL); err != nil {
			log.Printf("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
		}
	}

	hotelFilter := c.Query("hotelId")
	nameFilter := c.Query("name")
	page, limit := parsePaging(c)

	filtered := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if hotelFilter != "" && room.HotelID.String() != hotelFilter {
			continue
		}
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(room.Name), strings.ToLower(decodedName)) {
				continue
			}
		}
		filtered = append(filtered, room)
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	response.SuccessWithPagination(c, filtered[start:end], page, limit, total)
}

func (ctl RoomController) GetRoom(c *gin.Context) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	var room models.Room
	if err := ctl.DB.WithContext(c.Request.Context()).Preload("Hotel").First(&room, "id = ?", id).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, room)
}

func (ctl RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	hotelID, err := validator.ParseID(req.HotelID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	var count int64
	if err := ctl.DB.WithContext(c.Request.Context()).Model(&models.Hotel{}).Where("id = ?", hotelID).Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count == 0 {
		response.NotFound(c)
		return
	}

	if !req.Price.IsPositive() {
		response.BadRequest(c, "Giá phòng phải lớn hơn 0")
		return
	}

	room := models.Room{
		HotelID:     hotelID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Amenities:   pq.StringArray(req.Amenities),
	}
	if err := ctl.DB.WithContext(c.Request.Context()).Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.invalidateRoomCache(c)
	response.Created(c, room)
}

func (ctl RoomController) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	id, err := validator.ParseID(req.ID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	var room models.Room
	if err := ctl.DB.WithContext(c.Request.Context()).First(&room, "id = ?", id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Price != nil {
		if !req.Price.IsPositive() {
			response.BadRequest(c, "Giá phòng phải lớn hơn 0")
			return
		}
		room.Price = *req.Price
	}
	if len(req.Images) > 0 {
		room.Images = req.Images
	}
	if req.Amenities != nil {
		room.Amenities = pq.StringArray(req.Amenities)
	}

	if err := ctl.DB.WithContext(c.Request.Context()).Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.invalidateRoomCache(c)
	response.Success(c, room)
}
