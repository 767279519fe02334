package routes

import (
	"context"
	"fmt"
	"net/http"

	"staycore/controllers"
	middlewares "staycore/middleware"
	"staycore/services"
	"staycore/services/logger"
	"staycore/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"

	_ "staycore/docs"
)

// SetupRoutes dựng toàn bộ service graph và gắn route. Trả về adapter cho
// cron jobs để jobs dùng đúng instance queue/booking service của HTTP path.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) (*services.ReleaseQueueAdapter, *services.BookingService) {

	log := logger.NewFromEnv()

	queue := services.NewReleaseQueue(redisCli, log)
	coordinator := services.NewReservationService(db, log, queue)
	checker := services.NewAvailabilityService(db, log)
	ledger := services.NewLedgerService(db, log)
	pricing := services.NewPricingService(db)
	catalog := services.NewCatalogService(db)
	bookingService := services.NewBookingService(
		db, log, catalog, checker, coordinator, pricing, notification.NewMelodyService(m))

	availabilityController := controllers.NewAvailabilityController(ledger, checker)
	bookingController := controllers.NewBookingController(bookingService)
	hotelController := controllers.NewHotelController(db, redisCli)
	roomController := controllers.NewRoomController(db, redisCli)

	router.Use(middlewares.RequestIDMiddleware())

	v1 := router.Group("/api/v1")

	v1.GET("/availability", availabilityController.GetAvailabilities)
	v1.POST("/availability", availabilityController.CreateAvailability)
	v1.GET("/availability/:id", availabilityController.GetAvailability)
	v1.PUT("/availabilityUpdate", availabilityController.UpdateAvailability)
	v1.DELETE("/availability", availabilityController.DeleteAvailability)
	v1.POST("/availabilityRange", availabilityController.CreateAvailabilityRange)
	v1.PUT("/availabilityBlock", availabilityController.BlockAvailabilityRange)
	v1.GET("/availabilitySearch", availabilityController.SearchAvailability)
	v1.GET("/roomCalendar", availabilityController.GetRoomCalendar)

	v1.POST("/booking", bookingController.CreateBooking)
	v1.POST("/bookingQuote", bookingController.QuoteBooking)
	v1.GET("/booking/:id", bookingController.GetBooking)
	v1.PUT("/bookingUpdate", bookingController.UpdateBooking)
	v1.PUT("/bookingPatch", bookingController.PatchBooking)
	v1.PUT("/bookingConfirm", bookingController.ConfirmBooking)
	v1.PUT("/bookingCancel", bookingController.CancelBooking)
	v1.DELETE("/booking", bookingController.DeleteBooking)
	v1.GET("/bookingByHotel", bookingController.GetBookingsByHotel)
	v1.GET("/bookingByRoom", bookingController.GetBookingsByRoom)

	v1.GET("/hotels", hotelController.GetHotels)
	v1.POST("/hotels", hotelController.CreateHotel)
	v1.GET("/hotels/:id", hotelController.GetHotel)
	v1.PUT("/hotelUpdate", hotelController.UpdateHotel)
	v1.GET("/hotelSearch", hotelController.SearchHotels)
	v1.GET("/hotelRooms", hotelController.GetHotelRooms)
	v1.GET("/destinations", hotelController.GetDestinations)

	v1.GET("/rooms", roomController.GetRooms)
	v1.POST("/rooms", roomController.CreateRoom)
	v1.GET("/rooms/:id", roomController.GetRoom)
	v1.PUT("/roomUpdate", roomController.UpdateRoom)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		if cld == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Upload ảnh chưa được cấu hình"})
			return
		}
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "hotels"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		if cld == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Upload ảnh chưa được cấu hình"})
			return
		}
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "hotels"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload ảnh thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		fmt.Println("Broadcasting message:", string(message))
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return services.NewReleaseQueueAdapter(coordinator, queue), bookingService
}
