package main

import (
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"time"

	"staycore/config"
	"staycore/models"

	"staycore/jobs"
	"staycore/routes"
	"staycore/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func migrateTables(db *gorm.DB) {
	if err := db.AutoMigrate(&models.Hotel{}, &models.Room{}, &models.Availability{}, &models.Booking{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

// @title StayCore API
// @version 1.0
// @description API quản lý tồn kho phòng và vòng đời đặt phòng khách sạn.
// @BasePath /api/v1
func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	if err := utils.InitLoggers(); err != nil {
		log.Printf("Warning: không khởi tạo được file log: %v", err)
	}

	app, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables(app.DB)

	config.InitWebSocket(app.Router, app.Melody)

	flusher, bookingService := routes.SetupRoutes(app.Router, app.DB, app.Redis, app.Cloudinary, app.Melody)
	jobs.SetReleaseFlusher(flusher)
	jobs.SetBookingCompleter(bookingService)

	if err := jobs.InitCronJobs(app.Cron, app.Melody); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	app.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	go func() {
		pingURL := os.Getenv("PING_URL")
		if pingURL == "" {
			return
		}
		for {
			resp, err := http.Get(pingURL)
			if err != nil {
				log.Printf("Error pinging /ping endpoint: %v", err)
			} else {
				body, _ := ioutil.ReadAll(resp.Body)
				resp.Body.Close()
				log.Printf("Ping response: %s", string(body))
			}
			time.Sleep(5 * time.Minute)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := app.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
