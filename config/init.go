package config

import (
	"fmt"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// App gom các tài nguyên dùng chung của tiến trình; truyền xuống routes,
// services và jobs thay vì giữ biến global
type App struct {
	Router     *gin.Engine
	DB         *gorm.DB
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
	Melody     *melody.Melody
	Cron       *cron.Cron
}

func InitApp() (*App, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %v", err)
	}

	db, err := ConnectDB()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	redisCli, err := ConnectRedis()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	// Upload ảnh là tính năng phụ: thiếu cấu hình thì tắt, không chặn khởi động
	cld, err := ConnectCloudinary()
	if err != nil {
		log.Printf("Warning: Cloudinary không khả dụng: %v", err)
		cld = nil
	}

	log.Println("All components initialized successfully")

	return &App{
		Router:     router,
		DB:         db,
		Redis:      redisCli,
		Cloudinary: cld,
		Melody:     melody.New(),
		Cron:       cron.New(),
	}, nil
}

func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
	log.Println("WebSocket initialized successfully")
}
