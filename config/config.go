package config

import (
	"fmt"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

// LoadEnv nạp biến môi trường từ tệp .env; thiếu tệp thì dùng biến môi
// trường hệ thống
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			log.Printf("Warning: không tìm thấy file .env, sử dụng biến môi trường có sẵn")
			return nil
		}
		return fmt.Errorf("lỗi khi đọc file .env: %w", err)
	}
	return nil
}

// ConnectCloudinary khởi tạo client Cloudinary từ biến môi trường
func ConnectCloudinary() (*cloudinary.Cloudinary, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("thiếu cấu hình Cloudinary (CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET)")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("lỗi khi khởi tạo Cloudinary: %w", err)
	}
	return cld, nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}
