package controllers

import (
	"log"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"staycore/constants"
	"staycore/dto"
	"staycore/models"
	"staycore/response"
	"staycore/services"
	"staycore/validator"

	unidecode "github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// HotelController quản lý danh mục khách sạn và tìm kiếm gần đúng
type HotelController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHotelController(db *gorm.DB, redisCli *redis.Client) HotelController {
	return HotelController{
		DB:    db,
		Redis: redisCli,
	}
}

// Hàm chuẩn hóa chuỗi: bỏ dấu, thường hóa
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Bắt số sao trong câu truy vấn, ví dụ "khách sạn 5 sao đà nẵng"
func extractStarsFromQuery(query string) int {
	re := regexp.MustCompile(`(\d+)\s*sao`)
	match := re.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}

	stars, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return stars
}

// Tạo danh sách giá trị duy nhất đã chuẩn hóa cho closestmatch
func prepareUniqueList(hotels []models.Hotel, field string) []string {
	uniqueValues := make(map[string]bool)

	for _, hotel := range hotels {
		var value string
		switch field {
		case "country":
			value = hotel.Country
		case "city":
			value = hotel.City
		}
		if value != "" {
			uniqueValues[normalizeInput(value)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp của một khách sạn với câu truy vấn
func calculateScore(query string, hotel models.Hotel, cmCountry, cmCity *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	normalizedName := normalizeInput(hotel.Name)
	if strings.Contains(normalizedQuery, normalizedName) || calculateSimilarity(normalizedQuery, normalizedName) > 0.7 {
		score += 20
	}

	if stars := extractStarsFromQuery(normalizedQuery); stars != -1 && hotel.Stars == stars {
		score += 15
	}

	if cmCity.Closest(normalizedQuery) == normalizeInput(hotel.City) && hotel.City != "" {
		score += 13
	}
	if cmCountry.Closest(normalizedQuery) == normalizeInput(hotel.Country) && hotel.Country != "" {
		score += 5
	}

	return score
}

// Chấm điểm song song rồi sắp theo điểm giảm dần
func filterAndScoreHotels(
	query string,
	hotels []models.Hotel,
	cmCountry, cmCity *closestmatch.ClosestMatch,
) []dto.ScoredHotel {
	var scored []dto.ScoredHotel
	scoreCh := make(chan dto.ScoredHotel, len(hotels))
	var wg sync.WaitGroup

	for _, hotel := range hotels {
		wg.Add(1)
		go func(hotel models.Hotel) {
			defer wg.Done()
			score := calculateScore(query, hotel, cmCountry, cmCity)
			if score > 0 {
				scoreCh <- dto.ScoredHotel{
					Hotel: hotel,
					Score: score,
				}
			}
		}(hotel)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredHotel := range scoreCh {
		scored = append(scored, scoredHotel)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func (ctl HotelController) loadHotels(c *gin.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	ctx := c.Request.Context()

	if hit, err := services.GetFromRedis(ctx, ctl.Redis, constants.CacheKeyHotels, &hotels); err == nil && hit {
		return hotels, nil
	}

	if err := ctl.DB.WithContext(ctx).Find(&hotels).Error; err != nil {
		return nil, err
	}

	if err := services.SetToRedis(ctx, ctl.Redis, constants.CacheKeyHotels, hotels, constants.CacheTTL); err != nil {
		log.Printf("Lỗi khi lưu danh sách khách sạn vào Redis: %v", err)
	}
	return hotels, nil
}

func (ctl HotelController) invalidateHotelCache(c *gin.Context) {
	ctx := c.Request.Context()
	if err := services.InvalidateCache(ctx, ctl.Redis, constants.CacheKeyHotels, constants.CacheKeyDestinations); err != nil {
		log.Printf("Lỗi khi xóa cache khách sạn: %v", err)
	}
}

func (ctl HotelController) GetHotels(c *gin.Context) {
	hotels, err := ctl.loadHotels(c)
	if err != nil {
		response.ServerError(c)
		return
	}

	nameFilter := c.Query("name")
	countryFilter := c.Query("country")
	cityFilter := c.Query("city")
	starsStr := c.Query("stars")
	page, limit := parsePaging(c)

	filtered := make([]models.Hotel, 0, len(hotels))
	for _, hotel := range hotels {
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(hotel.Name), strings.ToLower(decodedName)) {
				continue
			}
		}
		if countryFilter != "" && !strings.EqualFold(hotel.Country, countryFilter) {
			continue
		}
		if cityFilter != "" && !strings.EqualFold(hotel.City, cityFilter) {
			continue
		}
		if starsStr != "" {
			if stars, err := strconv.Atoi(starsStr); err == nil && hotel.Stars != stars {
				continue
			}
		}
		filtered = append(filtered, hotel)
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

func (ctl HotelController) GetHotel(c *gin.Context) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	var hotel models.Hotel
	if err := ctl.DB.WithContext(c.Request.Context()).Preload("Rooms").First(&hotel, "id = ?", id).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, hotel)
}

func (ctl HotelController) CreateHotel(c *gin.Context) {
	var req dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	hotel := models.Hotel{
		Name:    req.Name,
		Country: req.Country,
		City:    req.City,
		Stars:   req.Stars,
		Images:  req.Images,
	}
	if err := ctl.DB.WithContext(c.Request.Context()).Create(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.invalidateHotelCache(c)
	response.Created(c, hotel)
}

func (ctl HotelController) UpdateHotel(c *gin.Context) {
	var req dto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	id, err := validator.ParseID(req.ID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	var hotel models.Hotel
	if err := ctl.DB.WithContext(c.Request.Context()).First(&hotel, "id = ?", id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.Country != nil {
		hotel.Country = *req.Country
	}
	if req.City != nil {
		hotel.City = *req.City
	}
	if req.Stars != nil {
		hotel.Stars = *req.Stars
	}
	if len(req.Images) > 0 {
		hotel.Images = req.Images
	}

	if err := ctl.DB.WithContext(c.Request.Context()).Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.invalidateHotelCache(c)
	response.Success(c, hotel)
}

// SearchHotels tìm gần đúng theo tên, số sao ("5 sao"), thành phố, quốc gia
func (ctl HotelController) SearchHotels(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}
	if decoded, err := url.QueryUnescape(query); err == nil {
		query = decoded
	}

	hotels, err := ctl.loadHotels(c)
	if err != nil {
		response.ServerError(c)
		return
	}
	if len(hotels) == 0 {
		response.SuccessWithTotal(c, []dto.ScoredHotel{}, 0)
		return
	}

	cmCountry := createMatcher(prepareUniqueList(hotels, "country"))
	cmCity := createMatcher(prepareUniqueList(hotels, "city"))

	scored := filterAndScoreHotels(query, hotels, cmCountry, cmCity)
	response.SuccessWithTotal(c, scored, len(scored))
}

// GetDestinations trả về danh sách quốc gia đang có khách sạn
func (ctl HotelController) GetDestinations(c *gin.Context) {
	ctx := c.Request.Context()

	var destinations []string
	if hit, err := services.GetFromRedis(ctx, ctl.Redis, constants.CacheKeyDestinations, &destinations); err == nil && hit {
		response.SuccessWithTotal(c, destinations, len(destinations))
		return
	}

	err := ctl.DB.WithContext(ctx).Model(&models.Hotel{}).
		Distinct("country").
		Where("country <> ''").
		Order("country ASC").
		Pluck("country", &destinations).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	if err := services.SetToRedis(ctx, ctl.Redis, constants.CacheKeyDestinations, destinations, constants.CacheTTL); err != nil {
		log.Printf("Lỗi khi lưu danh sách điểm đến vào Redis: %v", err)
	}
	response.SuccessWithTotal(c, destinations, len(destinations))
}

// GetHotelRooms liệt kê phòng của một khách sạn
func (ctl HotelController) GetHotelRooms(c *gin.Context) {
	hotelID, err := validator.ParseID(c.Query("hotelId"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	var rooms []models.Room
	if err := ctl.DB.WithContext(c.Request.Context()).Where("hotel_id = ?", hotelID).Order("name ASC").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, rooms, len(rooms))
}
