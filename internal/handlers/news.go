package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"

	"class_hub/internal/storage"

	"github.com/gin-gonic/gin"
)

var newsCtx = context.Background()

// Ключ кэша новостей в Redis. Значение живёт без TTL: при падении
// очередного опроса отдаётся предыдущее (устаревшее, но доступное).
const newsCacheKey = "news_latest"

// Структуры для декодирования ответа новостного API
type NewsItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

type NewsResponse struct {
	Items []NewsItem `json:"items"`
}

// @Summary		Кэшированные новости
// @Description	Отдаёт новости только из кэша; внешний API на пути запроса не вызывается
// @Tags			news
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	NewsResponse	"Последний успешно полученный список новостей (возможно пустой)"
// @Router			/api/news [get]
func GetNewsHandler(c *gin.Context) {
	cached, err := storage.RedisClient.Get(newsCtx, newsCacheKey).Result()
	if err == nil && cached != "" {
		var news NewsResponse
		if err := json.Unmarshal([]byte(cached), &news); err == nil {
			c.JSON(http.StatusOK, news)
			return
		}
	}

	// Кэш пуст или нечитаем — отдаём пустой список, не ошибку.
	c.JSON(http.StatusOK, NewsResponse{Items: []NewsItem{}})
}

// RefreshNewsCache опрашивает внешний новостной API и обновляет кэш.
// Любая ошибка опроса оставляет в кэше предыдущее значение.
func RefreshNewsCache() {
	apiURL := os.Getenv("NEWS_API_URL")
	if apiURL == "" {
		return
	}

	resp, err := http.Get(apiURL)
	if err != nil {
		log.Println("Не удалось получить данные новостей:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Println("Новостной API вернул статус:", resp.StatusCode)
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("Ошибка чтения ответа новостного API:", err)
		return
	}

	// Проверяем, что ответ декодируется, прежде чем класть его в кэш.
	var news NewsResponse
	if err := json.Unmarshal(body, &news); err != nil {
		log.Println("Ошибка декодирования данных новостей:", err)
		return
	}

	if err := storage.RedisClient.Set(newsCtx, newsCacheKey, string(body), 0).Err(); err != nil {
		log.Println("Ошибка записи новостей в кэш:", err)
	}
}
