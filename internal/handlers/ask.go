package handlers

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"class_hub/internal/response"

	"github.com/gin-gonic/gin"
)

var askClient = &http.Client{Timeout: 30 * time.Second}

type AskRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

// @Summary		Вопрос внешнему AI-сервису
// @Description	Пересылает текст вопроса внешнему сервису дополнения текста и возвращает ответ
// @Tags			ask
// @Accept			json
// @Produce		json
// @Param			question	body		AskRequest	true	"Текст вопроса"
// @Security		BearerAuth
// @Success		200	{object}	AskResponse				"Ответ сервиса"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		502	{object}	response.ErrorResponse	"Внешний сервис недоступен (DEPENDENCY_ERROR)"
// @Router			/api/ask [post]
func AskHandler(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	apiURL := os.Getenv("AI_API_URL")
	if apiURL == "" {
		c.JSON(http.StatusBadGateway, response.ErrorResponse{
			Code:    "DEPENDENCY_ERROR",
			Message: "AI-сервис не настроен",
		})
		return
	}

	payload, _ := json.Marshal(map[string]string{"prompt": req.Prompt})
	resp, err := askClient.Post(apiURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Println("Ошибка обращения к AI-сервису:", err)
		c.JSON(http.StatusBadGateway, response.ErrorResponse{
			Code:    "DEPENDENCY_ERROR",
			Message: "AI-сервис недоступен",
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Println("AI-сервис вернул статус:", resp.StatusCode)
		c.JSON(http.StatusBadGateway, response.ErrorResponse{
			Code:    "DEPENDENCY_ERROR",
			Message: "AI-сервис вернул ошибку",
		})
		return
	}

	var answer AskResponse
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		c.JSON(http.StatusBadGateway, response.ErrorResponse{
			Code:    "DEPENDENCY_ERROR",
			Message: "Нечитаемый ответ AI-сервиса",
		})
		return
	}

	c.JSON(http.StatusOK, answer)
}
