package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"class_hub/internal/models"
	"class_hub/internal/response"
	"class_hub/internal/storage"
	"class_hub/internal/ws"

	"github.com/gin-gonic/gin"
)

type CreateNoticeRequest struct {
	Topic  string `json:"topic" binding:"required"`
	Remark string `json:"remark" binding:"required"`
}

type NoticeItem struct {
	ID         uint   `json:"id"`
	Topic      string `json:"topic"`
	Remark     string `json:"remark"`
	PostedDate string `json:"posted_date"` // dd/mm/yyyy
}

type MessageItem struct {
	ID         uint   `json:"id"`
	Content    string `json:"content"`
	PostedDate string `json:"posted_date"` // dd/mm/yyyy
}

// @Summary		Публикация объявления
// @Description	Создаёт объявление; чат-комната с идентификатором объявления появляется вместе с ним
// @Tags			notices
// @Accept			json
// @Produce		json
// @Param			notice	body		CreateNoticeRequest	true	"Тема и текст объявления"
// @Security		BearerAuth
// @Success		201	{object}	NoticeItem				"Объявление создано"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/notices [post]
func CreateNoticeHandler(c *gin.Context) {
	var req CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	notice := models.Notice{
		Topic:    req.Topic,
		Remark:   req.Remark,
		GroupID:  c.GetUint("groupID"),
		AuthorID: c.GetUint("userID"),
	}
	if err := storage.DB.Create(&notice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании объявления",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, NoticeItem{
		ID:         notice.ID,
		Topic:      notice.Topic,
		Remark:     notice.Remark,
		PostedDate: models.FormatPostedDate(notice.CreatedAt),
	})
}

// @Summary		Список объявлений группы
// @Tags			notices
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		NoticeItem				"Объявления, новые первыми"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/notices [get]
func GetNoticesHandler(c *gin.Context) {
	var notices []models.Notice
	if err := storage.DB.
		Where("group_id = ?", c.GetUint("groupID")).
		Order("id DESC").
		Find(&notices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки объявлений",
			Details: err.Error(),
		})
		return
	}

	items := make([]NoticeItem, 0, len(notices))
	for _, n := range notices {
		items = append(items, NoticeItem{
			ID:         n.ID,
			Topic:      n.Topic,
			Remark:     n.Remark,
			PostedDate: models.FormatPostedDate(n.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, items)
}

// @Summary		История сообщений объявления
// @Description	Сообщения в порядке записи (по монотонному первичному ключу)
// @Tags			notices
// @Produce		json
// @Param			id	path	string	true	"ID объявления"
// @Security		BearerAuth
// @Success		200	{array}		MessageItem				"История чата"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_NOTICE_ID)"
// @Failure		404	{object}	response.ErrorResponse	"Объявление не найдено (NOTICE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/notices/{id}/messages [get]
func GetNoticeMessagesHandler(c *gin.Context) {
	notice, ok := findGroupNotice(c)
	if !ok {
		return
	}

	var messages []models.Message
	if err := storage.DB.
		Where("notice_id = ?", notice.ID).
		Order("id ASC").
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки сообщений",
			Details: err.Error(),
		})
		return
	}

	items := make([]MessageItem, 0, len(messages))
	for _, m := range messages {
		items = append(items, MessageItem{
			ID:         m.ID,
			Content:    m.Content,
			PostedDate: models.FormatPostedDate(m.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, items)
}

type PostMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// @Summary		Отправка сообщения в чат объявления
// @Description	HTTP-альтернатива действию message по WebSocket: сообщение записывается и рассылается всем подписчикам комнаты, включая отправителя
// @Tags			notices
// @Accept			json
// @Produce		json
// @Param			id		path	string				true	"ID объявления"
// @Param			message	body	PostMessageRequest	true	"Текст сообщения"
// @Security		BearerAuth
// @Success		201	{object}	MessageItem				"Сообщение записано и разослано"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR, INVALID_NOTICE_ID, EMPTY_MESSAGE)"
// @Failure		404	{object}	response.ErrorResponse	"Объявление не найдено (NOTICE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/notices/{id}/messages [post]
func PostNoticeMessageHandler(c *gin.Context) {
	notice, ok := findGroupNotice(c)
	if !ok {
		return
	}

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	message, err := ws.Dispatch(storage.DB, ws.HubInstance, strconv.Itoa(int(notice.ID)), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, ws.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "EMPTY_MESSAGE",
				Message: "Сообщение пусто после очистки от разметки",
			})
		case errors.Is(err, ws.ErrNoticeNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "NOTICE_NOT_FOUND",
				Message: "Объявление не найдено",
			})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    "DB_ERROR",
				Message: "Ошибка при записи сообщения",
				Details: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, MessageItem{
		ID:         message.ID,
		Content:    message.Content,
		PostedDate: models.FormatPostedDate(message.CreatedAt),
	})
}

// findGroupNotice загружает объявление из параметра id в пределах группы
// вызывающего; чужие объявления выглядят как отсутствующие.
func findGroupNotice(c *gin.Context) (models.Notice, bool) {
	noticeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_NOTICE_ID",
			Message: "Неверный идентификатор объявления",
		})
		return models.Notice{}, false
	}

	var notice models.Notice
	if err := storage.DB.Where("id = ? AND group_id = ?", noticeID, c.GetUint("groupID")).First(&notice).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "NOTICE_NOT_FOUND",
			Message: "Объявление не найдено",
		})
		return models.Notice{}, false
	}
	return notice, true
}
