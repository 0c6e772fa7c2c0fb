package handlers

import (
	"net/http"

	"class_hub/internal/models"
	"class_hub/internal/response"
	"class_hub/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateAssignmentRequest struct {
	Topic   string `json:"topic" binding:"required"`
	Remark  string `json:"remark" binding:"required"`
	DueDate string `json:"due_date" binding:"required"` // yyyy-mm-dd
}

type AssignmentItem struct {
	ID         uint   `json:"id"`
	Topic      string `json:"topic"`
	Remark     string `json:"remark"`
	DueDate    string `json:"due_date"`    // dd/mm/yyyy
	PostedDate string `json:"posted_date"` // dd/mm/yyyy
}

// @Summary		Публикация задания
// @Description	Создаёт задание с дедлайном. Доступно только администратору группы.
// @Tags			assignments
// @Accept			json
// @Produce		json
// @Param			assignment	body		CreateAssignmentRequest	true	"Задание (due_date в формате yyyy-mm-dd)"
// @Security		BearerAuth
// @Success		201	{object}	AssignmentItem			"Задание создано"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR, INVALID_DUE_DATE)"
// @Failure		403	{object}	response.ErrorResponse	"Недостаточно прав (ADMIN_ONLY)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/assignments [post]
func CreateAssignmentHandler(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	dueDate, err := models.ParseDueDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_DUE_DATE",
			Message: "Дата сдачи должна быть в формате yyyy-mm-dd",
		})
		return
	}

	assignment := models.Assignment{
		Topic:    req.Topic,
		Remark:   req.Remark,
		DueDate:  dueDate,
		GroupID:  c.GetUint("groupID"),
		AuthorID: c.GetUint("userID"),
	}
	if err := storage.DB.Create(&assignment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании задания",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, AssignmentItem{
		ID:         assignment.ID,
		Topic:      assignment.Topic,
		Remark:     assignment.Remark,
		DueDate:    models.FormatPostedDate(assignment.DueDate),
		PostedDate: models.FormatPostedDate(assignment.CreatedAt),
	})
}

// @Summary		Список заданий группы
// @Description	Чтение с побочным эффектом: просроченные задания (дедлайн строго раньше сегодняшнего дня UTC) удаляются перед выдачей списка.
// @Tags			assignments
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		AssignmentItem			"Актуальные задания по возрастанию дедлайна"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/assignments [get]
func GetAssignmentsHandler(c *gin.Context) {
	groupID := c.GetUint("groupID")

	if err := SweepExpiredAssignments(storage.DB, groupID); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка очистки просроченных заданий",
			Details: err.Error(),
		})
		return
	}

	var assignments []models.Assignment
	if err := storage.DB.
		Where("group_id = ?", groupID).
		Order("due_date ASC").
		Find(&assignments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки заданий",
			Details: err.Error(),
		})
		return
	}

	items := make([]AssignmentItem, 0, len(assignments))
	for _, a := range assignments {
		items = append(items, AssignmentItem{
			ID:         a.ID,
			Topic:      a.Topic,
			Remark:     a.Remark,
			DueDate:    models.FormatPostedDate(a.DueDate),
			PostedDate: models.FormatPostedDate(a.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, items)
}

// SweepExpiredAssignments удаляет задания группы с дедлайном строго раньше
// сегодняшнего календарного дня UTC. Задание со сдачей сегодня остаётся.
func SweepExpiredAssignments(db *gorm.DB, groupID uint) error {
	return db.Unscoped().
		Where("group_id = ? AND due_date < ?", groupID, models.Today()).
		Delete(&models.Assignment{}).Error
}
