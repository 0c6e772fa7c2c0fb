package handlers

import (
	"net/http"
	"strconv"

	"class_hub/internal/models"
	"class_hub/internal/response"
	"class_hub/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateUnitRequest struct {
	Name     string `json:"name" binding:"required"`
	Lecturer string `json:"lecturer"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type UnitItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Lecturer string `json:"lecturer,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// @Summary		Добавление предмета
// @Tags			units
// @Accept			json
// @Produce		json
// @Param			unit	body		CreateUnitRequest	true	"Данные предмета"
// @Security		BearerAuth
// @Success		201	{object}	UnitItem				"Предмет создан"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/units [post]
func CreateUnitHandler(c *gin.Context) {
	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	unit := models.Unit{
		Name:     req.Name,
		Lecturer: req.Lecturer,
		Phone:    req.Phone,
		Email:    req.Email,
		GroupID:  c.GetUint("groupID"),
	}
	if err := storage.DB.Create(&unit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании предмета",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, UnitItem{
		ID:       unit.ID,
		Name:     unit.Name,
		Lecturer: unit.Lecturer,
		Phone:    unit.Phone,
		Email:    unit.Email,
	})
}

// @Summary		Список предметов группы
// @Tags			units
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		UnitItem				"Предметы группы"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/units [get]
func GetUnitsHandler(c *gin.Context) {
	var units []models.Unit
	if err := storage.DB.Where("group_id = ?", c.GetUint("groupID")).Order("name ASC").Find(&units).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки предметов",
			Details: err.Error(),
		})
		return
	}

	items := make([]UnitItem, 0, len(units))
	for _, u := range units {
		items = append(items, UnitItem{
			ID:       u.ID,
			Name:     u.Name,
			Lecturer: u.Lecturer,
			Phone:    u.Phone,
			Email:    u.Email,
		})
	}

	c.JSON(http.StatusOK, items)
}

// @Summary		Удаление предмета
// @Description	Удаляет предмет вместе с его конспектами (каскад в одной транзакции)
// @Tags			units
// @Produce		json
// @Param			id	path	string	true	"ID предмета"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Предмет удалён"
// @Failure		400	{object}	response.ErrorResponse		"Неверный идентификатор (INVALID_UNIT_ID)"
// @Failure		404	{object}	response.ErrorResponse		"Предмет не найден (UNIT_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse		"Ошибка сервера (DB_ERROR)"
// @Router			/api/units/{id} [delete]
func DeleteUnitHandler(c *gin.Context) {
	unitID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_UNIT_ID",
			Message: "Неверный идентификатор предмета",
		})
		return
	}

	groupID := c.GetUint("groupID")

	// Область видимости по group_id проверяется в самом запросе: чужой
	// предмет для администратора другой группы выглядит как отсутствующий.
	var unit models.Unit
	if err := storage.DB.Where("id = ? AND group_id = ?", unitID, groupID).First(&unit).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "UNIT_NOT_FOUND",
			Message: "Предмет не найден",
		})
		return
	}

	err = storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("unit_id = ? AND group_id = ?", unit.ID, groupID).Delete(&models.File{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Unit{}, unit.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при удалении предмета",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{
		Message: "Предмет успешно удалён",
	})
}
