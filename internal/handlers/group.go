package handlers

import (
	"errors"
	"net/http"
	"os"

	"class_hub/internal/models"
	"class_hub/internal/response"
	"class_hub/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CloseGroupRequest struct {
	// Подтверждающий ключ. Проверяется, только если задан GROUP_DELETE_SECRET —
	// унаследованный аварийный механизм поверх проверки прав администратора.
	ConfirmKey string `json:"confirm_key"`
}

type GroupInfoResponse struct {
	GroupID uint   `json:"group_id"`
	Name    string `json:"name"`
	JoinKey string `json:"join_key,omitempty"` // Ключ видит только администратор
	Members int64  `json:"members"`
}

// @Summary		Информация о своей группе
// @Tags			group
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	GroupInfoResponse		"Данные группы"
// @Failure		404	{object}	response.ErrorResponse	"Группа не найдена (GROUP_NOT_FOUND)"
// @Router			/api/group [get]
func GetGroupHandler(c *gin.Context) {
	groupID := c.GetUint("groupID")

	var group models.Group
	if err := storage.DB.First(&group, groupID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "GROUP_NOT_FOUND",
			Message: "Группа не найдена",
		})
		return
	}

	var members int64
	storage.DB.Model(&models.User{}).Where("group_id = ?", groupID).Count(&members)

	resp := GroupInfoResponse{
		GroupID: group.ID,
		Name:    group.Name,
		Members: members,
	}
	if c.GetBool("isAdmin") {
		resp.JoinKey = group.JoinKey
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary		Закрытие группы
// @Description	Каскадно удаляет группу со всеми пользователями, предметами, файлами, объявлениями, сообщениями и заданиями. Повторное закрытие — no-op.
// @Tags			group
// @Accept			json
// @Produce		json
// @Param			confirm	body		CloseGroupRequest	true	"Подтверждающий ключ (если настроен)"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Группа закрыта"
// @Failure		403	{object}	response.ErrorResponse		"Неверный подтверждающий ключ (INVALID_CONFIRM_KEY)"
// @Failure		500	{object}	response.ErrorResponse		"Ошибка сервера (DB_ERROR)"
// @Router			/api/group [delete]
func CloseGroupHandler(c *gin.Context) {
	var req CloseGroupRequest
	// Тело может отсутствовать, если аварийный ключ не настроен.
	_ = c.ShouldBindJSON(&req)

	// Деструктивная операция: несовпадение подтверждающего ключа запрещает
	// её независимо от роли.
	if secret := os.Getenv("GROUP_DELETE_SECRET"); secret != "" && req.ConfirmKey != secret {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "INVALID_CONFIRM_KEY",
			Message: "Неверный подтверждающий ключ",
		})
		return
	}

	groupID := c.GetUint("groupID")

	var group models.Group
	if err := storage.DB.First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Группа уже закрыта — идемпотентный no-op.
			c.JSON(http.StatusOK, response.SuccessResponse{
				Message: "Группа уже закрыта",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при поиске группы",
			Details: err.Error(),
		})
		return
	}

	if err := CloseGroupCascade(storage.DB, groupID); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при закрытии группы",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{
		Message: "Группа успешно закрыта",
	})
}

// CloseGroupCascade удаляет группу и все принадлежащие ей записи в одной
// транзакции: либо исчезает всё, либо ничего. Удаление жёсткое (Unscoped),
// чтобы освободить уникальные логины и номера зачёток.
func CloseGroupCascade(db *gorm.DB, groupID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var noticeIDs []uint
		if err := tx.Model(&models.Notice{}).Where("group_id = ?", groupID).Pluck("id", &noticeIDs).Error; err != nil {
			return err
		}
		if len(noticeIDs) > 0 {
			if err := tx.Unscoped().Where("notice_id IN ?", noticeIDs).Delete(&models.Message{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("group_id = ?", groupID).Delete(&models.Notice{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("group_id = ?", groupID).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("group_id = ?", groupID).Delete(&models.File{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("group_id = ?", groupID).Delete(&models.Unit{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("group_id = ?", groupID).Delete(&models.User{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Group{}, groupID).Error
	})
}
