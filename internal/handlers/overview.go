package handlers

import (
	"net/http"

	"class_hub/internal/models"
	"class_hub/internal/response"
	"class_hub/internal/storage"

	"github.com/gin-gonic/gin"
)

// OverviewResponse — сводная «главная страница» группы.
type OverviewResponse struct {
	Units          []UnitItem       `json:"units"`
	ClassTimetable *FileItem        `json:"class_timetable,omitempty"`
	ExamTimetable  *FileItem        `json:"exam_timetable,omitempty"`
	Notices        []NoticeItem     `json:"notices"`
	Assignments    []AssignmentItem `json:"assignments"`
}

// @Summary		Сводка группы
// @Description	Предметы, расписания, объявления и задания одной выдачей. Как и список заданий, сводка удаляет просроченные задания при чтении.
// @Tags			group
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	OverviewResponse		"Сводка группы"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/overview [get]
func GetOverviewHandler(c *gin.Context) {
	groupID := c.GetUint("groupID")

	if err := SweepExpiredAssignments(storage.DB, groupID); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка очистки просроченных заданий",
			Details: err.Error(),
		})
		return
	}

	var units []models.Unit
	if err := storage.DB.Where("group_id = ?", groupID).Order("name ASC").Find(&units).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки предметов",
			Details: err.Error(),
		})
		return
	}

	var notices []models.Notice
	if err := storage.DB.Where("group_id = ?", groupID).Order("id DESC").Find(&notices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки объявлений",
			Details: err.Error(),
		})
		return
	}

	var assignments []models.Assignment
	if err := storage.DB.Where("group_id = ?", groupID).Order("due_date ASC").Find(&assignments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки заданий",
			Details: err.Error(),
		})
		return
	}

	resp := OverviewResponse{
		Units:       make([]UnitItem, 0, len(units)),
		Notices:     make([]NoticeItem, 0, len(notices)),
		Assignments: make([]AssignmentItem, 0, len(assignments)),
	}

	for _, u := range units {
		resp.Units = append(resp.Units, UnitItem{
			ID:       u.ID,
			Name:     u.Name,
			Lecturer: u.Lecturer,
			Phone:    u.Phone,
			Email:    u.Email,
		})
	}
	for _, n := range notices {
		resp.Notices = append(resp.Notices, NoticeItem{
			ID:         n.ID,
			Topic:      n.Topic,
			Remark:     n.Remark,
			PostedDate: models.FormatPostedDate(n.CreatedAt),
		})
	}
	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, AssignmentItem{
			ID:         a.ID,
			Topic:      a.Topic,
			Remark:     a.Remark,
			DueDate:    models.FormatPostedDate(a.DueDate),
			PostedDate: models.FormatPostedDate(a.CreatedAt),
		})
	}

	// Расписаний каждого типа в группе не более одного.
	var classTimetable models.File
	if err := storage.DB.Where("group_id = ? AND type = ?", groupID, models.FileTypeClassTimetable).First(&classTimetable).Error; err == nil {
		resp.ClassTimetable = &FileItem{
			ID:         classTimetable.ID,
			Filename:   classTimetable.Filename,
			Type:       classTimetable.Type,
			UploadDate: models.FormatPostedDate(classTimetable.CreatedAt),
		}
	}
	var examTimetable models.File
	if err := storage.DB.Where("group_id = ? AND type = ?", groupID, models.FileTypeExamTimetable).First(&examTimetable).Error; err == nil {
		resp.ExamTimetable = &FileItem{
			ID:         examTimetable.ID,
			Filename:   examTimetable.Filename,
			Type:       examTimetable.Type,
			UploadDate: models.FormatPostedDate(examTimetable.CreatedAt),
		}
	}

	c.JSON(http.StatusOK, resp)
}
