package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"class_hub/internal/models"
	"class_hub/internal/response"
	"class_hub/internal/storage"
	"class_hub/internal/upload"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FileSink — приёмник загружаемых файлов. Подменяется в тестах.
var FileSink upload.Sink = upload.NewDiskSink()

type FileItem struct {
	ID         uint   `json:"id"`
	Filename   string `json:"filename"`
	Type       string `json:"type"`
	UnitID     *uint  `json:"unit_id,omitempty"`
	UploadDate string `json:"upload_date"` // dd/mm/yyyy
}

// @Summary		Загрузка файла
// @Description	Загружает конспект или расписание. Для типов class_timetable и exam_timetable действует замещение: старый файл того же типа удаляется в той же транзакции.
// @Tags			files
// @Accept			multipart/form-data
// @Produce		json
// @Param			file	formData	file	true	"Файл"
// @Param			type	formData	string	true	"Тип файла: note, class_timetable, exam_timetable"
// @Param			unit_id	formData	string	false	"ID предмета (обязателен для конспектов)"
// @Security		BearerAuth
// @Success		201	{object}	FileItem				"Файл сохранён"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR, INVALID_FILE_TYPE, EXTENSION_NOT_ALLOWED)"
// @Failure		404	{object}	response.ErrorResponse	"Предмет не найден (UNIT_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (STORAGE_ERROR, DB_ERROR)"
// @Router			/api/files [post]
func UploadFileHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Файл не передан",
			Details: err.Error(),
		})
		return
	}

	fileType := c.PostForm("type")
	switch fileType {
	case models.FileTypeNote, models.FileTypeClassTimetable, models.FileTypeExamTimetable:
	default:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_FILE_TYPE",
			Message: "Неизвестный тип файла",
		})
		return
	}

	groupID := c.GetUint("groupID")

	var unitID *uint
	if fileType == models.FileTypeNote {
		unitIDInt, err := strconv.Atoi(c.PostForm("unit_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "Для конспекта необходимо указать unit_id",
			})
			return
		}
		var unit models.Unit
		if err := storage.DB.Where("id = ? AND group_id = ?", unitIDInt, groupID).First(&unit).Error; err != nil {
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "UNIT_NOT_FOUND",
				Message: "Предмет не найден",
			})
			return
		}
		unitID = &unit.ID
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "STORAGE_ERROR",
			Message: "Ошибка чтения загружаемого файла",
			Details: err.Error(),
		})
		return
	}
	defer src.Close()

	storedPath, err := FileSink.Save(fileHeader.Filename, src)
	if err != nil {
		if errors.Is(err, upload.ErrExtensionNotAllowed) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "EXTENSION_NOT_ALLOWED",
				Message: "Файлы с таким расширением не принимаются",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "STORAGE_ERROR",
			Message: "Ошибка сохранения файла",
			Details: err.Error(),
		})
		return
	}

	file := models.File{
		Filename:   fileHeader.Filename,
		Type:       fileType,
		StoredPath: storedPath,
		UnitID:     unitID,
		GroupID:    groupID,
	}

	// Расписаний каждого типа в группе не более одного: старая запись
	// удаляется перед вставкой новой, в одной транзакции.
	err = storage.DB.Transaction(func(tx *gorm.DB) error {
		if fileType != models.FileTypeNote {
			if err := tx.Unscoped().
				Where("type = ? AND group_id = ?", fileType, groupID).
				Delete(&models.File{}).Error; err != nil {
				return err
			}
		}
		return tx.Create(&file).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при сохранении файла",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, FileItem{
		ID:         file.ID,
		Filename:   file.Filename,
		Type:       file.Type,
		UnitID:     file.UnitID,
		UploadDate: models.FormatPostedDate(file.CreatedAt),
	})
}

// @Summary		Список файлов группы
// @Tags			files
// @Produce		json
// @Param			type	query	string	false	"Фильтр по типу файла"
// @Security		BearerAuth
// @Success		200	{array}		FileItem				"Файлы группы"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/files [get]
func GetFilesHandler(c *gin.Context) {
	query := storage.DB.Where("group_id = ?", c.GetUint("groupID"))
	if fileType := c.Query("type"); fileType != "" {
		query = query.Where("type = ?", fileType)
	}

	var files []models.File
	if err := query.Order("id ASC").Find(&files).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки файлов",
			Details: err.Error(),
		})
		return
	}

	items := make([]FileItem, 0, len(files))
	for _, f := range files {
		items = append(items, FileItem{
			ID:         f.ID,
			Filename:   f.Filename,
			Type:       f.Type,
			UnitID:     f.UnitID,
			UploadDate: models.FormatPostedDate(f.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, items)
}

// @Summary		Скачивание файла
// @Tags			files
// @Produce		octet-stream
// @Param			id	path	string	true	"ID файла"
// @Security		BearerAuth
// @Success		200	{file}		file					"Содержимое файла"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_FILE_ID)"
// @Failure		404	{object}	response.ErrorResponse	"Файл не найден (FILE_NOT_FOUND)"
// @Router			/api/files/{id}/download [get]
func DownloadFileHandler(c *gin.Context) {
	fileID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_FILE_ID",
			Message: "Неверный идентификатор файла",
		})
		return
	}

	var file models.File
	if err := storage.DB.Where("id = ? AND group_id = ?", fileID, c.GetUint("groupID")).First(&file).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "FILE_NOT_FOUND",
			Message: "Файл не найден",
		})
		return
	}

	c.FileAttachment(file.StoredPath, file.Filename)
}
