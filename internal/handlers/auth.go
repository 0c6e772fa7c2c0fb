package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"class_hub/internal/auth"
	"class_hub/internal/models"
	"class_hub/internal/response"
	"class_hub/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultJoinPassword — стартовый пароль участника, вступившего по ключу.
// Заведомо слабый и общеизвестный: упрощает онбординг, клиент обязан
// потребовать смену пароля при первом входе.
const DefaultJoinPassword = "student123"

type RegisterGroupRequest struct {
	GroupName string `json:"group_name" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type JoinGroupRequest struct {
	JoinKey         string `json:"join_key" binding:"required"`
	AdmissionNumber string `json:"admission_number" binding:"required"`
	FirstName       string `json:"first_name" binding:"required"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"` // Логин или email
	Password string `json:"password" binding:"required"`
}

// @Summary		Регистрация группы
// @Description	Создаёт группу с ключом вступления и её первого администратора
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			group	body		RegisterGroupRequest			true	"Данные группы и администратора"
// @Success		201		{object}	response.RegisterGroupResponse	"Группа создана, ключ вступления в ответе"
// @Failure		400		{object}	response.ErrorResponse			"Ошибка валидации (VALIDATION_ERROR) или занятый логин/email (USERNAME_EXISTS, EMAIL_EXISTS)"
// @Failure		500		{object}	response.ErrorResponse			"Ошибка сервера (PASSWORD_HASH_ERROR, DB_ERROR)"
// @Router			/auth/register [post]
func RegisterGroupHandler(c *gin.Context) {
	var req RegisterGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	var existing models.User
	if err := storage.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "USERNAME_EXISTS",
			Message: "Пользователь с таким логином уже существует",
		})
		return
	}
	if err := storage.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "EMAIL_EXISTS",
			Message: "Пользователь с таким email уже существует",
		})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "PASSWORD_HASH_ERROR",
			Message: "Ошибка при хешировании пароля",
		})
		return
	}

	var group models.Group

	// Группа и первый администратор создаются атомарно. Коллизия ключа
	// астрономически маловероятна, но Postgres после первой же ошибки
	// прерывает всю транзакцию, поэтому повторная попытка начинается
	// заново: новая транзакция и новый ключ.
	for attempt := 0; attempt < 2; attempt++ {
		group = models.Group{
			Name:    req.GroupName,
			JoinKey: newJoinKey(),
		}
		err = storage.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&group).Error; err != nil {
				return err
			}
			admin := models.User{
				Name:         req.Username,
				Username:     req.Username,
				Email:        req.Email,
				PasswordHash: string(hashedPassword),
				IsAdmin:      true,
				GroupID:      group.ID,
			}
			return tx.Create(&admin).Error
		})
		if err == nil || !isJoinKeyCollision(err) {
			break
		}
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании группы",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response.RegisterGroupResponse{
		Message: "Группа успешно зарегистрирована",
		GroupID: group.ID,
		JoinKey: group.JoinKey,
	})
}

// @Summary		Вступление в группу по ключу
// @Description	Создаёт участника группы: логин и email выводятся из номера зачётки, пароль — документированный стартовый
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			join	body		JoinGroupRequest			true	"Ключ вступления и данные участника"
// @Success		201		{object}	response.SuccessResponse	"Участник добавлен в группу"
// @Failure		400		{object}	response.ErrorResponse		"Ошибка валидации (VALIDATION_ERROR) или занятый номер зачётки (ADMISSION_EXISTS)"
// @Failure		404		{object}	response.ErrorResponse		"Неизвестный ключ вступления (GROUP_NOT_FOUND)"
// @Failure		500		{object}	response.ErrorResponse		"Ошибка сервера (PASSWORD_HASH_ERROR, DB_ERROR)"
// @Router			/auth/join [post]
func JoinGroupHandler(c *gin.Context) {
	var req JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	var group models.Group
	if err := storage.DB.Where("join_key = ?", req.JoinKey).First(&group).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "GROUP_NOT_FOUND",
			Message: "Группа с таким ключом не найдена",
		})
		return
	}

	// Номер зачётки уникален глобально, а не в пределах группы. Он же станет
	// логином нового участника, поэтому занятый логин блокирует вступление
	// так же, как занятый номер зачётки.
	var existing models.User
	if err := storage.DB.
		Where("admission_number = ? OR username = ?", req.AdmissionNumber, req.AdmissionNumber).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "ADMISSION_EXISTS",
			Message: "Пользователь с таким номером зачётки уже зарегистрирован",
		})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(DefaultJoinPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "PASSWORD_HASH_ERROR",
			Message: "Ошибка при хешировании пароля",
		})
		return
	}

	admission := req.AdmissionNumber
	user := models.User{
		Name:            req.FirstName,
		Username:        admission,
		AdmissionNumber: &admission,
		Email:           fmt.Sprintf("%s@students.classhub.local", admission),
		PasswordHash:    string(hashedPassword),
		IsAdmin:         false,
		GroupID:         group.ID,
	}

	if err := storage.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании пользователя",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{
		Message: "Вступление в группу прошло успешно",
	})
}

// @Summary		Авторизация пользователя
// @Description	Авторизация по логину или email и получение токенов
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			user	body		LoginRequest			true	"Данные для авторизации"
// @Success		200		{object}	response.TokenResponse	"Успешная авторизация"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации данных (VALIDATION_ERROR)"
// @Failure		401		{object}	response.ErrorResponse	"Неверные учетные данные (INVALID_CREDENTIALS)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (TOKEN_GENERATION_ERROR)"
// @Router			/auth/login [post]
func LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	// Ответ одинаковый для неизвестного логина и неверного пароля:
	// не раскрываем, какая половина пары не подошла.
	var user models.User
	if err := storage.DB.Where("username = ? OR email = ?", req.Login, req.Login).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_CREDENTIALS",
			Message: "Неверный логин или пароль",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_CREDENTIALS",
			Message: "Неверный логин или пароль",
		})
		return
	}

	accessToken, err := auth.GenerateToken(user.ID, user.GroupID, user.IsAdmin, time.Minute*15, auth.AccessSecret())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "TOKEN_GENERATION_ERROR",
			Message: "Ошибка при генерации access токена",
		})
		return
	}

	refreshToken, err := auth.GenerateToken(user.ID, user.GroupID, user.IsAdmin, time.Hour*24*7, auth.RefreshSecret())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "TOKEN_GENERATION_ERROR",
			Message: "Ошибка при генерации refresh токена",
		})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// @Summary		Обновление access токена
// @Description	Обновление access токена с помощью refresh токена
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			refresh_token	body		RefreshTokenRequest		true	"Refresh токен"
// @Success		200				{object}	response.TokenResponse	"Успешное обновление access токена"
// @Failure		400				{object}	response.ErrorResponse	"Ошибка валидации данных (VALIDATION_ERROR)"
// @Failure		401				{object}	response.ErrorResponse	"Неверный refresh токен (INVALID_REFRESH_TOKEN) или пользователь не найден (USER_NOT_FOUND)"
// @Failure		500				{object}	response.ErrorResponse	"Ошибка сервера (TOKEN_GENERATION_ERROR)"
// @Router			/auth/refresh [post]
func RefreshTokenHandler(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	token, err := jwt.Parse(req.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return auth.RefreshSecret(), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_REFRESH_TOKEN",
			Message: "Неверный или просроченный refresh токен",
		})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_REFRESH_TOKEN",
			Message: "Неверный или просроченный refresh токен",
		})
		return
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_REFRESH_TOKEN",
			Message: "Неверный или просроченный refresh токен",
		})
		return
	}

	// Группу и флаг администратора перечитываем из базы, а не доверяем
	// старому токену: пользователь мог потерять группу или права.
	var user models.User
	if err := storage.DB.First(&user, uint(userIDFloat)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{
				Code:    "USER_NOT_FOUND",
				Message: "Пользователь не найден",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при поиске пользователя",
		})
		return
	}

	newAccessToken, err := auth.GenerateToken(user.ID, user.GroupID, user.IsAdmin, time.Minute*15, auth.AccessSecret())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "TOKEN_GENERATION_ERROR",
			Message: "Ошибка при генерации access токена",
		})
		return
	}

	newRefreshToken, err := auth.GenerateToken(user.ID, user.GroupID, user.IsAdmin, time.Hour*24*7, auth.RefreshSecret())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "TOKEN_GENERATION_ERROR",
			Message: "Ошибка при генерации нового refresh токена",
		})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	})
}

// newJoinKey генерирует непрозрачный ключ вступления.
// Переменная, а не функция: тесты подставляют предсказуемые ключи.
var newJoinKey = uuid.NewString

// isJoinKeyCollision распознаёт нарушение уникального индекса ключа
// вступления (код Postgres 23505, unique_violation).
func isJoinKeyCollision(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" &&
		strings.Contains(pgErr.ConstraintName, "join_key")
}
