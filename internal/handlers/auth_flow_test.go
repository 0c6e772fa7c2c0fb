package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"class_hub/internal/models"
	"class_hub/internal/response"
	"class_hub/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTestDB(t *testing.T) {
	t.Helper()
	if os.Getenv("ENV_CHEK") == "" {
		if err := godotenv.Load("../../.env"); err != nil {
			t.Fatal("Ошибка получения .env")
		}
	}
	storage.ConnectTestingDatabase()
	storage.DB.Exec("TRUNCATE TABLE groups, users RESTART IDENTITY CASCADE;")
	require.NoError(t, storage.DB.AutoMigrate(&models.Group{}, &models.User{}))
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterGroupRetriesJoinKeyCollision(t *testing.T) {
	setupAuthTestDB(t)

	// Ключ первой попытки уже занят другой группой.
	require.NoError(t, storage.DB.Create(&models.Group{Name: "Занявшая ключ", JoinKey: "dup-key"}).Error)

	keys := []string{"dup-key", "fresh-key"}
	orig := newJoinKey
	newJoinKey = func() string {
		k := keys[0]
		if len(keys) > 1 {
			keys = keys[1:]
		}
		return k
	}
	defer func() { newJoinKey = orig }()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", RegisterGroupHandler)

	w := postJSON(r, "/auth/register",
		`{"group_name":"CS102","username":"carol","email":"carol@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Коллизия поглощена: группа создана со вторым ключом, администратор на месте.
	var resp response.RegisterGroupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fresh-key", resp.JoinKey)

	var admin models.User
	require.NoError(t, storage.DB.Where("username = ?", "carol").First(&admin).Error)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, resp.GroupID, admin.GroupID)
}

func TestJoinGroupRejectsAdmissionMatchingExistingUsername(t *testing.T) {
	setupAuthTestDB(t)

	group := models.Group{Name: "CS103", JoinKey: "join-103"}
	require.NoError(t, storage.DB.Create(&group).Error)
	admin := models.User{Name: "Дина", Username: "S777", Email: "dina@example.com", PasswordHash: "hashed", IsAdmin: true, GroupID: group.ID}
	require.NoError(t, storage.DB.Create(&admin).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/join", JoinGroupHandler)

	// Номер зачётки совпадает с занятым логином — конфликт, а не 500.
	w := postJSON(r, "/auth/join", `{"join_key":"join-103","admission_number":"S777","first_name":"Ева"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "ADMISSION_EXISTS")

	// Свободный номер проходит как прежде.
	w = postJSON(r, "/auth/join", `{"join_key":"join-103","admission_number":"S778","first_name":"Ева"}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
