package main

import (
	"fmt"
	"log"
	"os"

	_ "class_hub/docs"
	"class_hub/internal/auth"
	"class_hub/internal/handlers"
	"class_hub/internal/models"
	"class_hub/internal/storage"
	"class_hub/internal/tasks"
	"class_hub/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title						Групповой учебный хаб
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	storage.ConnectDatabase()

	if err := storage.DB.AutoMigrate(
		&models.Group{},
		&models.User{},
		&models.Unit{},
		&models.File{},
		&models.Notice{},
		&models.Message{},
		&models.Assignment{},
	); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	storage.InitRedis()

	tasks.InitScheduler()

	go ws.HubInstance.Run()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", handlers.RegisterGroupHandler)
		authGroup.POST("/join", handlers.JoinGroupHandler)
		authGroup.POST("/login", handlers.LoginHandler)
		authGroup.POST("/refresh", handlers.RefreshTokenHandler)
	}

	api := r.Group("/api", auth.AuthMiddleware())
	{
		api.GET("/overview", handlers.GetOverviewHandler)

		api.GET("/group", handlers.GetGroupHandler)
		api.DELETE("/group", auth.AdminMiddleware(), handlers.CloseGroupHandler)

		api.POST("/units", handlers.CreateUnitHandler)
		api.GET("/units", handlers.GetUnitsHandler)
		api.DELETE("/units/:id", auth.AdminMiddleware(), handlers.DeleteUnitHandler)

		api.POST("/files", handlers.UploadFileHandler)
		api.GET("/files", handlers.GetFilesHandler)
		api.GET("/files/:id/download", handlers.DownloadFileHandler)

		api.POST("/notices", handlers.CreateNoticeHandler)
		api.GET("/notices", handlers.GetNoticesHandler)
		api.GET("/notices/:id/messages", handlers.GetNoticeMessagesHandler)
		api.POST("/notices/:id/messages", handlers.PostNoticeMessageHandler)
		api.GET("/notices/:id/ws", ws.ChatWebSocketHandler)

		api.POST("/assignments", auth.AdminMiddleware(), handlers.CreateAssignmentHandler)
		api.GET("/assignments", handlers.GetAssignmentsHandler)

		api.GET("/news", handlers.GetNewsHandler)
		api.POST("/ask", handlers.AskHandler)
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
