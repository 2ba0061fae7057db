package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/danielhinsching/agora-signage/docs"
	"github.com/danielhinsching/agora-signage/internal/auth"
	"github.com/danielhinsching/agora-signage/internal/handlers"
	"github.com/danielhinsching/agora-signage/internal/models"
	"github.com/danielhinsching/agora-signage/internal/storage"
	"github.com/danielhinsching/agora-signage/internal/tasks"
	"github.com/danielhinsching/agora-signage/internal/venue"
	"github.com/danielhinsching/agora-signage/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title						Ágora LineUp — backend цифровой вывески
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

	venue.Init()

	storage.ConnectDatabase()

	if err := storage.DB.AutoMigrate(&models.User{}, &models.Screen{}, &models.Event{}); err != nil {
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
		authGroup.POST("/login", handlers.Login)
		authGroup.POST("/register", handlers.Register)
		authGroup.POST("/refresh", handlers.RefreshToken)
	}

	// Админские маршруты — под JWT.
	admin := r.Group("/api", auth.AuthMiddleware())
	{
		admin.POST("/events", handlers.CreateEventHandler)
		admin.GET("/events", handlers.GetEventsHandler)
		admin.GET("/events/:id", handlers.GetEventHandler)
		admin.PUT("/events/:id", handlers.UpdateEventHandler)
		admin.DELETE("/events/:id", handlers.DeleteEventHandler)

		admin.POST("/screens", handlers.CreateScreenHandler)
		admin.GET("/screens", handlers.GetScreensHandler)
		admin.PUT("/screens/:id", handlers.UpdateScreenHandler)
		admin.DELETE("/screens/:id", handlers.DeleteScreenHandler)

		admin.GET("/calendar/month", handlers.GetMonthGridHandler)
		admin.GET("/analytics", handlers.GetAnalyticsHandler)
	}

	// Публичные маршруты плеера вывески.
	tv := r.Group("/api/tv")
	{
		tv.GET("/:slug", handlers.GetScreenBySlugHandler)
		tv.GET("/:slug/agenda", handlers.GetScreenAgendaHandler)
		tv.GET("/:slug/agenda.ics", handlers.GetScreenICSHandler)
		tv.GET("/:slug/ws", ws.ScreenWebSocketHandler)
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
