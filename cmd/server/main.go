package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/parasnikum/DevSync/internal/handlers"
	"github.com/parasnikum/DevSync/internal/middleware"
	"github.com/parasnikum/DevSync/internal/repositories"
	"github.com/parasnikum/DevSync/internal/services"
	"github.com/parasnikum/DevSync/internal/workers"
	"github.com/parasnikum/DevSync/pkg/config"
	"github.com/parasnikum/DevSync/pkg/database"
	"github.com/parasnikum/DevSync/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize database
	if err := database.Init(); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	userRepo := repositories.NewUserRepository(database.DB)
	goalRepo := repositories.NewGoalRepository(database.DB)
	noteRepo := repositories.NewNoteRepository(database.DB)
	pomodoroRepo := repositories.NewPomodoroRepository(database.DB)
	activityRepo := repositories.NewActivityRepository(database.DB)
	contactRepo := repositories.NewContactRepository(database.DB)
	leetcodeRepo := repositories.NewLeetCodeRepository(database.DB)
	jobRepo := repositories.NewJobRepository(database.DB)

	userService := services.NewUserService(userRepo)
	emailService := services.NewEmailService()
	goalService := services.NewGoalService(goalRepo)
	noteService := services.NewNoteService(noteRepo)
	pomodoroService := services.NewPomodoroService(pomodoroRepo, activityRepo)
	activityService := services.NewActivityService(activityRepo)
	contactService := services.NewContactService(contactRepo, emailService)
	leetcodeService := services.NewLeetCodeService(leetcodeRepo)
	schedulerService := services.NewSchedulerService(jobRepo, leetcodeService)

	// Initialize worker manager
	workerManager := workers.NewWorkerManager(jobRepo, leetcodeService)

	// Initialize router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.Server.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.SessionMiddleware())

	setupRoutes(router, userService, emailService, goalService, noteService, pomodoroService, activityService, contactService, leetcodeService)

	// Start workers and the hourly sync scheduler
	if err := workerManager.StartAll(); err != nil {
		logger.Fatalf("Failed to start workers: %v", err)
	}
	defer workerManager.StopAll()
	schedulerService.StartScheduler()

	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown error: %v", err)
	}
	logger.Info("Server stopped")
}

func setupRoutes(
	router *gin.Engine,
	userService *services.UserService,
	emailService *services.EmailService,
	goalService *services.GoalService,
	noteService *services.NoteService,
	pomodoroService *services.PomodoroService,
	activityService *services.ActivityService,
	contactService *services.ContactService,
	leetcodeService *services.LeetCodeService,
) {
	// Initialize handlers
	homeHandler := handlers.NewHomeHandler()
	authHandler := handlers.NewAuthHandler(userService, emailService)
	profileHandler := handlers.NewProfileHandler(userService)
	goalHandler := handlers.NewGoalHandler(goalService)
	noteHandler := handlers.NewNoteHandler(noteService)
	pomodoroHandler := handlers.NewPomodoroHandler(pomodoroService)
	activityHandler := handlers.NewActivityHandler(activityService)
	contactHandler := handlers.NewContactHandler(contactService)
	leetcodeHandler := handlers.NewLeetCodeHandler(leetcodeService)

	router.NoRoute(handlers.NotFound)

	router.GET("/", homeHandler.Index)
	router.GET("/health", homeHandler.Health)

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/verify-email", authHandler.VerifyEmail)
		auth.POST("/resend-verification", authHandler.ResendVerification)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/github", authHandler.GitHubLogin)
		auth.GET("/github/callback", authHandler.GitHubCallback)
	}

	// Public routes
	router.POST("/api/contact", contactHandler.Submit)
	router.GET("/api/leetcode/:username", leetcodeHandler.GetStats)

	// Protected routes
	api := router.Group("/api")
	api.Use(middleware.AuthRequired())
	{
		api.GET("/profile", profileHandler.GetProfile)
		api.PUT("/profile", profileHandler.UpdateProfile)
		api.POST("/profile/avatar", profileHandler.ResetAvatar)
		api.POST("/profile/projects", profileHandler.AddProject)
		api.DELETE("/profile/projects/:id", profileHandler.DeleteProject)

		api.GET("/goals", goalHandler.ListGoals)
		api.POST("/goals", goalHandler.CreateGoal)
		api.PUT("/goals/:id", goalHandler.UpdateGoal)
		api.DELETE("/goals/:id", goalHandler.DeleteGoal)

		api.GET("/notes", noteHandler.ListNotes)
		api.POST("/notes", noteHandler.CreateNote)
		api.PUT("/notes/:id", noteHandler.UpdateNote)
		api.DELETE("/notes/:id", noteHandler.DeleteNote)

		api.POST("/pomodoro/sessions", pomodoroHandler.RecordSession)
		api.GET("/pomodoro/summary", pomodoroHandler.GetSummary)

		api.POST("/activity/track", activityHandler.Track)
		api.GET("/activity/heatmap", activityHandler.GetHeatmap)
	}
}
