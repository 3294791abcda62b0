package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"taskdesk/internal/adapter/api"
	"taskdesk/internal/adapter/api/handler"
	apimiddleware "taskdesk/internal/adapter/api/middleware"
	"taskdesk/internal/adapter/api/router"
	"taskdesk/internal/adapter/repository"
	"taskdesk/internal/infrastructure/firebase"
	"taskdesk/internal/infrastructure/notification"
	"taskdesk/internal/infrastructure/ratelimit"
	"taskdesk/internal/infrastructure/websocket"
	"taskdesk/internal/usecase"
	"taskdesk/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	firebaseClient, err := firebase.NewClient(ctx, cfg.FirebaseProject)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	defer firebaseClient.Close()

	firestoreClient := firebaseClient.Firestore

	ownerRepo := repository.NewFirestoreOwnerRepository(firestoreClient)
	employeeRepo := repository.NewFirestoreEmployeeRepository(firestoreClient)
	taskRepo := repository.NewFirestoreTaskRepository(firestoreClient)
	chatMessageRepo := repository.NewFirestoreChatMessageRepository(firestoreClient)

	emailSender := notification.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	smsSender := notification.NewSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)

	authUseCase := usecase.NewAuthUseCase(ownerRepo, employeeRepo, emailSender, smsSender, cfg.JWTSecret, cfg.JWTExpiry)
	employeeUseCase := usecase.NewEmployeeUseCase(employeeRepo, ownerRepo, emailSender, cfg.AppBaseURL)
	taskUseCase := usecase.NewTaskUseCase(taskRepo, employeeRepo)
	chatUseCase := usecase.NewChatUseCase(chatMessageRepo)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	wsManager := websocket.NewManager()
	wsSession := websocket.NewSession(wsManager, chatUseCase, limiter)

	handler.Setup(authUseCase, employeeUseCase, taskUseCase)
	handler.SetupHealthHandler(firebaseClient)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(cfg.JWTSecret)
	wsHandler := handler.NewWebSocketHandler(wsSession, cfg.JWTSecret)

	router.Setup(e, authMiddleware, limiter)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
