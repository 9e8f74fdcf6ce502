package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"huhu/internal/adapter/api"
	"huhu/internal/adapter/api/handler"
	apimiddleware "huhu/internal/adapter/api/middleware"
	"huhu/internal/adapter/api/router"
	"huhu/internal/adapter/repository"
	"huhu/internal/infrastructure/firebase"
	"huhu/internal/infrastructure/ratelimit"
	"huhu/internal/infrastructure/storage"
	"huhu/internal/infrastructure/websocket"
	"huhu/internal/usecase"
	"huhu/pkg/config"
	"huhu/pkg/logger"
)

const defaultServiceAccountPath = "./serviceAccountKey.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Configure(logger.Options{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
		JSON:  cfg.LogJSON,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opt, err := credentials(cfg)
	if err != nil {
		log.Fatalf("Failed to load credentials: %v", err)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{
		ProjectID:     cfg.FirebaseProject,
		StorageBucket: cfg.StorageBucket,
	}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	vendorRepo := repository.NewFirestoreVendorRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	rateLimiter := ratelimit.NewRateLimiter(ratelimit.DefaultPolicies(int(cfg.ChatSendPerMinute), int(cfg.ChatSendBurst)))
	rateLimiter.StartCleanupRoutine(ctx, 10*time.Minute)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	listingUseCase := usecase.NewListingUseCase(listingRepo, cfg.NewListingsWindow)
	postUseCase := usecase.NewPostUseCase(listingRepo, storageClient)
	profileUseCase := usecase.NewProfileUseCase(vendorRepo, listingRepo)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, listingRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, vendorRepo, rateLimiter)

	handler.Setup(listingUseCase, postUseCase, profileUseCase, wishlistUseCase, chatUseCase, wsManager, cfg.MaxUploadBytes)
	handler.SetupHealthHandler(firebaseAuthClient, wsManager)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
	}))
	e.Use(middleware.BodyLimit(bodyLimit(cfg.MaxUploadBytes)))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	router.Setup(e, authMiddleware, rateLimiter)

	go func() {
		logger.Info("Starting server on port %s (%s)", cfg.ServerPort, cfg.Environment)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}

// credentials prefers inline service account JSON (production) over a key
// file (local development).
func credentials(cfg *config.Config) (option.ClientOption, error) {
	if cfg.ServiceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		return option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)), nil
	}

	path := cfg.ServiceAccountPath
	if path == "" {
		path = defaultServiceAccountPath
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	logger.Info("Using Firebase service account from file: %s", path)
	return option.WithCredentialsFile(path), nil
}

// bodyLimit leaves room for several images plus form fields.
func bodyLimit(maxUploadBytes int64) string {
	mb := maxUploadBytes*10/(1<<20) + 1
	return strconv.FormatInt(mb, 10) + "M"
}
