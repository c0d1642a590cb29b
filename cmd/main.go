package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	httpctx "github.com/dtroode/atlas-server/internal/api/http/context"
	"github.com/dtroode/atlas-server/internal/api/http/router"
	httpServer "github.com/dtroode/atlas-server/internal/api/http/server"
	"github.com/dtroode/atlas-server/internal/config"
	"github.com/dtroode/atlas-server/internal/hasher"
	"github.com/dtroode/atlas-server/internal/job"
	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
	"github.com/dtroode/atlas-server/internal/repository/postgres"
	"github.com/dtroode/atlas-server/internal/server"
	"github.com/dtroode/atlas-server/internal/service"
	minioStorage "github.com/dtroode/atlas-server/internal/storage/minio"
	s3Storage "github.com/dtroode/atlas-server/internal/storage/s3"
	"github.com/dtroode/atlas-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	storageClient, err := newStorage(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err, "backend", cfg.Storage.Backend)
	}

	userRepo := postgres.NewUserRepository(db.DB)
	noteRepo := postgres.NewNoteRepository(db.DB)
	credentialRepo := postgres.NewCredentialRepository(db.DB)
	fileRepo := postgres.NewFileRepository(db.DB)
	chatRepo := postgres.NewChatRepository(db.DB)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db.DB)

	passwordHasher := hasher.New(hasher.Params{Time: cfg.KDF.Time, MemKiB: cfg.KDF.MemKiB, Par: cfg.KDF.Par})
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	userService := service.NewUser(userRepo, passwordHasher, logger)
	authService, err := service.NewAuth(userRepo, passwordHasher, logger)
	if err != nil {
		logger.Fatal("failed to initialize auth service", "error", err)
	}
	tokenService := service.NewTokenService(tokenManager, refreshTokenRepo, logger)
	noteService := service.NewNote(noteRepo, logger)
	credentialService := service.NewCredential(credentialRepo, logger)
	fileService := service.NewFile(fileRepo, storageClient, cfg.Upload.MaxBytes, logger)
	chatService := service.NewChat(chatRepo, cfg.Chat.ForbiddenWords, logger)

	scheduler := job.NewScheduler(logger)
	if err := scheduler.Add(cfg.Jobs.TokenCleanupSpec, job.NewRefreshTokenCleanupJob(tokenService, logger)); err != nil {
		logger.Fatal("failed to schedule jobs", "error", err)
	}
	scheduler.Start()

	r := router.New(router.Services{
		Users:       userService,
		Auth:        authService,
		Tokens:      tokenService,
		Notes:       noteService,
		Credentials: credentialService,
		Files:       fileService,
		Chat:        chatService,
		DB:          db,
	}, router.Options{
		SessionSecret:  cfg.Session.Secret,
		SessionMaxAge:  cfg.Session.MaxAge,
		SecureCookie:   cfg.HTTP.EnableHTTPS,
		UploadMaxBytes: cfg.Upload.MaxBytes,
	}, httpctx.NewManager(), logger)

	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadHeaderTimeout)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}
	scheduler.Stop(shutdownCtx)

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func newStorage(ctx context.Context, cfg config.Storage) (model.Storage, error) {
	switch cfg.Backend {
	case "minio", "":
		return minioStorage.New(ctx, minioStorage.Options{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			Bucket:    cfg.Bucket,
			UseSSL:    cfg.UseSSL,
		})
	case "s3":
		return s3Storage.New(ctx, s3Storage.Options{
			Endpoint:  s3Endpoint(cfg),
			Region:    cfg.Region,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			Bucket:    cfg.Bucket,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// s3Endpoint returns a URL for custom endpoints; empty means AWS.
func s3Endpoint(cfg config.Storage) string {
	if cfg.Endpoint == "" || strings.Contains(cfg.Endpoint, "://") {
		return cfg.Endpoint
	}
	if cfg.UseSSL {
		return "https://" + cfg.Endpoint
	}
	return "http://" + cfg.Endpoint
}
