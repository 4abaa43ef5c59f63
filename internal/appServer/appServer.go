package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds124wfegd/travelbooker/config"
	repository "github.com/ds124wfegd/travelbooker/internal/database/postgres"
	rediscache "github.com/ds124wfegd/travelbooker/internal/database/redis"
	"github.com/ds124wfegd/travelbooker/internal/service"
	"github.com/ds124wfegd/travelbooker/internal/transport"

	"github.com/ds124wfegd/travelbooker/pkg/postgres"
	"github.com/ds124wfegd/travelbooker/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},           // ban on outdate TLS certificate
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags), // os.Stderr can be replaced with ElsasticSearch in the feature
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	destinationRepo := repository.NewDestinationRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Initialize cache, the app works without redis
	var cache rediscache.Cache = rediscache.NoopCache{}
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logrus.Errorf("Failed to initialize Redis: %v. Continuing without cache...", err)
		} else {
			defer redisClient.Close()
			cache = rediscache.NewCacheRepository(redisClient, cfg.App.CacheTTL)
			logrus.Info("Redis cache initialized")
		}
	}

	// Initialize services
	destinationService := service.NewDestinationService(destinationRepo, packageRepo, cache, cfg.App.PageSize)
	packageService := service.NewPackageService(packageRepo, bookingRepo, cache, cfg.App.PageSize)
	customerService := service.NewCustomerService(customerRepo, bookingRepo, cfg.App.PageSize)
	bookingService := service.NewBookingService(bookingRepo, packageRepo, customerRepo, cache, cfg.App.PageSize)
	homeService := service.NewHomeService(destinationRepo, packageRepo, bookingRepo, cache)
	authService := service.NewAuthService(adminRepo, cfg.Auth.JWTSecret, cfg.Auth.Expiration)
	seedService := service.NewSeedService(destinationRepo, packageRepo, customerRepo, bookingRepo, adminRepo)

	// Initialize handlers
	handlers := &transport.Handlers{
		Home:        transport.NewHomeHandler(homeService),
		Destination: transport.NewDestinationHandler(destinationService),
		Package:     transport.NewPackageHandler(packageService),
		Customer:    transport.NewCustomerHandler(customerService),
		Booking:     transport.NewBookingHandler(bookingService),
		Auth:        transport.NewAuthHandler(authService, seedService),
	}

	// Setup HTTP server
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(handlers, authService)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
