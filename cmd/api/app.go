package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/hugohenrick/nota-fiscal/docs"
	"github.com/hugohenrick/nota-fiscal/internal/adapter/api/controller"
	"github.com/hugohenrick/nota-fiscal/internal/adapter/api/route"
	"github.com/hugohenrick/nota-fiscal/internal/adapter/provider"
	"github.com/hugohenrick/nota-fiscal/internal/adapter/repository"
	"github.com/hugohenrick/nota-fiscal/internal/domain/certificate"
	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/cache"
	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/config"
	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/database"
	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/metrics"
	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/pdf"
	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/storage"
	"github.com/hugohenrick/nota-fiscal/internal/service"
	"github.com/hugohenrick/nota-fiscal/pkg/auth"
	"github.com/hugohenrick/nota-fiscal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// App representa a aplicação e suas dependências
type App struct {
	cfg      *config.Config
	logger   logger.Logger
	router   *gin.Engine
	pool     *pgxpool.Pool
	redis    *redis.Client
	registry *prometheus.Registry

	jwtService         *auth.JWTService
	authController     *controller.AuthController
	fiscalController   *controller.FiscalController
	settingsController *controller.SettingsController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{cfg: cfg, logger: log}

	// Configurar banco de dados
	pool, err := database.NewPostgresPool(ctx, database.NewPostgresConfig(cfg.Database))
	if err != nil {
		return nil, err
	}
	app.pool = pool
	txManager := database.NewTxManager(pool, log)

	// Criar repositórios
	documentRepo := repository.NewDocumentRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)
	certificateRepo := repository.NewCertificateRepository(pool)

	sequence, err := app.newSequence(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	var parameters fiscal.ParameterStore = repository.NewParameterRepository(pool)
	if cfg.Fiscal.ParameterSource == config.ParametersFile {
		parameters = cfg.ParameterStore()
	}

	var blobs certificate.BlobStorage
	if cfg.Storage.Driver == config.StorageS3 {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.Storage.S3, log)
		if err != nil {
			app.Close()
			return nil, err
		}
		blobs = s3Storage
	}

	// Métricas
	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	transmissionMetrics, err := metrics.NewTransmissionMetrics(app.registry)
	if err != nil {
		app.Close()
		return nil, err
	}

	// Criar serviços
	registry := provider.NewRegistry(parameters, log)
	documents := service.NewDocumentService(
		documentRepo,
		sequence,
		auditRepo,
		registry,
		txManager,
		pdf.NewDANFERenderer(),
		transmissionMetrics,
		log,
		cfg.Fiscal.NumberPrefix,
	)
	settings := service.NewSettingsService(parameters, certificateRepo, blobs, log)

	// Autenticação
	app.jwtService, err = auth.NewJWTService(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		app.Close()
		return nil, err
	}
	authenticator := auth.NewOperatorAuthenticator(auth.Operator{
		Email:        cfg.Auth.OperatorEmail,
		PasswordHash: cfg.Auth.OperatorPasswordHash,
		CompanyID:    cfg.Auth.CompanyID,
	})

	// Criar controllers
	app.authController = controller.NewAuthController(authenticator, app.jwtService, log)
	app.fiscalController = controller.NewFiscalController(documents, log)
	app.settingsController = controller.NewSettingsController(settings, log)

	// Configurar router com modo correto
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition"}
	router.Use(cors.New(corsConfig))

	app.router = router
	return app, nil
}

// newSequence escolhe a numeração: Redis quando habilitado, senão a tabela fiscal_sequences
func (a *App) newSequence(ctx context.Context) (fiscal.Sequence, error) {
	pgSequence := repository.NewPostgresSequence(a.pool, a.cfg.Fiscal.SequenceCode)
	if !a.cfg.Redis.Enabled {
		return pgSequence, nil
	}

	client, err := cache.NewRedisClient(ctx, a.cfg.Redis)
	if err != nil {
		return nil, err
	}
	a.redis = client

	// Continua a partir do maior número já emitido. A tabela fiscal_sequences não
	// acompanha os números entregues pelo Redis, então as notas gravadas também contam.
	last, err := pgSequence.LastIssued(ctx)
	if err != nil {
		return nil, err
	}
	highest, err := repository.NewDocumentRepository(a.pool).HighestIssuedSequence(ctx)
	if err != nil {
		return nil, err
	}
	last = max(last, highest)

	redisSequence := repository.NewRedisSequence(client, a.cfg.Fiscal.SequenceCode)
	seeded, err := redisSequence.Seed(ctx, last)
	if err != nil {
		return nil, fmt.Errorf("falha ao preparar numeração no Redis: %w", err)
	}
	if seeded {
		a.logger.Info("numeração do Redis ajustada", "last_issued", last)
	}
	return redisSequence, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	a.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		body := gin.H{"status": "ok", "version": "1.0.0"}
		if err := a.pool.Ping(c.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "unavailable"
			body["database"] = err.Error()
		}
		c.JSON(status, body)
	})

	route.SetupAuthRoutes(api, a.authController, a.jwtService)
	route.SetupFiscalRoutes(api, a.fiscalController, a.jwtService)
	route.SetupSettingsRoutes(api, a.settingsController, a.jwtService)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("erro ao fechar conexão com o Redis", "error", err)
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
