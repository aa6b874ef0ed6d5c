package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"storefront"
	"storefront/config"
	"storefront/internal/application/usecase"
	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository/blobstore"
	"storefront/internal/infrastructure/broker"
	"storefront/internal/infrastructure/database"
	"storefront/internal/presentation"
	"storefront/internal/presentation/handler"
	"storefront/internal/presentation/middleware"
	"storefront/pkg/logger"

	blobRegistry "storefront/internal/infrastructure/blobstore"
	"storefront/internal/infrastructure/blobstore/filesystem"
	"storefront/internal/infrastructure/blobstore/inline"
	minioStore "storefront/internal/infrastructure/blobstore/minio"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running storefront api", "version", storefront.StringVersion())

	if err := cfg.CheckAPI(); err != nil {
		ExitOnError(err)
	}

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("failed to disconnect database", "err", err)
		}
	}()

	events := usecase.NewEvents(nil)
	if cfg.BrokerConfig.URI != "" {
		brokerClient, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()

		events = usecase.NewEvents(broker.NewPublisher(brokerClient, cfg.PublisherConfig))
	} else {
		logger.Warn("BROKER_URI is not set, events will not be published")
	}

	blobs, err := newBlobRegistry(cfg)
	if err != nil {
		ExitOnError(err)
	}

	productStore := database.NewStore[model.Product](db, database.ProductSchema)
	userStore := database.NewStore[model.User](db, database.UserSchema)

	products := usecase.NewProducts(productStore)
	orders := usecase.NewOrders(database.NewStore[model.Order](db, database.OrderSchema), productStore, events)
	users := usecase.NewUsers(userStore)
	news := usecase.NewNews(database.NewStore[model.News](db, database.NewsSchema))
	expenses := usecase.NewExpenses(database.NewStore[model.Expense](db, database.ExpenseSchema))
	welcome := usecase.NewWelcome(database.NewStore[model.Welcome](db, database.WelcomeSchema))
	images := usecase.NewMedia(model.MediaImage, database.NewStore[model.Asset](db, database.ImageSchema),
		blobs, events)
	videos := usecase.NewMedia(model.MediaVideo, database.NewStore[model.Asset](db, database.VideoSchema),
		blobs, events)
	authenticator := usecase.NewAuthenticator(userStore, cfg.Auth)

	e := newServer(cfg.HTTPServer)

	api := e.Group("/api", middleware.Identify(authenticator))
	for _, routes := range [][]presentation.Route{
		handler.ResourceRoutes[model.Product, dto.ProductInput, dto.ProductPatch]("/products", products),
		handler.ResourceRoutes[model.Order, dto.OrderInput, dto.OrderPatch]("/orders", orders),
		handler.ResourceRoutes[model.User, dto.UserInput, dto.UserPatch]("/users", users),
		handler.ResourceRoutes[model.News, dto.NewsInput, dto.NewsPatch]("/news", news),
		handler.ResourceRoutes[model.Expense, dto.ExpenseInput, dto.ExpensePatch]("/expenses", expenses),
		handler.ResourceRoutes[model.Welcome, dto.WelcomeInput, dto.WelcomePatch]("/welcome", welcome),
		handler.MediaRoutes("/images", images),
		handler.MediaRoutes("/videos", videos),
		handler.AuthRoutes("/auth", authenticator),
		handler.DocsRoutes(""),
	} {
		presentation.Register(api, routes)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTPServer.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg.HTTPServer))
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}
}

func newServer(cfg config.HTTPServerConfig) *echo.Echo {
	bodyLimit := cfg.BodyLimit
	if bodyLimit == "" {
		bodyLimit = "50M"
	}

	rateLimit := cfg.RateLimit
	if rateLimit <= 0 {
		rateLimit = 20
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = presentation.HTTPErrorHandler
	e.JSONSerializer = presentation.JSONSerializer{}

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{
			echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength, "Range",
		},
		AllowMethods: []string{
			http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		ExposeHeaders: []string{
			"Content-Range", "Accept-Ranges", echo.HeaderContentLength, echo.HeaderContentDisposition,
			presentation.ReasonTag,
		},
		MaxAge: 86400,
	}))
	e.Use(middleware.RequestLogger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(bodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(rateLimit))))

	e.GET("/health", handler.HandleHealth)

	return e
}

func shutdownTimeout(cfg config.HTTPServerConfig) time.Duration {
	if cfg.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}

	return time.Duration(cfg.ShutdownTimeout) * time.Millisecond
}

// newBlobRegistry registers every backend the configuration allows, so assets
// stored before a storage switch stay readable.
func newBlobRegistry(cfg *config.Config) (*blobRegistry.Registry, error) {
	backends := []blobstore.Backend{inline.New()}

	if cfg.Media.FilesystemDir != "" {
		fs, err := filesystem.New(cfg.Media.FilesystemDir)
		if err != nil {
			return nil, err
		}
		backends = append(backends, fs)
	}

	if cfg.MinIOClient.Endpoint != "" && cfg.MinIOClient.AccessKey != "" {
		client, err := minioStore.New(cfg.MinIOClient)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := client.EnsureBucket(ctx, cfg.MinIOBucket.Bucket); err != nil {
			return nil, fmt.Errorf("prepare bucket %s: %w", cfg.MinIOBucket.Bucket, err)
		}

		backends = append(backends, minioStore.NewStore(client.MinioClient, cfg.MinIOBucket))
	}

	return blobRegistry.NewRegistry(model.StorageKind(cfg.Media.Storage), backends...)
}
