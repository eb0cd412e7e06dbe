package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-recipe-book/docs"
	"github.com/sbilibin2017/gw-recipe-book/internal/config"
	"github.com/sbilibin2017/gw-recipe-book/internal/handlers"
	"github.com/sbilibin2017/gw-recipe-book/internal/hasher"
	"github.com/sbilibin2017/gw-recipe-book/internal/jwt"
	"github.com/sbilibin2017/gw-recipe-book/internal/logger"
	"github.com/sbilibin2017/gw-recipe-book/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-book/internal/migrations"
	"github.com/sbilibin2017/gw-recipe-book/internal/repositories"
	"github.com/sbilibin2017/gw-recipe-book/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-recipe-book API
// @version 1.0.0
// @description Recipe book service: users, ingredient catalog and recipes
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Parse(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// routerDeps groups everything the HTTP layer talks to.
type routerDeps struct {
	tokener              middlewares.Tokener
	authenticator        middlewares.Authenticator
	registerer           handlers.Registerer
	loginer              handlers.Loginer
	ingredientCategories handlers.IngredientCategoryService
	ingredients          handlers.IngredientService
	recipeCategories     handlers.RecipeCategoryService
	recipes              handlers.RecipeService
	swaggerURL           string
}

// run initializes the logger, database, optional Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PostgresHost, "port", cfg.PostgresPort, "db", cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Recipe events are optional
	var kafkaWriter services.KafkaWriter
	if w := newKafkaWriter(cfg); w != nil {
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Publishing recipe events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.SecretKey),
		jwt.WithAlgorithm(cfg.Algorithm),
		jwt.WithExpiration(cfg.AccessTokenExpire),
	)

	// Initialize repositories
	txManager := repositories.NewTxManager(db)
	userRepo := repositories.NewUserRepository(db, repositories.GetTxFromContext)
	ingredientCategoryRepo := repositories.NewIngredientCategoryRepository(db, repositories.GetTxFromContext)
	ingredientRepo := repositories.NewIngredientRepository(db, repositories.GetTxFromContext)
	recipeCategoryRepo := repositories.NewRecipeCategoryRepository(db, repositories.GetTxFromContext)
	recipeRepo := repositories.NewRecipeRepository(db, repositories.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userRepo, hasher.New(cfg.BcryptCost), tokens, cfg.AdminEmail, cfg.AdminPassword)
	catalogService := services.NewCatalogService(txManager, ingredientCategoryRepo, ingredientRepo)
	recipeService := services.NewRecipeService(txManager, recipeCategoryRepo, recipeRepo, kafkaWriter)

	r := newRouter(routerDeps{
		tokener:              tokens,
		authenticator:        authService,
		registerer:           authService,
		loginer:              authService,
		ingredientCategories: catalogService,
		ingredients:          catalogService,
		recipeCategories:     recipeService,
		recipes:              recipeService,
		swaggerURL:           fmt.Sprintf("http://%s/swagger/doc.json", cfg.Addr()),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newKafkaWriter returns nil when no brokers are configured. Events are
// published inside the request, so batches are flushed almost immediately.
func newKafkaWriter(cfg *config.Config) *kafka.Writer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
}

// newRouter wires the public and bearer-protected routes. Static segments
// such as /list are registered before the /{id} catch-all of each group.
func newRouter(deps routerDeps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/users/register", handlers.NewRegisterHandler(deps.registerer))
	r.Post("/users/token", handlers.NewTokenHandler(deps.loginer))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(deps.tokener, deps.authenticator))

		r.Get("/users/me", handlers.NewMeHandler())

		r.Route("/ingredients", func(r chi.Router) {
			r.Route("/category", func(r chi.Router) {
				r.Post("/create", handlers.NewCreateIngredientCategoryHandler(deps.ingredientCategories))
				r.Get("/list", handlers.NewListIngredientCategoriesHandler(deps.ingredientCategories))
				r.Put("/update/{id}", handlers.NewUpdateIngredientCategoryHandler(deps.ingredientCategories))
				r.Delete("/delete/{id}", handlers.NewDeleteIngredientCategoryHandler(deps.ingredientCategories))
				r.Get("/{id}", handlers.NewGetIngredientCategoryHandler(deps.ingredientCategories))
			})

			r.Post("/create", handlers.NewCreateIngredientHandler(deps.ingredients))
			r.Get("/list", handlers.NewListIngredientsHandler(deps.ingredients))
			r.Put("/update/{id}", handlers.NewUpdateIngredientHandler(deps.ingredients))
			r.Delete("/delete/{id}", handlers.NewDeleteIngredientHandler(deps.ingredients))
			r.Get("/{id}", handlers.NewGetIngredientHandler(deps.ingredients))
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Route("/category", func(r chi.Router) {
				r.Post("/create", handlers.NewCreateRecipeCategoryHandler(deps.recipeCategories))
				r.Get("/list", handlers.NewListRecipeCategoriesHandler(deps.recipeCategories))
				r.Put("/update/{id}", handlers.NewUpdateRecipeCategoryHandler(deps.recipeCategories))
				r.Delete("/delete/{id}", handlers.NewDeleteRecipeCategoryHandler(deps.recipeCategories))
				r.Get("/{id}", handlers.NewGetRecipeCategoryHandler(deps.recipeCategories))
			})

			r.Post("/create", handlers.NewCreateRecipeHandler(deps.recipes))
			r.Get("/list", handlers.NewListRecipesHandler(deps.recipes))
			r.Delete("/delete/{id}", handlers.NewDeleteRecipeHandler(deps.recipes))
			r.Get("/{id}", handlers.NewGetRecipeHandler(deps.recipes))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(deps.swaggerURL)))

	return r
}
