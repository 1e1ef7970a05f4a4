package main

import (
	"advocacy-dispatch-service/internal/adapters/cache"
	"advocacy-dispatch-service/internal/adapters/compose"
	"advocacy-dispatch-service/internal/adapters/directory"
	"advocacy-dispatch-service/internal/adapters/fax"
	"advocacy-dispatch-service/internal/adapters/geo"
	"advocacy-dispatch-service/internal/adapters/payments"
	"advocacy-dispatch-service/internal/adapters/post"
	"advocacy-dispatch-service/internal/api"
	"advocacy-dispatch-service/internal/config"
	"advocacy-dispatch-service/internal/domain"
	"advocacy-dispatch-service/internal/platform/db"
	"advocacy-dispatch-service/internal/ports"
	"advocacy-dispatch-service/internal/services"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (Stripe, Lob, Sinch, Zippopotam, the chosen
// resolution cache) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		log.Fatal("STRIPE_SECRET_KEY is required")
	}
	lobKey := os.Getenv("LOB_API_KEY")
	if lobKey == "" {
		log.Fatal("LOB_API_KEY is required")
	}

	sinchCfg := fax.SinchConfig{
		ProjectID:  os.Getenv("SINCH_PROJECT_ID"),
		APIKey:     os.Getenv("SINCH_API_KEY"),
		APISecret:  os.Getenv("SINCH_API_SECRET"),
		FromNumber: os.Getenv("SINCH_FROM_NUMBER"),
	}

	resolutionCache, closeCache, err := openResolutionCache()
	if err != nil {
		log.Fatal(err)
	}
	if closeCache != nil {
		defer closeCache()
	}

	stripeProvider, err := payments.NewStripeProvider(stripeKey)
	if err != nil {
		log.Fatal(err)
	}
	lobSubmitter, err := post.NewLobSubmitter(lobKey)
	if err != nil {
		log.Fatal(err)
	}
	sinchSubmitter, err := fax.NewSinchSubmitter(sinchCfg)
	if err != nil {
		log.Fatal(err)
	}

	composer, err := openComposer()
	if err != nil {
		log.Fatal(err)
	}

	orchestrator := services.NewOrchestrator(
		geo.NewZippopotamResolver(resolutionCache),
		directory.NewSenatorDirectory(),
		composer,
		services.NewPricer(priceTableFromEnv()),
		stripeProvider,
		services.NewDispatcher(composer, lobSubmitter, sinchSubmitter),
		services.NewSessionStore(),
	)

	router := api.NewRouter(orchestrator)

	// Write timeout leaves room for a full dispatch fan-out against the
	// postal and fax vendors before the response is cut off.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openResolutionCache picks the zip-resolution cache backend from
// CACHE_BACKEND: sqlite (default), postgres, redis, or none.
func openResolutionCache() (ports.ResolutionCache, func(), error) {
	backend := config.Get("CACHE_BACKEND", "sqlite")

	switch backend {
	case "sqlite":
		path := config.Get("CACHE_DB_PATH", "data/resolutions.db")
		sqlDB, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite cache %q: %w", path, err)
		}
		if err := cache.InitSchema(sqlDB); err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		return cache.NewSqliteResolutionCache(sqlDB), func() { sqlDB.Close() }, nil

	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			return nil, nil, fmt.Errorf("CACHE_BACKEND=postgres requires DATABASE_URL")
		}
		sqlDB, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return cache.NewSQLResolutionCache(sqlDB), func() { sqlDB.Close() }, nil

	case "redis":
		addr := config.Get("REDIS_ADDR", "localhost:6379")
		client := redis.NewClient(&redis.Options{Addr: addr})
		return cache.NewRedisResolutionCache(client), func() { client.Close() }, nil

	case "none":
		return nil, nil, nil
	}

	return nil, nil, fmt.Errorf("unknown CACHE_BACKEND %q", backend)
}

func openComposer() (*compose.TemplateComposer, error) {
	if path := os.Getenv("MESSAGE_TEMPLATE_PATH"); path != "" {
		return compose.NewTemplateComposerFromFile(path)
	}
	return compose.NewTemplateComposer(), nil
}

// priceTableFromEnv starts from the default table and applies per-action
// overrides so a deployment can tune prices without a rebuild.
func priceTableFromEnv() services.PriceTable {
	table := services.DefaultPriceTable()
	table.Currency = config.Get("PRICE_CURRENCY", table.Currency)

	overrides := map[domain.ActionSelection]string{
		domain.ActionLetter: "PRICE_LETTER_CENTS",
		domain.ActionFax:    "PRICE_FAX_CENTS",
		domain.ActionBoth:   "PRICE_BOTH_CENTS",
	}
	for action, key := range overrides {
		raw := os.Getenv(key)
		if raw == "" {
			continue
		}
		cents, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || cents < 1 {
			log.Fatalf("%s must be a positive integer, got %q", key, raw)
		}
		table.UnitCents[action] = cents
	}

	return table
}
