package main // Entry point package

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-registration/internal/catalog"
	"github.com/iliyamo/event-registration/internal/config"
	"github.com/iliyamo/event-registration/internal/database"
	"github.com/iliyamo/event-registration/internal/handler"
	"github.com/iliyamo/event-registration/internal/queue"
	"github.com/iliyamo/event-registration/internal/registration"
	"github.com/iliyamo/event-registration/internal/repository"
	"github.com/iliyamo/event-registration/internal/router"
	"github.com/iliyamo/event-registration/internal/service"
	"github.com/iliyamo/event-registration/internal/session"
	"github.com/iliyamo/event-registration/internal/sheets"
)

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat := loadCatalog(cfg)
	log.Printf("catalog: %d events", cat.Len())

	rdb := config.NewRedisClient() // nil when Redis is unreachable
	if rdb == nil {
		log.Printf("redis: unavailable; rate limiting and caching disabled")
	} else {
		defer rdb.Close()
	}

	store := openSessionStore(cfg, rdb)
	rows, closeRows := openRowStore(ctx, cfg)
	defer closeRows()

	opts := []registration.Option{registration.WithTimeout(cfg.SubmitTimeout)}
	if cfg.QueueEnabled {
		opts = append(opts, registration.WithNotifier(service.NewQueuePublisher(cfg.RabbitMQURL)))
		consumer := &queue.Consumer{URL: cfg.RabbitMQURL, LogDir: cfg.AuditLogDir}
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("registration-consumer: stopped: %v", err)
			}
		}()
	}
	submitter := registration.NewSubmitter(rows, opts...)

	rlCfg, err := config.LoadRateLimitConfig()
	if err != nil {
		log.Fatal(err)
	}
	cacheCfg, err := config.LoadCacheConfig()
	if err != nil {
		log.Fatal(err)
	}

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())

	router.RegisterRoutes(e)
	router.RegisterPublic(e, &handler.PublicHandler{Catalog: cat}, cacheCfg, rdb)
	router.RegisterSession(e, handler.NewSessionHandler(cat, store, submitter, cfg.SessionSecret, cfg.SessionTTL), rlCfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, row_store=%s, sessions=%s)", addr, cfg.Env, cfg.RowStore, cfg.SessionStore)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err) // Log and exit if server fails
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func loadCatalog(cfg config.Config) *catalog.Catalog {
	if cfg.CatalogPath == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	return cat
}

func openSessionStore(cfg config.Config, rdb *redis.Client) session.Store {
	if cfg.SessionStore == config.SessionStoreRedis {
		if rdb == nil {
			log.Fatal("SESSION_STORE=redis but redis is unreachable")
		}
		return session.NewRedisStore(rdb, cfg.SessionPrefix, cfg.SessionTTL)
	}
	return session.NewMemoryStore(cfg.SessionTTL)
}

// openRowStore builds the configured append target and a func releasing it.
func openRowStore(ctx context.Context, cfg config.Config) (registration.RowAppender, func()) {
	switch cfg.RowStore {
	case config.RowStoreSheets:
		a, err := sheets.New(ctx, sheets.Config{
			SpreadsheetID:   cfg.SheetsSpreadsheetID,
			Range:           cfg.SheetsRange,
			CredentialsFile: cfg.GoogleCredentialsFile,
			CredentialsJSON: cfg.GoogleCredentialsJSON,
		})
		if err != nil {
			log.Fatalf("sheets: %v", err)
		}
		return a, func() {}
	case config.RowStoreMySQL:
		conn, err := database.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		return sqlRowStore(ctx, conn, database.MySQL)
	default:
		conn, err := database.OpenSQLite(cfg.SQLiteDSN)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		return sqlRowStore(ctx, conn, database.SQLite)
	}
}

func sqlRowStore(ctx context.Context, conn *sql.DB, driver string) (registration.RowAppender, func()) {
	repo := repository.NewRegistrationRepo(conn)
	if err := repo.EnsureSchema(ctx, driver); err != nil {
		log.Fatalf("database: %v", err)
	}
	logStoredRegistrations(ctx, repo)
	return repo, func() { _ = conn.Close() }
}

// logStoredRegistrations reports what the table already holds.
func logStoredRegistrations(ctx context.Context, repo *repository.RegistrationRepo) {
	total, err := repo.Count(ctx)
	if err != nil {
		log.Printf("database: count registrations: %v", err)
		return
	}
	byEvent, err := repo.CountByEvent(ctx)
	if err != nil {
		log.Printf("database: count by event: %v", err)
		return
	}
	log.Printf("database: %d registrations stored %v", total, byEvent)
}
