package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/retrier"
	_ "github.com/glebarez/sqlite"
	"github.com/rfberaldo/sqlz"
	"github.com/rfberaldo/sqlz/binds"

	"github.com/mugisham37/moses-mugisha/cmd/website/internal/configuration"
	"github.com/mugisham37/moses-mugisha/cmd/website/internal/contact"
	"github.com/mugisham37/moses-mugisha/cmd/website/internal/work"
	"github.com/mugisham37/moses-mugisha/pkg/catalog"
	"github.com/mugisham37/moses-mugisha/pkg/services"
)

var (
	Version string = "development"
	appName string = "mosesmugisha-portfolio"

	//go:embed sql-migrations
	sqlMigrationsFs embed.FS

	config configuration.Config

	/* Services */
	db             *sqlz.DB
	inquiryService services.InquiryServicer
	workService    services.WorkServicer

	/* Controllers */
	contactController contact.ContactHandlers
	workController    work.WorkHandlers
)

func main() {
	var (
		err         error
		workCatalog *catalog.Catalog
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("baseUrl", config.BaseURL),
	)

	slog.Debug("setting up...")

	/*
	 * Setup services
	 */
	binds.Register("sqlite", binds.BindByDriver("sqlite3"))

	retrier.Retry(func() error {
		if db, err = sqlz.Connect("sqlite", config.DSN); err != nil {
			slog.Error("failed to connect to the database. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		panic(err)
	}

	migrateDatabase()

	/*
	 * The work catalog is built once here and injected into everything
	 * that reads it. Construction fails fast on bad authored data.
	 */
	if workCatalog, err = catalog.New(); err != nil {
		panic(err)
	}

	workService = services.NewWorkService(services.WorkServiceConfig{
		Catalog: workCatalog,
	})

	inquiryService = services.NewInquiryService(services.InquiryServiceConfig{
		DB: db,
	})

	/*
	 * Setup controllers
	 */
	workController = work.NewWorkController(work.WorkControllerConfig{
		WorkService: workService,
	})

	contactController = contact.NewContactController(contact.ContactControllerConfig{
		Config:         &config,
		InquiryService: inquiryService,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	requestLogger := newRequestLoggerMiddleware()

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /api/works", HandlerFunc: workController.ListWorks, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "GET /api/works/category/{category}", HandlerFunc: workController.ListWorksByCategory, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "GET /api/works/{slug}", HandlerFunc: workController.GetWork, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "GET /api/slugs", HandlerFunc: workController.ListSlugs, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "GET /api/summaries", HandlerFunc: workController.ListSummaries, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "POST /api/contact", HandlerFunc: contactController.SubmitInquiry, Middlewares: []mux.MiddlewareFunc{requestLogger}},
	}

	routerConfig := mux.RouterConfig{
		Address:          config.Host,
		Debug:            Version == "development",
		HttpWriteTimeout: 60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	slog.Info("server started")

	<-quit

	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}

func migrateDatabase() {
	var (
		err  error
		dirs []fs.DirEntry
		b    []byte
	)

	if dirs, err = sqlMigrationsFs.ReadDir("sql-migrations"); err != nil {
		panic(err)
	}

	for _, d := range dirs {
		if d.IsDir() {
			continue
		}

		if strings.HasPrefix(d.Name(), "commit") {
			if b, err = fs.ReadFile(sqlMigrationsFs, filepath.Join("sql-migrations", d.Name())); err != nil {
				panic(err)
			}

			if err = runSqlScript(b); err != nil {
				if !isIgnorableError(err) {
					panic(err)
				}
			}
		}
	}
}

func runSqlScript(script []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	_, err := db.Exec(ctx, string(script))
	return err
}

func isIgnorableError(err error) bool {
	if strings.Contains(err.Error(), "duplicate column") {
		return true
	}

	return false
}

func setupLogger(config *configuration.Config, version string) {
	level := slog.LevelInfo

	switch strings.ToLower(config.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler).With(slog.String("version", version)))
}
