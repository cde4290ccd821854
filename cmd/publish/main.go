package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mugisham37/moses-mugisha/cmd/publish/internal/configuration"
	"github.com/mugisham37/moses-mugisha/pkg/catalog"
	"github.com/mugisham37/moses-mugisha/pkg/feeds"
	"github.com/mugisham37/moses-mugisha/pkg/services"
)

/*
publish emits the static artifacts the portfolio's page generator
consumes: a sitemap.xml enumerating every detail page, and a
summaries.json for the listing view. It can also verify that every
catalog image URL is reachable, and push the artifacts to S3.
*/

var (
	Version string = "development"
	appName string = "mosesmugisha-publish"

	config configuration.Config
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
		slog.String("baseUrl", config.BaseURL),
		slog.String("outputDir", config.OutputDir),
	)

	if workCatalog, err = catalog.New(); err != nil {
		panic(err)
	}

	workService := services.NewWorkService(services.WorkServiceConfig{
		Catalog: workCatalog,
	})

	sitemap, err := feeds.Sitemap(config.BaseURL, workService.GetAllSlugs())

	if err != nil {
		panic(err)
	}

	summaries, err := feeds.Summaries(workService.GetSummaries())

	if err != nil {
		panic(err)
	}

	if err = os.MkdirAll(config.OutputDir, 0755); err != nil {
		panic(err)
	}

	artifacts := map[string][]byte{
		"sitemap.xml":    sitemap,
		"summaries.json": summaries,
	}

	for name, body := range artifacts {
		path := filepath.Join(config.OutputDir, name)

		if err = os.WriteFile(path, body, 0644); err != nil {
			panic(err)
		}

		slog.Info("artifact written", slog.String("path", path), slog.Int("bytes", len(body)))
	}

	if config.MaxVerifyWorkers > 0 {
		broken := verifyImages(workService.GetAll(), config.MaxVerifyWorkers)

		for _, url := range broken {
			slog.Warn("unreachable image", slog.String("url", url))
		}

		slog.Info("image verification finished", slog.Int("broken", len(broken)))
	}

	if config.AwsBucket != "" {
		if err = uploadArtifacts(artifacts); err != nil {
			panic(err)
		}
	}

	slog.Info("publish finished", slog.Int("projects", workCatalog.Len()))
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
