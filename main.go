package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"
	"github.com/loot-scout/loot-scout-go/src/cache"
	"github.com/loot-scout/loot-scout-go/src/cli"
	httpClient "github.com/loot-scout/loot-scout-go/src/http"
)

var APP_VERSION = "unreleased"
var APP_LOC = "https://github.com/loot-scout/loot-scout-go"

func main() {
	// Parse command line flags
	flags, err := cli.ParseFlags(os.Args, APP_VERSION)
	if err != nil {
		slog.Error("failed to parse flags", "error", err)
		os.Exit(1)
	}

	// Setup logging
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: flags.LogLevel,
	})))

	// Get working directory
	cwd, err := os.Getwd()
	if err != nil {
		slog.Error("failed to get current working directory", "error", err)
		os.Exit(1)
	}

	// Setup HTTP cache
	cacheDir := filepath.Join(cwd, "cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		slog.Error("failed to create cache directory", "error", err)
		os.Exit(1)
	}

	cacheConfig := cache.CacheConfig{
		Directory:       cacheDir,
		DefaultTTLHours: 24,
		WikiTTLHours:    72,
	}

	// Setup HTTP client with caching
	cachingTransport := cache.NewFileCachingTransport(cacheConfig, http.DefaultTransport)
	userAgent := userAgent()
	client := httpClient.NewRealHTTPClient(cachingTransport, userAgent)

	// Create command handler
	handler := cli.NewCommandHandler()
	ctx := context.Background()

	// Execute command
	switch flags.SubCommand {
	case cli.LookupSubCommand:
		config := flags.LookupConfig
		config.HTTPClient = client

		if err := handler.Lookup(ctx, config); err != nil {
			slog.Error("lookup command failed", "error", err)
			os.Exit(1)
		}

	case cli.ExportSubCommand:
		if err := handler.Export(ctx, flags.ExportConfig); err != nil {
			slog.Error("export command failed", "error", err)
			os.Exit(1)
		}

	default:
		slog.Error("unknown subcommand", "subcommand", flags.SubCommand)
		os.Exit(1)
	}
}

func userAgent() string {
	return "loot-scout/" + APP_VERSION + " (" + APP_LOC + ")"
}
