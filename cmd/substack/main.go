package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/glabrego/substack-reader/internal/app"
	"github.com/glabrego/substack-reader/internal/config"
	"github.com/glabrego/substack-reader/internal/logging"
	"github.com/glabrego/substack-reader/internal/storage"
	"github.com/glabrego/substack-reader/internal/substack"
	"github.com/glabrego/substack-reader/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	stderr := log.NewWithOptions(os.Stderr, log.Options{})

	cfg, err := config.LoadFromEnv()
	if err != nil {
		stderr.Error("config error", "err", err)
		return 1
	}

	logger, logCloser, err := logging.New(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		stderr.Warn("file logging disabled", "err", err)
		logger, logCloser = logging.Discard(), io.NopCloser(nil)
	}
	defer logCloser.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout+cfg.HTTPTimeout/2)
	defer cancel()

	var archive app.Archive
	if cfg.DBPath != "" {
		repo, err := storage.NewRepository(cfg.DBPath)
		if err != nil {
			stderr.Error("storage init error", "err", err)
			return 1
		}
		defer repo.Close()
		if err := repo.Init(ctx); err != nil {
			stderr.Error("storage schema error", "err", err, "path", cfg.DBPath)
			return 1
		}
		archive = repo
	}

	client := substack.NewClient(cfg.BaseURL, &http.Client{Timeout: cfg.HTTPTimeout})
	client.SetLogger(logger)
	service := app.NewService(client, archive, logger)

	var posts []substack.Post
	if cfg.Offline {
		fmt.Printf("Loading archived articles from %s...\n", cfg.DBPath)
		posts, err = service.LoadCached(ctx, cfg.PostLimit)
	} else {
		fmt.Printf("Fetching articles from %s...\n", cfg.BaseURL)
		posts, err = service.Load(ctx, cfg.PostLimit)
	}
	if err != nil {
		reportLoadError(stderr, err)
		return 1
	}

	model := tui.NewModel(posts, cfg.BaseURL)
	model.SetLogger(logger)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("tui error", "err", err)
		stderr.Error("tui error", "err", err)
		return 1
	}
	return 0
}

func reportLoadError(stderr *log.Logger, err error) {
	var statusErr *substack.StatusError
	var transportErr *substack.TransportError
	switch {
	case errors.Is(err, app.ErrNoPosts):
		stderr.Error("No posts found.")
	case errors.As(err, &statusErr):
		stderr.Error("server rejected the request", "status", statusErr.Code, "err", err)
	case errors.As(err, &transportErr):
		stderr.Error("could not reach the publication", "err", err)
	default:
		stderr.Error("could not load articles", "err", err)
	}
}
