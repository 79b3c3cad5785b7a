package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/glabrego/substack-reader/internal/logging"
	"github.com/glabrego/substack-reader/internal/substack"
)

// ErrNoPosts means the fetch succeeded but yielded nothing to show.
var ErrNoPosts = errors.New("no posts found")

var errNoArchive = errors.New("post archive is not configured")

type PostFetcher interface {
	FetchPosts(ctx context.Context, limit int) ([]substack.Post, error)
}

type Archive interface {
	SavePosts(ctx context.Context, posts []substack.Post, fetchedAt time.Time) error
	ListPosts(ctx context.Context, limit int) ([]substack.Post, error)
	LastFetchedAt(ctx context.Context) (time.Time, error)
}

type Service struct {
	fetcher PostFetcher
	archive Archive
	logger  *log.Logger
	nowFn   func() time.Time
}

// NewService wires the fetcher with an optional archive. A nil archive
// disables snapshotting and offline loads.
func NewService(fetcher PostFetcher, archive Archive, logger *log.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{fetcher: fetcher, archive: archive, logger: logger, nowFn: time.Now}
}

// Load fetches the newest posts. Archive failures are logged and do not fail
// the load.
func (s *Service) Load(ctx context.Context, limit int) ([]substack.Post, error) {
	start := s.nowFn()
	posts, err := s.fetcher.FetchPosts(ctx, limit)
	if err != nil {
		s.logger.Error("fetch failed", "err", err)
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	s.logger.Info("posts loaded", "count", len(posts), "duration", s.nowFn().Sub(start))
	if len(posts) == 0 {
		return nil, ErrNoPosts
	}

	if s.archive != nil {
		if err := s.archive.SavePosts(ctx, posts, s.nowFn()); err != nil {
			s.logger.Warn("archive posts failed", "err", err)
		}
	}
	return posts, nil
}

// LoadCached returns the archived snapshot instead of hitting the network.
func (s *Service) LoadCached(ctx context.Context, limit int) ([]substack.Post, error) {
	if s.archive == nil {
		return nil, errNoArchive
	}
	posts, err := s.archive.ListPosts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load posts from archive: %w", err)
	}
	if len(posts) == 0 {
		return nil, ErrNoPosts
	}
	if fetchedAt, err := s.archive.LastFetchedAt(ctx); err == nil {
		s.logger.Info("posts loaded from archive", "count", len(posts), "fetched_at", fetchedAt)
	}
	return posts, nil
}
