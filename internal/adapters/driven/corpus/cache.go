package corpus

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
	"github.com/hidayah-labs/duafinder/internal/core/ports/driven"
	"github.com/hidayah-labs/duafinder/internal/logger"
)

// Ensure CachedSource implements the interface.
var _ driven.RecordSource = (*CachedSource)(nil)

// reloadInterval bounds how often filesystem events may force a
// re-read of the corpus from disk.
const reloadInterval = 2 * time.Second

// CachedSource caches the record set of an inner source and
// invalidates the cache when the watched corpus file changes.
// Reloads are gated by a token bucket so editors that write in many
// small bursts do not cause repeated parsing.
type CachedSource struct {
	inner   driven.RecordSource
	watcher *fsnotify.Watcher
	limiter *rate.Limiter

	mu     sync.Mutex
	cached []domain.Record
	loaded bool
	dirty  bool

	done chan struct{}
}

// NewCachedSource wraps inner with a cache invalidated by changes to
// watchPath. The watcher observes the containing directory, since
// editors commonly replace files via rename.
func NewCachedSource(inner driven.RecordSource, watchPath string) (*CachedSource, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(watchPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	s := &CachedSource{
		inner:   inner,
		watcher: watcher,
		limiter: rate.NewLimiter(rate.Every(reloadInterval), 1),
		done:    make(chan struct{}),
	}
	go s.watch(filepath.Base(watchPath))
	return s, nil
}

// newUnwatchedCachedSource builds a cache without a filesystem
// watcher. Tests drive invalidation through Invalidate directly.
func newUnwatchedCachedSource(inner driven.RecordSource) *CachedSource {
	return &CachedSource{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Every(reloadInterval), 1),
		done:    make(chan struct{}),
	}
}

// Records returns the cached record set, reloading from the inner
// source on first use or after an invalidation. When a reload fails
// but a previous snapshot exists, the stale snapshot is served so a
// transient read error does not take search down.
func (s *CachedSource) Records(ctx context.Context) ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needsLoad := !s.loaded || (s.dirty && s.limiter.Allow())
	if !needsLoad {
		return s.cached, nil
	}

	records, err := s.inner.Records(ctx)
	if err != nil {
		if s.loaded {
			logger.Warn("Corpus reload failed, serving cached snapshot: %v", err)
			return s.cached, nil
		}
		return nil, err
	}

	s.cached = records
	s.loaded = true
	s.dirty = false
	logger.Debug("Corpus cache loaded: %d records", len(records))
	return s.cached, nil
}

// Invalidate marks the cache stale. The next Records call reloads,
// subject to the reload rate limit.
func (s *CachedSource) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = true
}

// Close stops the filesystem watcher.
func (s *CachedSource) Close() error {
	close(s.done)
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// watch marks the cache dirty on events touching the corpus file.
func (s *CachedSource) watch(base string) {
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename) {
				logger.Debug("Corpus file changed (%s), invalidating cache", event.Op)
				s.Invalidate()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Corpus watcher error: %v", err)
		}
	}
}
