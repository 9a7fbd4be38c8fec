package question

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultFetchTimeout bounds a single load when no timeout is configured.
const DefaultFetchTimeout = 10 * time.Second

// Store holds the question sequence. It exposes an empty sequence until a
// load succeeds and the full sequence afterwards. A Store loads at most once;
// a fresh Store is needed to try again.
type Store struct {
	src     Source
	timeout time.Duration
	logger  *zap.Logger

	once      sync.Once
	mu        sync.RWMutex
	questions []Question
	loaded    bool
	err       error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report load outcomes.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTimeout bounds the fetch. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) { s.timeout = d }
}

// NewStore creates a Store reading from src.
func NewStore(src Source, opts ...Option) *Store {
	s := &Store{
		src:     src,
		timeout: DefaultFetchTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches and decodes the question document. Only the first call does
// any work; later calls return the first call's result.
func (s *Store) Load(ctx context.Context) error {
	s.once.Do(func() {
		qs, err := s.fetch(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			s.err = err
			s.logger.Error("load questions failed",
				zap.Stringer("source", s.src),
				zap.Error(err))
			return
		}
		s.questions = qs
		s.loaded = true
		s.logger.Info("questions loaded",
			zap.Stringer("source", s.src),
			zap.Int("count", len(qs)))
	})

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store) fetch(ctx context.Context) ([]Question, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	data, format, err := s.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("question document fetched",
		zap.Stringer("source", s.src),
		zap.String("format", string(format)),
		zap.Int("bytes", len(data)),
		zap.Duration("took", time.Since(start)))

	qs, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.src, err)
	}
	return qs, nil
}

// Questions returns a copy of the loaded sequence, or nil before a
// successful load.
func (s *Store) Questions() []Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil
	}
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Loaded reports whether a load has succeeded.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Err returns the error from the load attempt, if any.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Source returns the source the store reads from.
func (s *Store) Source() Source {
	return s.src
}
