package service

import (
	"context"

	"antipodes-api/internal/geo"
	"antipodes-api/internal/models"

	"golang.org/x/sync/errgroup"
)

// WordLookup resolves a coordinate to the words of the square containing it.
type WordLookup interface {
	LookupWords(ctx context.Context, c models.Coordinate) (models.ResolvedLocation, error)
}

// LocationWordsService resolves a coordinate and its antipode to words.
type LocationWordsService struct {
	lookup   WordLookup
	parallel bool
}

// Option configures a LocationWordsService.
type Option func(*LocationWordsService)

// WithParallelLookups issues the primary and antipode lookups concurrently.
// A failure of either still fails the whole resolution, and the primary error
// is reported when both fail.
func WithParallelLookups(enabled bool) Option {
	return func(s *LocationWordsService) { s.parallel = enabled }
}

// NewLocationWordsService creates a new location words service
func NewLocationWordsService(lookup WordLookup, opts ...Option) *LocationWordsService {
	s := &LocationWordsService{lookup: lookup}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve looks up the words for c and for its antipode.
// The antipode is never looked up when the primary lookup fails in sequential mode.
func (s *LocationWordsService) Resolve(ctx context.Context, c models.Coordinate) (models.SelectionResult, error) {
	if s.parallel {
		return s.resolveParallel(ctx, c)
	}

	primary, err := s.lookupWords(ctx, c)
	if err != nil {
		return models.SelectionResult{}, err
	}

	antipode, err := s.lookupWords(ctx, geo.Antipode(c))
	if err != nil {
		return models.SelectionResult{}, err
	}

	return models.SelectionResult{Primary: primary, Antipode: antipode}, nil
}

func (s *LocationWordsService) resolveParallel(ctx context.Context, c models.Coordinate) (models.SelectionResult, error) {
	var (
		primary, antipode       models.ResolvedLocation
		primaryErr, antipodeErr error
	)

	// Only a primary failure cancels the group, so the antipode error never
	// masks the primary one.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		primary, primaryErr = s.lookupWords(gctx, c)
		return primaryErr
	})
	g.Go(func() error {
		antipode, antipodeErr = s.lookupWords(gctx, geo.Antipode(c))
		return nil
	})
	_ = g.Wait()

	if primaryErr != nil {
		return models.SelectionResult{}, primaryErr
	}
	if antipodeErr != nil {
		return models.SelectionResult{}, antipodeErr
	}

	return models.SelectionResult{Primary: primary, Antipode: antipode}, nil
}

// lookupWords calls the provider and maps foreign errors into the lookup taxonomy.
func (s *LocationWordsService) lookupWords(ctx context.Context, c models.Coordinate) (models.ResolvedLocation, error) {
	loc, err := s.lookup.LookupWords(ctx, c)
	if err != nil {
		if models.IsLookupError(err) {
			return models.ResolvedLocation{}, err
		}
		return models.ResolvedLocation{}, &models.LookupFailedError{Reason: err.Error(), Err: err}
	}
	return loc, nil
}
