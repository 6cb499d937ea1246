package seed

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"inventory-tracker/internal/model"

	"github.com/rs/zerolog"
)

// LocationAdder registers a location by name; repeated names are no-ops.
type LocationAdder interface {
	AddLocation(ctx context.Context, name string) (bool, error)
}

// Source pairs a loader with the file path or object key it reads.
type Source struct {
	Loader Loader
	Name   string
}

// Seeder loads every source and registers the names it finds.
type Seeder struct {
	sources []Source
	adder   LocationAdder
	logger  zerolog.Logger
}

// NewSeeder creates a new seeder.
func NewSeeder(sources []Source, adder LocationAdder, logger zerolog.Logger) *Seeder {
	return &Seeder{
		sources: sources,
		adder:   adder,
		logger:  logger.With().Str("component", "location-seeder").Logger(),
	}
}

// Run loads all sources concurrently, then adds the merged names in source
// order. Names too long to store are skipped. It returns the number of
// locations created.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	if len(s.sources) == 0 {
		return 0, nil
	}

	type loadResult struct {
		index int
		set   *NameSet
		err   error
	}

	resultChan := make(chan loadResult, len(s.sources))
	var wg sync.WaitGroup

	for i, source := range s.sources {
		wg.Add(1)
		go func(index int, source Source) {
			defer wg.Done()

			set, err := source.Loader.Load(ctx, source.Name)
			resultChan <- loadResult{index: index, set: set, err: err}
		}(i, source)
	}

	wg.Wait()
	close(resultChan)

	results := make([]loadResult, len(s.sources))
	for result := range resultChan {
		results[result.index] = result
	}

	merged := NewNameSet()
	for i, result := range results {
		if result.err != nil {
			return 0, fmt.Errorf("failed to load location source %s: %w", s.sources[i].Name, result.err)
		}
		merged.Merge(result.set)
	}

	created := 0
	for _, name := range merged.Names() {
		ok, err := s.adder.AddLocation(ctx, name)
		if errors.Is(err, model.ErrNameTooLong) {
			s.logger.Warn().Str("location", name).Msg("skipping location name that is too long")
			continue
		}
		if err != nil {
			return created, fmt.Errorf("failed to seed location %q: %w", name, err)
		}
		if ok {
			created++
		}
	}

	s.logger.Info().
		Int("sources", len(s.sources)).
		Int("names", merged.Size()).
		Int("created", created).
		Msg("location catalogue seeded")

	return created, nil
}
