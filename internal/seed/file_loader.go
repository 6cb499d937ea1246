package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for local files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-file-loader").Logger(),
	}
}

// Load reads a location list from the local file system.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*NameSet, error) {
	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open location file")
		return nil, fmt.Errorf("failed to open location file %s: %w", filePath, err)
	}
	defer file.Close()

	set, err := readNames(ctx, file, filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read location file")
		return nil, err
	}

	l.logger.Info().
		Str("file", filePath).
		Int("locations", set.Size()).
		Msg("location file loaded")

	return set, nil
}
