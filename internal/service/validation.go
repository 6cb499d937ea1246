package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Values holds a parsed quantity and price.
type Values struct {
	Quantity int
	Price    float64
}

// ParseValues parses a quantity as a 32-bit integer and a price as a float.
// The check is purely syntactic: negative values are accepted and prices
// beyond the float64 range become ±Inf.
func ParseValues(quantity, price string) (Values, error) {
	q, err := strconv.ParseInt(strings.TrimSpace(quantity), 10, 32)
	if err != nil {
		return Values{}, fmt.Errorf("invalid quantity %q: %w", quantity, err)
	}

	p, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if errors.Is(err, strconv.ErrRange) {
		err = nil
	}
	if err != nil {
		return Values{}, fmt.Errorf("invalid price %q: %w", price, err)
	}

	return Values{Quantity: int(q), Price: p}, nil
}

// Validate reports whether quantity and price are numeric. Failures are
// logged with the parse error.
func Validate(quantity, price string, logger zerolog.Logger) bool {
	if _, err := ParseValues(quantity, price); err != nil {
		logger.Warn().Err(err).Msg("rejected non-numeric value")
		return false
	}
	return true
}
