package match

import (
	"errors"
	"fmt"
	"time"
)

// ErrConfiguration is returned by NewEngine for invalid weights or
// thresholds.
var ErrConfiguration = errors.New("invalid match configuration")

// Weights distributes the overall score across the four sub-scores.
// They are integer percentages and must sum to 100.
type Weights struct {
	Technical  int
	Experience int
	Education  int
	SoftSkills int
}

// DefaultWeights returns the standard scoring split.
func DefaultWeights() Weights {
	return Weights{Technical: 35, Experience: 25, Education: 20, SoftSkills: 20}
}

// Thresholds are the overall-score cutoffs for classification.
type Thresholds struct {
	Shortlist float64
	Pending   float64
}

// DefaultThresholds returns the standard classification cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Shortlist: 70, Pending: 50}
}

// Config drives the engine. The zero value is not valid; use
// DefaultConfig as a starting point.
type Config struct {
	Weights    Weights
	Thresholds Thresholds

	// Clock supplies "now" for open-ended employment ranges. Defaults
	// to time.Now; tests inject a fixed clock for reproducible scores.
	Clock func() time.Time
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{Weights: DefaultWeights(), Thresholds: DefaultThresholds()}
}

func (c Config) validate() error {
	w := c.Weights
	for _, v := range []int{w.Technical, w.Experience, w.Education, w.SoftSkills} {
		if v < 0 {
			return fmt.Errorf("%w: negative weight", ErrConfiguration)
		}
	}
	if sum := w.Technical + w.Experience + w.Education + w.SoftSkills; sum != 100 {
		return fmt.Errorf("%w: weights sum to %d, want 100", ErrConfiguration, sum)
	}
	t := c.Thresholds
	if t.Shortlist < 0 || t.Shortlist > 100 || t.Pending < 0 || t.Pending > 100 {
		return fmt.Errorf("%w: thresholds out of range", ErrConfiguration)
	}
	if t.Pending > t.Shortlist {
		return fmt.Errorf("%w: pending threshold above shortlist threshold", ErrConfiguration)
	}
	return nil
}
