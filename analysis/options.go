package analysis

import (
	"fmt"
	"slices"

	"github.com/numlab/quadex/errs"
	"github.com/numlab/quadex/internal/options"
)

// Config holds configuration for an error-law analysis.
type Config struct {
	Laws []LawType
}

// defaultConfig returns the default config: every known law is a candidate.
func defaultConfig() Config {
	return Config{
		Laws: []LawType{LawTypeLinear, LawTypeQuadratic, LawTypeCubic},
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithLaws restricts the candidate laws Analyze fits. At least one law is
// required and every law must be a known LawType.
func WithLaws(laws ...LawType) Option {
	return func(cfg *Config) error {
		if len(laws) == 0 {
			return fmt.Errorf("%w: at least one law required", errs.ErrInvalidLaw)
		}
		for _, law := range laws {
			if _, exists := lawTypeNames[law]; !exists {
				return fmt.Errorf("%w: %d", errs.ErrInvalidLaw, int(law))
			}
		}
		cfg.Laws = slices.Clone(laws)

		return nil
	}
}
