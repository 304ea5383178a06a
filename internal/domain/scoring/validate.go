package scoring

import (
	"errors"
	"fmt"
)

// Validate checks the static tables: index ranges partition the answer
// vector, every indexed questionnaire can be scored and every band table is
// contiguous from zero with a clinical level on each band. The server
// refuses to start when it fails.
func Validate() error {
	var errs []error

	next := 0
	for _, e := range indexMap {
		r := e.rng
		if r.Start != next {
			errs = append(errs, fmt.Errorf("%s: starts at %d, expected %d", e.questionnaire, r.Start, next))
		}
		if r.End-r.Start+1 != r.ItemCount {
			errs = append(errs, fmt.Errorf("%s: range %d-%d does not hold %d items", e.questionnaire, r.Start, r.End, r.ItemCount))
		}
		if _, ok := scoringTable[e.questionnaire]; !ok {
			errs = append(errs, fmt.Errorf("%s: indexed but has no scoring configuration", e.questionnaire))
		}
		next = r.End + 1
	}
	if next != TotalItems {
		errs = append(errs, fmt.Errorf("index map covers %d items, expected %d", next, TotalItems))
	}

	for _, q := range All() {
		cfg, ok := scoringTable[q]
		if !ok {
			continue
		}
		if err := validateBands(cfg.Bands); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", q, err))
		}
		if len(cfg.ScoreMapping) == 0 {
			errs = append(errs, fmt.Errorf("%s: empty score mapping", q))
		}
	}

	return errors.Join(errs...)
}

func validateBands(bands []SeverityBand) error {
	if len(bands) == 0 {
		return errors.New("no severity bands")
	}
	next := 0
	for _, b := range bands {
		if b.Min > b.Max {
			return fmt.Errorf("band %q has min %d above max %d", b.Key, b.Min, b.Max)
		}
		if b.Min != next {
			return fmt.Errorf("band %q starts at %d, expected %d", b.Key, b.Min, next)
		}
		if b.Level == "" {
			return fmt.Errorf("band %q has no clinical level", b.Key)
		}
		next = b.Max + 1
	}
	return nil
}
