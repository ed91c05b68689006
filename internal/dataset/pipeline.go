package dataset

import (
	"context"
	"log"
)

// Dataset is the cleaned, enriched snapshot every page reads from.
type Dataset struct {
	Source      string
	RawRows     int
	Table       *Table
	Restaurants []Restaurant
}

// Build runs load, normalize, clean and derive over src.
func Build(ctx context.Context, src Source, lookups Lookups) (*Dataset, error) {
	raw, err := Load(ctx, src)
	if err != nil {
		return nil, err
	}

	cleaned := Clean(NormalizeColumns(raw))

	derived, err := NewDeriver(lookups).Derive(cleaned)
	if err != nil {
		return nil, err
	}

	restaurants, err := Decode(derived)
	if err != nil {
		return nil, err
	}

	log.Printf(
		"[DATASET] %s → raw=%d clean=%d columns=%d",
		src, raw.Len(), derived.Len(), len(derived.Columns),
	)

	return &Dataset{
		Source:      src.String(),
		RawRows:     raw.Len(),
		Table:       derived,
		Restaurants: restaurants,
	}, nil
}
