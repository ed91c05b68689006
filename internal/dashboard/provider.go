package dashboard

import (
	"context"
	"fmt"
	"log"
	"sync"

	"findarestaurant/internal/dataset"
	"findarestaurant/internal/db"
	"findarestaurant/internal/restaurant"
)

// Snapshot is the built dataset and the queries over it. It never changes
// after Build returns.
type Snapshot struct {
	Dataset *dataset.Dataset
	Service *restaurant.Service
}

type BuildFunc func(ctx context.Context) (*Snapshot, error)

// Provider builds the snapshot on first use and hands the same result, or the
// same error, to every later caller.
type Provider struct {
	get func() (*Snapshot, error)
}

func NewProvider(build BuildFunc) *Provider {
	return &Provider{
		get: sync.OnceValues(func() (*Snapshot, error) {
			return build(context.Background())
		}),
	}
}

func (p *Provider) Snapshot() (*Snapshot, error) {
	return p.get()
}

// Builder runs the dataset pipeline and loads the records into the chosen
// repository backend.
func Builder(src dataset.Source, lookups dataset.Lookups, backend string) BuildFunc {
	return func(ctx context.Context) (*Snapshot, error) {
		ds, err := dataset.Build(ctx, src, lookups)
		if err != nil {
			log.Printf("[DATASET] build failed: %v", err)
			return nil, err
		}

		repo, err := newRepository(ctx, backend, ds.Restaurants)
		if err != nil {
			return nil, err
		}

		log.Printf("[REPOSITORY] %s backend holds %d restaurants", backend, len(ds.Restaurants))
		return &Snapshot{Dataset: ds, Service: restaurant.NewService(repo)}, nil
	}
}

func newRepository(ctx context.Context, backend string, records []dataset.Restaurant) (restaurant.Repository, error) {
	switch backend {
	case "", "memory":
		return restaurant.NewInMemoryRepository(records), nil
	case "sqlite":
		gdb, err := db.ConnectSQLite()
		if err != nil {
			return nil, err
		}
		if err := db.SeedRestaurants(ctx, gdb, records); err != nil {
			return nil, fmt.Errorf("seed sqlite: %w", err)
		}
		return restaurant.NewSQLiteRepository(gdb), nil
	default:
		return nil, fmt.Errorf("unknown repository backend %q", backend)
	}
}
