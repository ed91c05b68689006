package main

import (
	"context"
	"log"

	"findarestaurant/internal/config"
	"findarestaurant/internal/dashboard"
	"findarestaurant/internal/dataset"
	"findarestaurant/internal/router"
	"findarestaurant/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Config: %v", err)
	}

	// ───────────────────────── LOOKUPS ─────────────────────────
	lookups := dataset.DefaultLookups()
	if cfg.LookupsPath != "" {
		lookups, err = dataset.LoadLookups(cfg.LookupsPath)
		if err != nil {
			log.Fatalf("❌ Lookups: %v", err)
		}
	}

	// ───────────────────────── SOURCE ─────────────────────────
	var src dataset.Source = dataset.FileSource(cfg.DatasetPath)
	if cfg.UseR2() {
		r2Client, err := storage.NewR2Client(context.Background(), cfg.R2)
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		src = r2Client.Object(cfg.DatasetPath)
	}
	log.Printf("[DATASET] source=%s backend=%s", src, cfg.Backend)

	// ───────────────────────── DATASET ─────────────────────────
	provider := dashboard.NewProvider(dashboard.Builder(src, lookups, cfg.Backend))

	// A failed warm-up is only logged: every page reports the same error.
	if cfg.WarmDataset {
		if snap, err := provider.Snapshot(); err != nil {
			log.Printf("⚠️  Dataset unavailable: %v", err)
		} else {
			log.Printf("✅ Dataset ready (%d restaurants)", len(snap.Dataset.Restaurants))
		}
	}

	// ───────────────────────── GIN ─────────────────────────
	handler := dashboard.NewHandler(provider, dashboard.NewPageControls(lookups))
	r := router.NewRouter(handler, cfg.CORSOrigins)

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 Dashboard running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
