package db

import (
	"context"
	"fmt"
	"log"

	"findarestaurant/internal/dataset"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Restaurant is the table layout of one dataset record.
type Restaurant struct {
	RowID             uint  `gorm:"primaryKey;autoIncrement"`
	RestaurantID      int64 `gorm:"index"`
	RestaurantName    string
	CountryCode       int
	Country           string `gorm:"index"`
	City              string `gorm:"index"`
	Cuisines          string `gorm:"index"`
	PriceRange        int
	PriceType         string
	RatingColor       string
	ColorName         string
	AggregateRating   float64
	Votes             int64
	AverageCostForTwo float64
	Latitude          float64
	Longitude         float64
}

func (Restaurant) TableName() string { return "restaurants" }

// Record converts a row back into the dataset type.
func (r Restaurant) Record() dataset.Restaurant {
	return dataset.Restaurant{
		RestaurantID:      r.RestaurantID,
		RestaurantName:    r.RestaurantName,
		CountryCode:       r.CountryCode,
		Country:           r.Country,
		City:              r.City,
		Cuisines:          r.Cuisines,
		PriceRange:        r.PriceRange,
		PriceType:         r.PriceType,
		RatingColor:       r.RatingColor,
		ColorName:         r.ColorName,
		AggregateRating:   r.AggregateRating,
		Votes:             r.Votes,
		AverageCostForTwo: r.AverageCostForTwo,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
	}
}

// ConnectSQLite opens a private in-memory database. It lives as long as the
// returned handle: the pool keeps its single connection open.
func ConnectSQLite() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	if err := initSchema(gdb); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	log.Println("✅ In-memory SQLite ready")
	return gdb, nil
}

func initSchema(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&Restaurant{})
}

// SeedRestaurants copies the snapshot into the restaurants table, keeping the
// record order in row_id.
func SeedRestaurants(ctx context.Context, gdb *gorm.DB, records []dataset.Restaurant) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]Restaurant, len(records))
	for i, r := range records {
		rows[i] = Restaurant{
			RestaurantID:      r.RestaurantID,
			RestaurantName:    r.RestaurantName,
			CountryCode:       r.CountryCode,
			Country:           r.Country,
			City:              r.City,
			Cuisines:          r.Cuisines,
			PriceRange:        r.PriceRange,
			PriceType:         r.PriceType,
			RatingColor:       r.RatingColor,
			ColorName:         r.ColorName,
			AggregateRating:   r.AggregateRating,
			Votes:             r.Votes,
			AverageCostForTwo: r.AverageCostForTwo,
			Latitude:          r.Latitude,
			Longitude:         r.Longitude,
		}
	}

	if err := gdb.WithContext(ctx).CreateInBatches(rows, 500).Error; err != nil {
		return err
	}

	log.Printf("[REPOSITORY] seeded %d restaurants", len(rows))
	return nil
}
