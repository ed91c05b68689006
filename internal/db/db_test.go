package db

import (
	"context"
	"testing"

	"findarestaurant/internal/dataset"
)

func TestConnectSQLite_SeedAndRead(t *testing.T) {
	gdb, err := ConnectSQLite()
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	records := []dataset.Restaurant{
		{RestaurantID: 10, RestaurantName: "First", Country: "India", City: "Mumbai", AggregateRating: 4.1},
		{RestaurantID: 5, RestaurantName: "Second", Country: "Brazil", City: "Rio", AggregateRating: 3.3},
	}
	if err := SeedRestaurants(context.Background(), gdb, records); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var rows []Restaurant
	if err := gdb.Order("row_id").Find(&rows).Error; err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Record() != records[0] || rows[1].Record() != records[1] {
		t.Fatalf("round trip changed records: %+v", rows)
	}
}

func TestConnectSQLite_Isolated(t *testing.T) {
	a, err := ConnectSQLite()
	if err != nil {
		t.Fatal(err)
	}
	b, err := ConnectSQLite()
	if err != nil {
		t.Fatal(err)
	}

	if err := SeedRestaurants(context.Background(), a, []dataset.Restaurant{{RestaurantID: 1}}); err != nil {
		t.Fatal(err)
	}

	var count int64
	if err := b.Model(&Restaurant{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("databases share rows: %d", count)
	}
}

func TestSeedRestaurants_Empty(t *testing.T) {
	gdb, err := ConnectSQLite()
	if err != nil {
		t.Fatal(err)
	}
	if err := SeedRestaurants(context.Background(), gdb, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
