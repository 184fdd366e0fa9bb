package data

import (
	"testing"
	"time"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		sales    int
		wantName string
		wantOK   bool
	}{
		{0, "", false},
		{1, "bronze", true},
		{5, "bronze", true},
		{6, "silver", true},
		{15, "silver", true},
		{16, "gold", true},
		{30, "gold", true},
		{31, "platinum", true},
		{49, "platinum", true},
		{50, "diamond", true},
		{200, "diamond", true},
	}

	for _, tt := range tests {
		tier, ok := TierFor(tt.sales)
		if ok != tt.wantOK {
			t.Errorf("TierFor(%d) ok = %v, want %v", tt.sales, ok, tt.wantOK)
			continue
		}
		if tier.Name != tt.wantName {
			t.Errorf("TierFor(%d) = %q, want %q", tt.sales, tier.Name, tt.wantName)
		}
	}
}

func TestStoreStats(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	prices := []float64{45, 88, 35, 120, 150, 42, 98}
	for i, price := range prices {
		l := Listing{
			ID:     string(rune('a' + i)),
			Price:  price,
			Sold:   true,
			SoldAt: now.AddDate(0, 0, -i),
		}
		if err := repo.SaveListing(&l); err != nil {
			t.Fatalf("Failed to save sale: %v", err)
		}
	}

	stats, err := repo.StoreStats()
	if err != nil {
		t.Fatalf("Failed to compute store stats: %v", err)
	}

	if stats.SalesCount != 7 {
		t.Errorf("Expected 7 sales, got %d", stats.SalesCount)
	}

	// 7 sales * 50 XP = 350 XP -> level 2 with 100 XP into it
	if stats.Level != 2 {
		t.Errorf("Expected level 2, got %d", stats.Level)
	}
	if stats.CurrentXP != 100 {
		t.Errorf("Expected 100 current XP, got %d", stats.CurrentXP)
	}
	if stats.XPToNextLevel != 250 {
		t.Errorf("Expected 250 XP per level, got %d", stats.XPToNextLevel)
	}

	wantRevenue := 578.0
	if stats.TotalRevenue != wantRevenue {
		t.Errorf("Expected revenue %.2f, got %.2f", wantRevenue, stats.TotalRevenue)
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	stats, err := repo.StoreStats()
	if err != nil {
		t.Fatalf("Failed to compute store stats: %v", err)
	}

	if stats.SalesCount != 0 || stats.TotalRevenue != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}
	if stats.Level != 1 {
		t.Errorf("Expected level 1 with no sales, got %d", stats.Level)
	}
}
