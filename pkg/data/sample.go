package data

import (
	"fmt"
	"time"
)

// Sample store data loaded on first run so the store and shop screens
// have something to show before any real sales exist.
var sampleListings = []Listing{
	{ID: "sample-1", CardName: "Shining Charizard Secret", Price: 165.00, VaultingStatus: "vaulted", PurchaseType: "both", CurrentBid: 145.00, BidCount: 3},
	{ID: "sample-2", CardName: "Mew", Price: 62.00, VaultingStatus: "seller-has", PurchaseType: "instant", CurrentBid: 42.00, BidCount: 2},
	{ID: "sample-3", CardName: "Blastoise EX", Price: 95.00, VaultingStatus: "vaulted", PurchaseType: "both", CurrentBid: 75.00, BidCount: 1},
	{ID: "sample-4", CardName: "Umbreon EX", Price: 110.00, VaultingStatus: "vaulted", PurchaseType: "instant", CurrentBid: 90.00, BidCount: 4},
	{ID: "sample-5", CardName: "Mega Charizard X", Price: 215.00, VaultingStatus: "seller-has", PurchaseType: "both", CurrentBid: 195.00, BidCount: 5},
	{ID: "sample-6", CardName: "Hidden Fates Elite Trainer Box", Price: 135.00, VaultingStatus: "vaulted", PurchaseType: "instant", CurrentBid: 115.00, BidCount: 2},
}

var sampleSales = []struct {
	name    string
	price   float64
	daysAgo int
}{
	{"Flareon EX", 45.00, 30},
	{"Celebrations Greninja", 28.00, 27},
	{"Zoroark VSTAR", 35.00, 25},
	{"Mew Duo EX", 88.00, 22},
	{"Umbreon and Espeon EX", 120.00, 19},
	{"Slabbed Pokemon Cards x3", 150.00, 16},
	{"Journey Together Booster", 42.00, 13},
	{"Obsidian Flames ETB", 98.00, 11},
	{"Destined Rivals Bundle", 76.00, 8},
	{"Phantasmal Flames Booster", 54.00, 6},
	{"151 Booster Bundle", 112.00, 3},
	{"White Flare ETB", 402.00, 1},
}

// seedListings populates the listings table once; an already-populated
// table is left alone.
func (r *Repository) seedListings() error {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM listings`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range sampleListings {
		if err := r.SaveListing(&sampleListings[i]); err != nil {
			return err
		}
	}

	now := time.Now()
	for i, sale := range sampleSales {
		l := Listing{
			ID:             fmt.Sprintf("sale-%02d", i+1),
			CardName:       sale.name,
			Price:          sale.price,
			VaultingStatus: "vaulted",
			PurchaseType:   "instant",
			Sold:           true,
			SoldAt:         now.AddDate(0, 0, -sale.daysAgo),
		}
		if err := r.SaveListing(&l); err != nil {
			return err
		}
	}
	return nil
}
