package data

import (
	"fmt"
	"time"
)

// Marketplace keys read from the pricing response. Any other
// marketplaces in the payload are ignored.
const (
	MarketplaceEbayRaw   = "eBay Raw"
	MarketplaceTCGPlayer = "TCGPlayer"
)

// UnknownCardName marks a scan the pipeline could not identify.
const UnknownCardName = "Unable to identify card"

// Scan record states. pending moves to exactly one of resolved or
// failed; both are terminal.
const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
	StatusFailed   = "failed"
)

// Card is a canonical catalog entry resolved via search.
type Card struct {
	ID     string
	Name   string
	Number string
	Set    string
}

// ScanRecord is one scan attempt and its evolving result. A nil AIGrade
// is a normal outcome: grading is best-effort.
type ScanRecord struct {
	ID            string
	SourceImage   string
	CardName      string
	CardNumber    string
	AIGrade       *float64
	EbayPrice     string
	TCGPrice      string
	PortfolioLink string
	ScannedAt     time.Time
	Status        string
}

// Listing is a seller store entry.
type Listing struct {
	ID             string
	CardName       string
	Price          float64
	VaultingStatus string // "vaulted", "seller-has", "unverified"
	PurchaseType   string // "instant", "both"
	CurrentBid     float64
	BidCount       int
	Sold           bool
	SoldAt         time.Time
}

// FormatPrice renders a marketplace or bid value as fixed-point currency.
// Zero (which is also what a missing marketplace key yields) renders as
// the "N/A" sentinel.
func FormatPrice(value float64) string {
	if value == 0 {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", value)
}
