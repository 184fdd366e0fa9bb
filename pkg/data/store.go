package data

// Verification ring tiers, highest first. A seller earns a ring once
// their sales count reaches the tier threshold.
type RingTier struct {
	Name      string
	Color     string
	Threshold int
}

var RingTiers = []RingTier{
	{Name: "diamond", Color: "#B9F2FF", Threshold: 50},
	{Name: "platinum", Color: "#E5E4E2", Threshold: 31},
	{Name: "gold", Color: "#FFD700", Threshold: 16},
	{Name: "silver", Color: "#C0C0C0", Threshold: 6},
	{Name: "bronze", Color: "#CD7F32", Threshold: 1},
}

// TierFor returns the ring tier for a sales count. ok is false below the
// bronze threshold: no ring is shown.
func TierFor(salesCount int) (RingTier, bool) {
	for _, tier := range RingTiers {
		if salesCount >= tier.Threshold {
			return tier, true
		}
	}
	return RingTier{}, false
}

// Seller level progression.
const (
	xpPerSale  = 50
	xpPerLevel = 250
)

// StoreStats is the seller profile header data, derived from sales rows.
type StoreStats struct {
	Level         int
	CurrentXP     int
	XPToNextLevel int
	SalesCount    int
	TotalRevenue  float64
}

// StoreStats derives the seller's level, XP and revenue from completed
// sales.
func (r *Repository) StoreStats() (*StoreStats, error) {
	row := r.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(price), 0) FROM listings WHERE sold`)
	var stats StoreStats
	if err := row.Scan(&stats.SalesCount, &stats.TotalRevenue); err != nil {
		return nil, err
	}

	totalXP := stats.SalesCount * xpPerSale
	stats.Level = 1 + totalXP/xpPerLevel
	stats.CurrentXP = totalXP % xpPerLevel
	stats.XPToNextLevel = xpPerLevel
	return &stats, nil
}
