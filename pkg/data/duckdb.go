package data

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
	log "github.com/sirupsen/logrus"
)

const schema = `
CREATE TABLE IF NOT EXISTS cards (
	id VARCHAR PRIMARY KEY,
	name VARCHAR NOT NULL,
	number VARCHAR,
	grade DOUBLE,
	ebay_price VARCHAR,
	tcg_price VARCHAR,
	portfolio_link VARCHAR,
	scanned_at TIMESTAMP
);
CREATE TABLE IF NOT EXISTS listings (
	id VARCHAR PRIMARY KEY,
	card_name VARCHAR NOT NULL,
	price DOUBLE NOT NULL,
	vaulting_status VARCHAR,
	purchase_type VARCHAR,
	current_bid DOUBLE,
	bid_count INTEGER,
	sold BOOLEAN DEFAULT FALSE,
	sold_at TIMESTAMP
);
`

// InitDuckDB opens (creating if needed) the collection database at path
// and ensures the schema exists.
func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

type Repository struct {
	db *sql.DB
}

var duckDB *sql.DB

// NewDuckDBRepository returns a repository over the process-wide
// database, opening and seeding it on first use.
func NewDuckDBRepository(path string) *Repository {
	if duckDB == nil {
		db, err := InitDuckDB(path)
		if err != nil {
			log.Fatal(err)
		}
		duckDB = db
		repo := &Repository{db: db}
		if err := repo.seedListings(); err != nil {
			log.WithError(err).Warn("could not seed sample listings")
		}
	}
	return &Repository{db: duckDB}
}

// SaveCard persists a resolved scan into the collection.
func (r *Repository) SaveCard(rec *ScanRecord) error {
	var grade sql.NullFloat64
	if rec.AIGrade != nil {
		grade = sql.NullFloat64{Float64: *rec.AIGrade, Valid: true}
	}
	_, err := r.db.Exec(`
		INSERT OR REPLACE INTO cards (id, name, number, grade, ebay_price, tcg_price, portfolio_link, scanned_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CardName, rec.CardNumber, grade,
		rec.EbayPrice, rec.TCGPrice, rec.PortfolioLink, rec.ScannedAt,
	)
	return err
}

// GetCard looks up a saved card by id; nil when not found.
func (r *Repository) GetCard(id string) (*ScanRecord, error) {
	row := r.db.QueryRow(`
		SELECT id, name, number, grade, ebay_price, tcg_price, portfolio_link, scanned_at
		FROM cards WHERE id = ?`, id)
	rec, err := scanCardRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

// ListCards returns all saved cards, newest first.
func (r *Repository) ListCards() ([]*ScanRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, name, number, grade, ebay_price, tcg_price, portfolio_link, scanned_at
		FROM cards ORDER BY scanned_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*ScanRecord
	for rows.Next() {
		rec, err := scanCardRow(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, rec)
	}
	return cards, rows.Err()
}

// DeleteCard removes a saved card from the collection.
func (r *Repository) DeleteCard(id string) error {
	_, err := r.db.Exec(`DELETE FROM cards WHERE id = ?`, id)
	return err
}

// SaveListing inserts or updates a store listing.
func (r *Repository) SaveListing(l *Listing) error {
	var soldAt sql.NullTime
	if !l.SoldAt.IsZero() {
		soldAt = sql.NullTime{Time: l.SoldAt, Valid: true}
	}
	_, err := r.db.Exec(`
		INSERT OR REPLACE INTO listings (id, card_name, price, vaulting_status, purchase_type, current_bid, bid_count, sold, sold_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.CardName, l.Price, l.VaultingStatus, l.PurchaseType,
		l.CurrentBid, l.BidCount, l.Sold, soldAt,
	)
	return err
}

// ListListings returns store listings. When vaultedOnly is set, only
// vaulted entries are returned.
func (r *Repository) ListListings(vaultedOnly bool) ([]*Listing, error) {
	q := `SELECT id, card_name, price, vaulting_status, purchase_type, current_bid, bid_count, sold, sold_at
		FROM listings WHERE NOT sold`
	if vaultedOnly {
		q += ` AND vaulting_status = 'vaulted'`
	}
	q += ` ORDER BY price DESC`

	rows, err := r.db.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*Listing
	for rows.Next() {
		l, err := scanListingRow(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// Sales returns completed sales in chronological order.
func (r *Repository) Sales() ([]*Listing, error) {
	rows, err := r.db.Query(`
		SELECT id, card_name, price, vaulting_status, purchase_type, current_bid, bid_count, sold, sold_at
		FROM listings WHERE sold ORDER BY sold_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*Listing
	for rows.Next() {
		l, err := scanListingRow(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, l)
	}
	return sales, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCardRow(row rowScanner) (*ScanRecord, error) {
	var rec ScanRecord
	var grade sql.NullFloat64
	var scannedAt time.Time
	err := row.Scan(&rec.ID, &rec.CardName, &rec.CardNumber, &grade,
		&rec.EbayPrice, &rec.TCGPrice, &rec.PortfolioLink, &scannedAt)
	if err != nil {
		return nil, err
	}
	if grade.Valid {
		g := grade.Float64
		rec.AIGrade = &g
	}
	rec.ScannedAt = scannedAt
	rec.Status = StatusResolved
	return &rec, nil
}

func scanListingRow(row rowScanner) (*Listing, error) {
	var l Listing
	var soldAt sql.NullTime
	err := row.Scan(&l.ID, &l.CardName, &l.Price, &l.VaultingStatus,
		&l.PurchaseType, &l.CurrentBid, &l.BidCount, &l.Sold, &soldAt)
	if err != nil {
		return nil, err
	}
	if soldAt.Valid {
		l.SoldAt = soldAt.Time
	}
	return &l, nil
}
