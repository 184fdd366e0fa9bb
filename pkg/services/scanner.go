package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/gradeit/gradeit/pkg/data"
	"github.com/gradeit/gradeit/pkg/imaging"
	"github.com/gradeit/gradeit/pkg/pokedata"
)

// ScanProgress reports pipeline steps for one record.
type ScanProgress struct {
	RecordID string
	Step     string // "recognize", "search", "pricing", "grading", "complete", "error"
	Err      error
}

// Scanner runs the per-card pipeline: payload build, recognize, search,
// pricing, best-effort grade, then merge into the shared record list.
// Each scan is strictly sequential; separate scans are independent.
type Scanner struct {
	catalog       pokedata.Catalog
	records       *RecordList
	portfolioBase string
	progressChan  chan ScanProgress
}

func NewScanner(catalog pokedata.Catalog, portfolioBase string) *Scanner {
	return &Scanner{
		catalog:       catalog,
		records:       NewRecordList(),
		portfolioBase: strings.TrimSuffix(portfolioBase, "/"),
		progressChan:  make(chan ScanProgress, 100),
	}
}

func (s *Scanner) Records() *RecordList {
	return s.records
}

// GetProgressChannel returns the channel for receiving scan progress updates.
func (s *Scanner) GetProgressChannel() <-chan ScanProgress {
	return s.progressChan
}

// Start validates the image handle and appends a pending record for it.
// An unreadable handle aborts here, before any record exists. The
// returned id keys every later update.
func (s *Scanner) Start(ref string) (string, error) {
	if err := imaging.Acquire(ref); err != nil {
		return "", err
	}
	rec := data.ScanRecord{
		ID:          uuid.NewString(),
		SourceImage: ref,
		ScannedAt:   time.Now(),
		Status:      data.StatusPending,
	}
	s.records.Append(rec)
	return rec.ID, nil
}

// Process runs the pipeline for a started record to completion. The
// record ends resolved or failed; there is no retry and no cancellation.
func (s *Scanner) Process(id string) {
	rec, ok := s.records.Get(id)
	if !ok {
		return
	}
	logger := log.WithField("record", id)

	img, err := imaging.Resolve(rec.SourceImage)
	if err != nil {
		s.fail(id, err)
		return
	}

	s.sendProgress(ScanProgress{RecordID: id, Step: "recognize"})
	card, err := s.catalog.Recognize(img)
	if err != nil {
		s.fail(id, err)
		return
	}
	logger.WithField("name", card.Name).Debug("card recognized")

	s.sendProgress(ScanProgress{RecordID: id, Step: "search"})
	results, err := s.catalog.Search(BuildQuery(card))
	if err != nil {
		s.fail(id, err)
		return
	}
	if len(results) == 0 {
		s.fail(id, pokedata.ErrNoMatchFound)
		return
	}
	// First result is taken unconditionally as the canonical match.
	match := results[0]

	s.sendProgress(ScanProgress{RecordID: id, Step: "pricing"})
	prices, err := s.catalog.Pricing(match.ID)
	if err != nil {
		s.fail(id, err)
		return
	}

	// Grading is best-effort: any failure just means no grade.
	s.sendProgress(ScanProgress{RecordID: id, Step: "grading"})
	var grade *float64
	if g, err := s.catalog.Grade(img); err == nil {
		grade = &g
	} else {
		logger.WithError(err).Debug("grading skipped")
	}

	portfolioLink := fmt.Sprintf("%s/portfolio/%s", s.portfolioBase, id)

	s.records.Update(id, func(r *data.ScanRecord) {
		r.CardName = match.Name
		r.CardNumber = match.Number
		r.AIGrade = grade
		r.EbayPrice = data.FormatPrice(prices[data.MarketplaceEbayRaw])
		r.TCGPrice = data.FormatPrice(prices[data.MarketplaceTCGPlayer])
		r.PortfolioLink = portfolioLink
		r.Status = data.StatusResolved
	})
	s.sendProgress(ScanProgress{RecordID: id, Step: "complete"})
}

// Scan is Start followed by Process.
func (s *Scanner) Scan(ref string) (string, error) {
	id, err := s.Start(ref)
	if err != nil {
		return "", err
	}
	s.Process(id)
	return id, nil
}

// fail marks the record with the unidentified sentinel, clears any
// partial result fields and surfaces the failure.
func (s *Scanner) fail(id string, err error) {
	log.WithField("record", id).WithError(err).Warn("scan failed")
	s.records.Update(id, func(r *data.ScanRecord) {
		r.CardName = data.UnknownCardName
		r.CardNumber = ""
		r.AIGrade = nil
		r.EbayPrice = ""
		r.TCGPrice = ""
		r.Status = data.StatusFailed
	})
	s.sendProgress(ScanProgress{RecordID: id, Step: "error", Err: err})
}

// BuildQuery joins the recognized name with set and number when present.
func BuildQuery(card *pokedata.RecognizedCard) string {
	parts := []string{card.Name}
	if card.Set != "" {
		parts = append(parts, card.Set)
	}
	if card.Number != "" {
		parts = append(parts, card.Number)
	}
	return strings.Join(parts, " ")
}

// sendProgress sends a progress update (non-blocking).
func (s *Scanner) sendProgress(progress ScanProgress) {
	select {
	case s.progressChan <- progress:
	default:
		// Channel full, skip this update
	}
}
