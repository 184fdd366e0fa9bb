package components

import (
	"fmt"
	"strings"

	"github.com/gradeit/gradeit/pkg/app/styles"
	"github.com/gradeit/gradeit/pkg/services"
)

// Pipeline steps in order, for the step gauge.
var scanSteps = []string{"recognize", "search", "pricing", "grading"}

// ScanTracker keeps the latest pipeline step per in-flight record.
type ScanTracker struct {
	scans  map[string]*services.ScanProgress
	styles *styles.Styles
	width  int
}

func NewScanTracker(s *styles.Styles, width int) *ScanTracker {
	return &ScanTracker{
		scans:  make(map[string]*services.ScanProgress),
		styles: s,
		width:  width,
	}
}

func (t *ScanTracker) Update(progress services.ScanProgress) {
	if progress.Step == "complete" || progress.Step == "error" {
		// Terminal; the record list renders the outcome from here on.
		delete(t.scans, progress.RecordID)
		return
	}
	prog := progress // Copy
	t.scans[progress.RecordID] = &prog
}

func (t *ScanTracker) Clear() {
	t.scans = make(map[string]*services.ScanProgress)
}

func (t *ScanTracker) HasActive() bool {
	return len(t.scans) > 0
}

// Step returns the current step for a record, if it is still in flight.
func (t *ScanTracker) Step(recordID string) (string, bool) {
	if p, ok := t.scans[recordID]; ok {
		return p.Step, true
	}
	return "", false
}

func (t *ScanTracker) View() string {
	if len(t.scans) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(t.styles.Title.Render("Scanning"))
	b.WriteString("\n")

	for _, progress := range t.scans {
		current := stepIndex(progress.Step)
		bar := renderStepBar(current, len(scanSteps), t.width-4)
		b.WriteString(bar)
		b.WriteString("\n")
		b.WriteString(t.styles.StatusPending.Render(
			fmt.Sprintf("%s (%d/%d)", progress.Step, current+1, len(scanSteps))))
		b.WriteString("\n")
	}

	return b.String()
}

func stepIndex(step string) int {
	for i, s := range scanSteps {
		if s == step {
			return i
		}
	}
	return 0
}

func renderStepBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current+1) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
