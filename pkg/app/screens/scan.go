package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gradeit/gradeit/pkg/app/components"
	"github.com/gradeit/gradeit/pkg/app/styles"
	"github.com/gradeit/gradeit/pkg/data"
	"github.com/gradeit/gradeit/pkg/services"
)

// ScanScreen drives the scan-and-grade workflow: enter an image path or
// data: URI, watch the record resolve in place. Scans already in flight
// keep running while new ones start.
type ScanScreen struct {
	scanner *services.Scanner
	repo    *data.Repository
	styles  *styles.Styles

	input        textinput.Model
	cardList     *components.CardList
	tracker      *components.ScanTracker
	confirmClear bool
	notice       string
	width        int
	height       int
	err          error
}

func NewScanScreen(scanner *services.Scanner, repo *data.Repository, s *styles.Styles) *ScanScreen {
	ti := textinput.New()
	ti.Placeholder = "Path to card image (or data: URI)..."
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 60

	return &ScanScreen{
		scanner:  scanner,
		repo:     repo,
		styles:   s,
		input:    ti,
		cardList: components.NewCardList(s),
		tracker:  components.NewScanTracker(s, 80),
	}
}

func (s *ScanScreen) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, s.listenForProgress)
}

func (s *ScanScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.cardList.Width = msg.Width - 4
		s.cardList.Height = msg.Height - 12
		s.tracker = components.NewScanTracker(s.styles, msg.Width-4)

	case tea.KeyMsg:
		if s.confirmClear {
			if msg.String() == "y" {
				s.scanner.Records().Clear()
				s.cardList.SetItems(nil)
			}
			s.confirmClear = false
			return s, nil
		}

		switch msg.String() {
		case "enter":
			if s.input.Focused() {
				ref := s.input.Value()
				if ref != "" {
					s.input.SetValue("")
					s.notice = ""
					return s, s.startScan(ref)
				}
			}

		case "esc":
			if s.input.Focused() {
				s.input.Blur()
			} else {
				s.input.Focus()
				cmd = textinput.Blink
			}

		case "up", "k":
			if !s.input.Focused() {
				s.cardList.Prev()
			}

		case "down", "j":
			if !s.input.Focused() {
				s.cardList.Next()
			}

		case "d":
			if !s.input.Focused() {
				if selected := s.cardList.Selected(); selected != nil {
					s.scanner.Records().Delete(selected.ID)
					s.refreshItems(false)
				}
			}

		case "c":
			if !s.input.Focused() && len(s.cardList.Items) > 0 {
				s.confirmClear = true
			}

		case "s":
			if !s.input.Focused() {
				if selected := s.cardList.Selected(); selected != nil && selected.Status == data.StatusResolved {
					return s, s.saveCard(*selected)
				}
			}
		}

	case scanStartedMsg:
		if msg.err != nil {
			// Acquisition failed: no record was created.
			s.notice = msg.err.Error()
			return s, nil
		}
		s.refreshItems(true)

	case services.ScanProgress:
		s.tracker.Update(msg)
		if msg.Step == "error" && msg.Err != nil {
			s.notice = msg.Err.Error()
		}
		s.refreshItems(false)
		return s, s.listenForProgress

	case cardSavedMsg:
		if msg.err != nil {
			s.err = msg.err
		} else {
			s.notice = fmt.Sprintf("Saved %s to collection", msg.name)
		}
	}

	if s.input.Focused() {
		s.input, cmd = s.input.Update(msg)
	}

	return s, cmd
}

func (s *ScanScreen) InputFocused() bool {
	return s.input.Focused()
}

func (s *ScanScreen) refreshItems(followNewest bool) {
	s.cardList.SetItems(s.scanner.Records().Snapshot())
	if followNewest {
		s.cardList.SelectLast()
	}
}

func (s *ScanScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := s.styles.Title.Render("⭐ Scan Your Cards")
	sub := s.styles.Muted.Render(
		"Scan a card, get an AI grade, check real prices, share a portfolio link.")

	inputStyle := s.styles.Input
	if s.input.Focused() {
		inputStyle = s.styles.FocusedInput
	}
	inputView := inputStyle.Render(s.input.View())

	var noticeMsg string
	if s.notice != "" {
		noticeMsg = s.styles.StatusFailed.Render(s.notice) + "\n\n"
	}
	if s.err != nil {
		noticeMsg += s.styles.StatusFailed.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	}

	if s.confirmClear {
		noticeMsg += s.styles.StatusPending.Render("Clear all scanned cards? (y/n)") + "\n\n"
	}

	listView := s.cardList.View()
	progressView := s.tracker.View()

	help := s.styles.Help.Render(
		"enter: scan • esc: switch focus • ↑/k ↓/j: navigate • s: save • d: delete • c: clear all • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s%s\n%s\n%s",
		header, sub, inputView, noticeMsg, listView, progressView, help)
}

// Messages
type scanStartedMsg struct {
	id  string
	err error
}

type cardSavedMsg struct {
	name string
	err  error
}

// Commands
func (s *ScanScreen) startScan(ref string) tea.Cmd {
	return func() tea.Msg {
		id, err := s.scanner.Start(ref)
		if err != nil {
			return scanStartedMsg{err: err}
		}
		// Run the pipeline in the background; progress arrives over the
		// scanner's channel. The user can start another scan meanwhile.
		go s.scanner.Process(id)
		return scanStartedMsg{id: id}
	}
}

func (s *ScanScreen) saveCard(rec data.ScanRecord) tea.Cmd {
	return func() tea.Msg {
		err := s.repo.SaveCard(&rec)
		return cardSavedMsg{name: rec.CardName, err: err}
	}
}

func (s *ScanScreen) listenForProgress() tea.Msg {
	return <-s.scanner.GetProgressChannel()
}
