package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gradeit/gradeit/pkg/app/components"
	"github.com/gradeit/gradeit/pkg/app/styles"
	"github.com/gradeit/gradeit/pkg/data"
)

// CollectionScreen lists the cards saved from past scans.
type CollectionScreen struct {
	repo     *data.Repository
	styles   *styles.Styles
	cardList *components.CardList
	width    int
	height   int
	err      error
}

func NewCollectionScreen(repo *data.Repository, s *styles.Styles) *CollectionScreen {
	return &CollectionScreen{
		repo:     repo,
		styles:   s,
		cardList: components.NewCardList(s),
	}
}

func (s *CollectionScreen) Init() tea.Cmd {
	return s.loadCollection
}

func (s *CollectionScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.cardList.Width = msg.Width - 4
		s.cardList.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.cardList.Prev()
		case "down", "j":
			s.cardList.Next()
		case "r":
			return s, s.loadCollection
		case "d":
			if selected := s.cardList.Selected(); selected != nil {
				return s, s.deleteCard(selected.ID)
			}
		}

	case collectionLoadedMsg:
		s.cardList.SetItems(msg.items)
		s.err = msg.err

	case cardDeletedMsg:
		if msg.err != nil {
			s.err = msg.err
		}
		return s, s.loadCollection
	}

	return s, nil
}

func (s *CollectionScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := s.styles.Title.Render("📇 Collection")

	var errorMsg string
	if s.err != nil {
		errorMsg = s.styles.StatusFailed.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	listView := s.cardList.View()

	help := s.styles.Help.Render(
		"↑/k: up • ↓/j: down • d: delete • r: refresh • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, errorMsg, listView, help)
}

// Messages
type collectionLoadedMsg struct {
	items []data.ScanRecord
	err   error
}

type cardDeletedMsg struct {
	err error
}

// Commands
func (s *CollectionScreen) loadCollection() tea.Msg {
	cards, err := s.repo.ListCards()
	if err != nil {
		return collectionLoadedMsg{err: err}
	}

	items := make([]data.ScanRecord, len(cards))
	for i, card := range cards {
		items[i] = *card
	}

	return collectionLoadedMsg{items: items}
}

func (s *CollectionScreen) deleteCard(id string) tea.Cmd {
	return func() tea.Msg {
		err := s.repo.DeleteCard(id)
		return cardDeletedMsg{err: err}
	}
}
