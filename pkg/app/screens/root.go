package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gradeit/gradeit/pkg/app/styles"
	"github.com/gradeit/gradeit/pkg/services"
)

type screenType int

const (
	scanView screenType = iota
	shopView
	storeView
	collectionView
	screenCount
)

var tabTitles = []string{"Scan", "Shop", "My Store", "Collection"}

// RootScreen owns the tab bar and forwards everything else to the
// active screen. The theme is injected once here and handed down; no
// screen reads global style state.
type RootScreen struct {
	styles *styles.Styles

	currentView screenType
	scan        *ScanScreen
	shop        *ShopScreen
	store       *StoreScreen
	collection  *CollectionScreen

	width  int
	height int
}

func NewRootScreen(ctrl *services.Controller, s *styles.Styles) *RootScreen {
	return &RootScreen{
		styles:      s,
		currentView: scanView,
		scan:        NewScanScreen(ctrl.Scanner, ctrl.Repo, s),
		shop:        NewShopScreen(ctrl.Catalog, s),
		store:       NewStoreScreen(ctrl.Repo, s),
		collection:  NewCollectionScreen(ctrl.Repo, s),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.scan.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			// Don't steal "q" from a focused text input.
			if !r.typing() {
				return r, tea.Quit
			}
		case "tab":
			r.currentView = (r.currentView + 1) % screenCount
			switch r.currentView {
			case scanView:
				cmd = r.scan.Init()
			case shopView:
				cmd = r.shop.Init()
			case storeView:
				cmd = r.store.Init()
			case collectionView:
				cmd = r.collection.Init()
			}
			return r, cmd
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "scan":
			r.currentView = scanView
			cmd = r.scan.Init()
		case "shop":
			r.currentView = shopView
			cmd = r.shop.Init()
		case "store":
			r.currentView = storeView
			cmd = r.store.Init()
		case "collection":
			r.currentView = collectionView
			cmd = r.collection.Init()
		}
		return r, cmd
	}

	// Forward message to active screen
	switch r.currentView {
	case scanView:
		newModel, newCmd := r.scan.Update(msg)
		r.scan = newModel.(*ScanScreen)
		return r, newCmd
	case shopView:
		newModel, newCmd := r.shop.Update(msg)
		r.shop = newModel.(*ShopScreen)
		return r, newCmd
	case storeView:
		newModel, newCmd := r.store.Update(msg)
		r.store = newModel.(*StoreScreen)
		return r, newCmd
	case collectionView:
		newModel, newCmd := r.collection.Update(msg)
		r.collection = newModel.(*CollectionScreen)
		return r, newCmd
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()

	var content string
	switch r.currentView {
	case scanView:
		content = r.scan.View()
	case shopView:
		content = r.shop.View()
	case storeView:
		content = r.store.View()
	case collectionView:
		content = r.collection.View()
	}

	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) typing() bool {
	switch r.currentView {
	case scanView:
		return r.scan.InputFocused()
	case shopView:
		return r.shop.InputFocused()
	}
	return false
}

func (r *RootScreen) renderTabs() string {
	rendered := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if screenType(i) == r.currentView {
			rendered[i] = r.styles.ActiveTab.Render(title)
		} else {
			rendered[i] = r.styles.InactiveTab.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// SwitchScreenMsg asks the root to change the active screen.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}
