package services

import (
	"github.com/gradeit/gradeit/pkg/config"
	"github.com/gradeit/gradeit/pkg/data"
	"github.com/gradeit/gradeit/pkg/pokedata"
)

// Controller wires the API client, the collection repository and the
// scan pipeline from one config.
type Controller struct {
	Catalog *pokedata.Client
	Repo    *data.Repository
	Scanner *Scanner
}

func NewController(cfg config.Config) *Controller {
	catalog := pokedata.NewClient(cfg.APIBaseURL)
	repo := data.NewDuckDBRepository(cfg.DBPath)
	scanner := NewScanner(catalog, cfg.PortfolioBaseURL)
	return &Controller{Catalog: catalog, Repo: repo, Scanner: scanner}
}
