package pokedata

import (
	"github.com/gradeit/gradeit/pkg/data"
	"github.com/gradeit/gradeit/pkg/imaging"
)

type Catalog interface {
	Recognize(img *imaging.ImageData) (*RecognizedCard, error)
	Search(query string) ([]data.Card, error)
	Pricing(id string) (map[string]float64, error)
	Grade(img *imaging.ImageData) (float64, error)
}
