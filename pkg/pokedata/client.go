package pokedata

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gradeit/gradeit/pkg/data"
	"github.com/gradeit/gradeit/pkg/imaging"
	"github.com/gradeit/gradeit/pkg/utils"
)

// Step failures as the rest of the app perceives them. Transport and HTTP
// errors are wrapped around these so callers can branch with errors.Is.
var (
	ErrRecognitionFailed    = errors.New("failed to recognize card from image")
	ErrRecognitionAmbiguous = errors.New("could not identify card from image")
	ErrSearchFailed         = errors.New("failed to search for card")
	ErrNoMatchFound         = errors.New("no cards found matching the image")
	ErrPricingFailed        = errors.New("failed to fetch pricing")
)

// RecognizedCard is the descriptor returned by the recognize endpoint.
type RecognizedCard struct {
	Name   string `json:"name"`
	Set    string `json:"set"`
	Number string `json:"number"`
}

type searchResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Set    string `json:"set"`
}

func (r *searchResult) ToCard() *data.Card {
	return &data.Card{
		ID:     r.ID,
		Name:   r.Name,
		Number: r.Number,
		Set:    r.Set,
	}
}

type Client struct {
	api *utils.API
}

func NewClient(baseURL string) *Client {
	return &Client{api: utils.NewAPI(baseURL)}
}

// postImage uploads img as a freshly built multipart body. The payload is
// rebuilt per call since recognize and grade are independent uploads.
func (c *Client) postImage(path string, img *imaging.ImageData, v any) (int, error) {
	body, contentType, err := imaging.MultipartBody(img)
	if err != nil {
		return 0, err
	}
	return c.api.Post(path, contentType, body, v)
}

// Recognize identifies the card on the image.
func (c *Client) Recognize(img *imaging.ImageData) (*RecognizedCard, error) {
	var out struct {
		Success bool            `json:"success"`
		Card    *RecognizedCard `json:"card"`
		Error   string          `json:"error"`
	}
	status, err := c.postImage("/pokedata/recognize", img, &out)
	if err != nil {
		if errors.Is(err, imaging.ErrMalformedImageData) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}
	if status != http.StatusOK {
		if out.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrRecognitionFailed, out.Error)
		}
		return nil, ErrRecognitionFailed
	}
	if !out.Success || out.Card == nil {
		return nil, ErrRecognitionAmbiguous
	}
	return out.Card, nil
}

// Search resolves a free-text query against the card catalog.
func (c *Client) Search(query string) ([]data.Card, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("asset_type", "CARD")

	var out struct {
		Results []searchResult `json:"results"`
	}
	if err := c.api.Get("/pokedata/search", params, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	cards := make([]data.Card, len(out.Results))
	for i, r := range out.Results {
		cards[i] = *r.ToCard()
	}
	return cards, nil
}

// Pricing returns marketplace name to raw value for a catalog id.
func (c *Client) Pricing(id string) (map[string]float64, error) {
	params := url.Values{}
	params.Set("id", id)
	params.Set("asset_type", "CARD")

	var out struct {
		Pricing struct {
			Pricing map[string]struct {
				Value float64 `json:"value"`
			} `json:"pricing"`
		} `json:"pricing"`
	}
	if err := c.api.Get("/pokedata/pricing", params, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPricingFailed, err)
	}
	prices := make(map[string]float64, len(out.Pricing.Pricing))
	for name, entry := range out.Pricing.Pricing {
		prices[name] = entry.Value
	}
	return prices, nil
}

// Grade re-uploads the image for an AI grade. Callers treat any error as
// "no grade"; the scan still succeeds without one.
func (c *Client) Grade(img *imaging.ImageData) (float64, error) {
	var out struct {
		Success bool    `json:"success"`
		Grade   float64 `json:"grade"`
	}
	status, err := c.postImage("/pokedata/grade", img, &out)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("bad status: %d", status)
	}
	if !out.Success || out.Grade == 0 {
		return 0, errors.New("no grade returned")
	}
	return out.Grade, nil
}
