package pokedata

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradeit/gradeit/pkg/imaging"
)

func testImage() *imaging.ImageData {
	return &imaging.ImageData{
		Content:     []byte("fake-jpeg-bytes"),
		ContentType: "image/jpeg",
		SourceURI:   "card.jpg",
	}
}

func TestClient_Recognize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokedata/recognize", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		require.NoError(t, r.ParseMultipartForm(10<<20))
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))

		fmt.Fprint(w, `{"success":true,"card":{"name":"Charizard","set":"Base","number":"4"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	card, err := client.Recognize(testImage())
	assert.NoError(t, err)
	assert.Equal(t, "Charizard", card.Name)
	assert.Equal(t, "Base", card.Set)
	assert.Equal(t, "4", card.Number)
}

func TestClient_Recognize_Ambiguous(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":false}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	card, err := client.Recognize(testImage())
	assert.Nil(t, card)
	assert.ErrorIs(t, err, ErrRecognitionAmbiguous)
}

func TestClient_Recognize_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success":false,"error":"model unavailable"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Recognize(testImage())
	assert.ErrorIs(t, err, ErrRecognitionFailed)
	assert.Contains(t, err.Error(), "model unavailable")
}

func TestClient_Recognize_MalformedImage(t *testing.T) {
	client := NewClient("http://unused.invalid")
	_, err := client.Recognize(&imaging.ImageData{})
	assert.ErrorIs(t, err, imaging.ErrMalformedImageData)
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokedata/search", r.URL.Path)
		assert.Equal(t, "Charizard Base 4", r.URL.Query().Get("query"))
		assert.Equal(t, "CARD", r.URL.Query().Get("asset_type"))

		fmt.Fprint(w, `{"results":[
			{"id":"abc123","name":"Charizard","number":"4","set":"Base"},
			{"id":"def456","name":"Charizard","number":"4","set":"Base 2"}
		]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	cards, err := client.Search("Charizard Base 4")
	assert.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.Equal(t, "abc123", cards[0].ID)
	assert.Equal(t, "Charizard", cards[0].Name)
	assert.Equal(t, "Base", cards[0].Set)
}

func TestClient_Search_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	cards, err := client.Search("nothing")
	assert.NoError(t, err)
	assert.Empty(t, cards)
}

func TestClient_Search_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Search("Charizard")
	assert.ErrorIs(t, err, ErrSearchFailed)
}

func TestClient_Pricing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokedata/pricing", r.URL.Path)
		assert.Equal(t, "abc123", r.URL.Query().Get("id"))
		assert.Equal(t, "CARD", r.URL.Query().Get("asset_type"))

		fmt.Fprint(w, `{"pricing":{"pricing":{
			"eBay Raw":{"value":120},
			"TCGPlayer":{"value":95.5},
			"PSA 10":{"value":1400}
		}}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	prices, err := client.Pricing("abc123")
	assert.NoError(t, err)
	assert.Equal(t, 120.0, prices["eBay Raw"])
	assert.Equal(t, 95.5, prices["TCGPlayer"])
	assert.Equal(t, 1400.0, prices["PSA 10"])
}

func TestClient_Pricing_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Pricing("missing")
	assert.ErrorIs(t, err, ErrPricingFailed)
}

func TestClient_Grade(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokedata/grade", r.URL.Path)
		fmt.Fprint(w, `{"success":true,"grade":9}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	grade, err := client.Grade(testImage())
	assert.NoError(t, err)
	assert.Equal(t, 9.0, grade)
}

func TestClient_Grade_NoGrade(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"grade":0}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Grade(testImage())
	assert.Error(t, err)
}

func TestClient_Grade_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Grade(testImage())
	assert.Error(t, err)
}
