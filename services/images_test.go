package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"trend-writer/models"
	"trend-writer/providers"
)

type fakeImage struct {
	name  string
	img   *models.Image
	err   error
	calls int
}

func (f *fakeImage) Search(term string) (*models.Image, error) {
	f.calls++
	return f.img, f.err
}

func (f *fakeImage) Name() string { return f.name }

func TestResolveReturnsNilWhenAllFail(t *testing.T) {
	s := NewImageService(zap.NewNop(), []providers.ImageProvider{
		&fakeImage{name: "one", err: errors.New("down")},
		&fakeImage{name: "two"},
	})

	assert.Nil(t, s.Resolve("foo"))
}

func TestResolveFirstSuccessWins(t *testing.T) {
	hit := &models.Image{URL: "https://img.example.org/1.jpg", CreditText: "credit"}
	first := &fakeImage{name: "one", img: hit}
	second := &fakeImage{name: "two", img: &models.Image{URL: "https://img.example.org/2.jpg"}}
	s := NewImageService(zap.NewNop(), []providers.ImageProvider{first, second})

	got := s.Resolve("foo")
	assert.Equal(t, hit, got)
	// Kurzschluss: nach dem ersten Treffer wird nicht weiter probiert.
	assert.Equal(t, 0, second.calls)
}

func TestResolveAdvancesPastFailures(t *testing.T) {
	hit := &models.Image{URL: "https://img.example.org/3.jpg", CreditText: "credit"}
	s := NewImageService(zap.NewNop(), []providers.ImageProvider{
		&fakeImage{name: "one", err: errors.New("auth failed")},
		&fakeImage{name: "two"},
		&fakeImage{name: "three", img: hit},
	})

	assert.Equal(t, hit, s.Resolve("foo"))
}

func TestResolveIgnoresMalformedResult(t *testing.T) {
	// Ein Ergebnis ohne URL gilt als "kein Treffer bei diesem Provider".
	s := NewImageService(zap.NewNop(), []providers.ImageProvider{
		&fakeImage{name: "one", img: &models.Image{CreditText: "broken"}},
	})

	assert.Nil(t, s.Resolve("foo"))
}
