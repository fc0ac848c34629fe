package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRelated struct {
	rising []string
	top    []string
	err    error
}

func (f *fakeRelated) Related(term string) ([]string, []string, error) {
	return f.rising, f.top, f.err
}

func TestExpandPrefersRisingOverTop(t *testing.T) {
	s := NewExpansionService(zap.NewNop(), &fakeRelated{
		rising: []string{"Foo news"},
		top:    []string{"Foo facts", "Foo news"},
	})

	assert.Equal(t, []string{"Foo news", "Foo facts"}, s.Expand("Foo", 5))
}

func TestExpandExcludesSeed(t *testing.T) {
	s := NewExpansionService(zap.NewNop(), &fakeRelated{
		rising: []string{"foo", "Foo timeline"},
		top:    []string{"FOO"},
	})

	assert.Equal(t, []string{"Foo timeline"}, s.Expand("Foo", 5))
}

func TestExpandFallbackOnEmptyResult(t *testing.T) {
	s := NewExpansionService(zap.NewNop(), &fakeRelated{})

	want := []string{
		"X explained",
		"X pros and cons",
		"X vs alternatives",
		"X latest news",
	}
	assert.Equal(t, want, s.Expand("X", 5))
}

func TestExpandFallbackOnProviderError(t *testing.T) {
	s := NewExpansionService(zap.NewNop(), &fakeRelated{err: errors.New("quota exceeded")})

	got := s.Expand("X", 5)
	assert.Len(t, got, 4)
	assert.Equal(t, "X explained", got[0])
}

func TestExpandTruncatesToLimit(t *testing.T) {
	s := NewExpansionService(zap.NewNop(), &fakeRelated{
		rising: []string{"a1", "a2", "a3"},
		top:    []string{"a4", "a5"},
	})

	assert.Equal(t, []string{"a1", "a2"}, s.Expand("Foo", 2))
}

func TestExpandTrimsCandidates(t *testing.T) {
	s := NewExpansionService(zap.NewNop(), &fakeRelated{
		rising: []string{"  Foo news  ", "   "},
	})

	assert.Equal(t, []string{"Foo news"}, s.Expand("Foo", 5))
}
