package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"trend-writer/config"
)

type fakeTrends struct {
	byRegion map[string][]string
}

func (f *fakeTrends) Trending(region string) ([]string, error) {
	terms, ok := f.byRegion[region]
	if !ok {
		return nil, fmt.Errorf("region %s nicht erreichbar", region)
	}
	return terms, nil
}

func newDiscovery(regions []string, trends *fakeTrends) *DiscoveryService {
	cfg := &config.Config{Regions: regions}
	return NewDiscoveryService(cfg, zap.NewNop(), trends)
}

func TestDiscoverDeduplicatesCaseInsensitive(t *testing.T) {
	trends := &fakeTrends{byRegion: map[string][]string{
		"united_states": {"Foo", "bar", "FOO"},
	}}
	s := newDiscovery([]string{"united_states"}, trends)

	assert.Equal(t, []string{"Foo", "bar"}, s.Discover())
}

func TestDiscoverSkipsFailingRegion(t *testing.T) {
	trends := &fakeTrends{byRegion: map[string][]string{
		"germany": {"Baz"},
	}}
	s := newDiscovery([]string{"united_states", "germany"}, trends)

	assert.Equal(t, []string{"Baz"}, s.Discover())
}

func TestDiscoverAllRegionsFailing(t *testing.T) {
	s := newDiscovery([]string{"united_states", "germany"}, &fakeTrends{})

	assert.Empty(t, s.Discover())
}

func TestDiscoverCapsTotal(t *testing.T) {
	var terms []string
	for i := 0; i < 30; i++ {
		terms = append(terms, fmt.Sprintf("term-%d", i))
	}
	trends := &fakeTrends{byRegion: map[string][]string{"united_states": terms}}
	s := newDiscovery([]string{"united_states"}, trends)

	got := s.Discover()
	assert.Len(t, got, maxTrendingTerms)
	assert.Equal(t, "term-0", got[0])
}

func TestDiscoverPreservesRegionOrder(t *testing.T) {
	trends := &fakeTrends{byRegion: map[string][]string{
		"united_states":  {"Alpha", "Beta"},
		"united_kingdom": {"beta", "Gamma"},
	}}
	s := newDiscovery([]string{"united_states", "united_kingdom"}, trends)

	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, s.Discover())
}
