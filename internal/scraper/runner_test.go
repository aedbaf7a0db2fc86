package scraper

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct{}

func (stubFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return "<html></html>", nil
}

// stubScraper emits one posting per call, tagged with the URL it was given,
// or fails entirely when fail is set.
type stubScraper struct {
	site Site
	fail bool
}

func (s stubScraper) Site() Site { return s.site }

func (s stubScraper) Scrape(ctx context.Context, fetcher Fetcher, url string, maxPosts int) ([]Posting, error) {
	if s.fail {
		return nil, errors.New("simulated HTTP 500")
	}
	return []Posting{{Site: s.site, Title: "job", Link: url}}, nil
}

func testTargets() []Target {
	return []Target{
		{Site: SiteIndeed, URL: "https://www.indeed.com/jobs?q=go&l="},
		{Site: SiteMonster, URL: "https://www.monster.com/jobs/search/?q=go&where="},
		{Site: SiteSimplyHired, URL: "https://www.simplyhired.com/search?q=go&l="},
		{Site: SiteIndeed, URL: "https://www.indeed.com/jobs?q=sql&l="},
		{Site: SiteMonster, URL: "https://www.monster.com/jobs/search/?q=sql&where="},
		{Site: SiteSimplyHired, URL: "https://www.simplyhired.com/search?q=sql&l="},
	}
}

func fullRegistry(failing map[Site]bool) map[Site]Scraper {
	registry := make(map[Site]Scraper)
	for _, site := range []Site{SiteIndeed, SiteMonster, SiteSimplyHired} {
		registry[site] = stubScraper{site: site, fail: failing[site]}
	}
	return registry
}

func TestScrapeAll_PreservesTargetOrder(t *testing.T) {
	targets := testTargets()

	postings := ScrapeAll(context.Background(), stubFetcher{}, fullRegistry(nil), targets, 5)

	require.Len(t, postings, len(targets))
	for i, p := range postings {
		assert.Equal(t, targets[i].Site, p.Site)
		assert.Equal(t, targets[i].URL, p.Link)
	}
}

func TestScrapeAll_FailureIsolatedToOneSite(t *testing.T) {
	postings := ScrapeAll(context.Background(), stubFetcher{},
		fullRegistry(map[Site]bool{SiteMonster: true}), testTargets(), 5)

	require.Len(t, postings, 4)
	for _, p := range postings {
		assert.NotEqual(t, SiteMonster, p.Site)
	}
}

func TestScrapeAll_UnknownSiteSkipped(t *testing.T) {
	targets := []Target{
		{Site: Site("craigslist"), URL: "https://example.com"},
		{Site: SiteIndeed, URL: "https://www.indeed.com/jobs?q=go&l="},
	}

	postings := ScrapeAll(context.Background(), stubFetcher{}, fullRegistry(nil), targets, 5)

	require.Len(t, postings, 1)
	assert.Equal(t, SiteIndeed, postings[0].Site)
}

func TestScrapeAll_NoTargets(t *testing.T) {
	postings := ScrapeAll(context.Background(), stubFetcher{}, fullRegistry(nil), nil, 5)
	assert.Empty(t, postings)
}

func TestResolveLink(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		href     string
		expected string
	}{
		{
			name:     "Relative link joins the base",
			base:     "https://www.indeed.com",
			href:     "/rc/clk?jk=1",
			expected: "https://www.indeed.com/rc/clk?jk=1",
		},
		{
			name:     "Absolute link passes through",
			base:     "https://www.monster.com",
			href:     "https://job-openings.monster.com/x/1",
			expected: "https://job-openings.monster.com/x/1",
		},
		{
			name:     "Empty href stays empty",
			base:     "https://www.simplyhired.com",
			href:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveLink(tt.base, tt.href); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
