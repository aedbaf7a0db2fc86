// Define an interface for all scrapers
// Ensure consistency

package scraper

import "context"

// Site identifies a supported job board.
type Site string

const (
	SiteIndeed      Site = "indeed"
	SiteMonster     Site = "monster"
	SiteSimplyHired Site = "simplyhired"
)

// Posting is one scraped job listing. Title, company and location may be
// empty when the board's markup did not carry that field.
type Posting struct {
	Site     Site   `json:"site"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Link     string `json:"link"`
}

// Target is one (site, search URL) pair produced by the URL constructor.
type Target struct {
	Site Site
	URL  string
}

// Fetcher retrieves raw HTML for a URL. The HTTP implementation lives in
// this package; tests substitute fixtures.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

//Scraper defines the interface that all site scrapers must implement
type Scraper interface {
	//Scrape postings from one search-result page, keeping at most maxPosts
	Scrape(ctx context.Context, fetcher Fetcher, url string, maxPosts int) ([]Posting, error)

	//Site is the board this scraper understands
	Site() Site
}
