package scraper

import (
	"context"
	"log"
)

// ScrapeAll runs the matching scraper for every target in order and
// concatenates the results. A failure for one target is logged with the
// offending site and URL and contributes nothing; it never stops the run,
// so output order stays skills-major, site-minor like the target list.
func ScrapeAll(ctx context.Context, fetcher Fetcher, registry map[Site]Scraper, targets []Target, maxPosts int) []Posting {
	allPostings := make([]Posting, 0)

	for _, target := range targets {
		s, ok := registry[target.Site]
		if !ok {
			log.Printf("⚠️ No scraper registered for site %q, skipping %s", target.Site, target.URL)
			continue
		}

		postings, err := s.Scrape(ctx, fetcher, target.URL, maxPosts)
		if err != nil {
			log.Printf("❌ Failed to scrape %s at %s: %v", target.Site, target.URL, err)
			continue
		}

		log.Printf("✅ Scraped %d jobs from %s.", len(postings), target.Site)
		allPostings = append(allPostings, postings...)
	}

	log.Printf("📦 Total jobs scraped: %d", len(allPostings))
	return allPostings
}
