package indeed

import (
	"context"
	"fmt"
	"strings"

	"go-jobscout/internal/scraper"

	"github.com/PuerkitoBio/goquery"
)

const baseURL = "https://www.indeed.com"

type IndeedScraper struct{}

func NewIndeedScraper() *IndeedScraper {
	return &IndeedScraper{}
}

func (s *IndeedScraper) Site() scraper.Site {
	return scraper.SiteIndeed
}

func (s *IndeedScraper) Scrape(ctx context.Context, fetcher scraper.Fetcher, url string, maxPosts int) ([]scraper.Posting, error) {
	html, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	postings := make([]scraper.Posting, 0, maxPosts)
	doc.Find("div.jobsearch-SerpJobCard").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= maxPosts {
			return false
		}

		//indeed renders location as a div on most cards, a span on promoted ones
		location := card.Find("div.location").First()
		if location.Length() == 0 {
			location = card.Find("span.location").First()
		}

		href, _ := card.Find("a").First().Attr("href")

		postings = append(postings, scraper.Posting{
			Site:     scraper.SiteIndeed,
			Title:    strings.TrimSpace(card.Find("h2.title").First().Text()),
			Company:  strings.TrimSpace(card.Find("span.company").First().Text()),
			Location: strings.TrimSpace(location.Text()),
			Link:     scraper.ResolveLink(baseURL, href),
		})
		return true
	})

	return postings, nil
}
