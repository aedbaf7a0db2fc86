package simplyhired

import (
	"context"
	"fmt"
	"strings"

	"go-jobscout/internal/scraper"

	"github.com/PuerkitoBio/goquery"
)

const baseURL = "https://www.simplyhired.com"

type SimplyHiredScraper struct{}

func NewSimplyHiredScraper() *SimplyHiredScraper {
	return &SimplyHiredScraper{}
}

func (s *SimplyHiredScraper) Site() scraper.Site {
	return scraper.SiteSimplyHired
}

func (s *SimplyHiredScraper) Scrape(ctx context.Context, fetcher scraper.Fetcher, url string, maxPosts int) ([]scraper.Posting, error) {
	html, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	postings := make([]scraper.Posting, 0, maxPosts)
	doc.Find("div.SerpJob-jobCard").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= maxPosts {
			return false
		}

		titleLink := card.Find("a.jobposting-title").First()
		href, _ := titleLink.Attr("href")

		postings = append(postings, scraper.Posting{
			Site:     scraper.SiteSimplyHired,
			Title:    strings.TrimSpace(titleLink.Text()),
			Company:  strings.TrimSpace(card.Find("span.JobPosting-labelWithIcon").First().Text()),
			Location: strings.TrimSpace(card.Find("span.jobposting-location").First().Text()),
			Link:     scraper.ResolveLink(baseURL, href),
		})
		return true
	})

	return postings, nil
}
