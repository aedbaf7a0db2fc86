package monster

import (
	"context"
	"fmt"
	"strings"

	"go-jobscout/internal/scraper"

	"github.com/PuerkitoBio/goquery"
)

const baseURL = "https://www.monster.com"

type MonsterScraper struct{}

func NewMonsterScraper() *MonsterScraper {
	return &MonsterScraper{}
}

func (s *MonsterScraper) Site() scraper.Site {
	return scraper.SiteMonster
}

func (s *MonsterScraper) Scrape(ctx context.Context, fetcher scraper.Fetcher, url string, maxPosts int) ([]scraper.Posting, error) {
	html, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	postings := make([]scraper.Posting, 0, maxPosts)
	doc.Find("section.card-content").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= maxPosts {
			return false
		}

		href, _ := card.Find("a").First().Attr("href")

		postings = append(postings, scraper.Posting{
			Site:     scraper.SiteMonster,
			Title:    strings.TrimSpace(card.Find("h2.title").First().Text()),
			Company:  strings.TrimSpace(card.Find("div.company").First().Text()),
			Location: strings.TrimSpace(card.Find("div.location").First().Text()),
			Link:     scraper.ResolveLink(baseURL, href),
		})
		return true
	})

	return postings, nil
}
