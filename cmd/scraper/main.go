package main

import (
	"context"
	"errors"
	"log"
	"time"

	"go-jobscout/internal/config"
	"go-jobscout/internal/logging"
	"go-jobscout/internal/reporter"
	"go-jobscout/internal/scraper"
	"go-jobscout/internal/scraper/indeed"
	"go-jobscout/internal/scraper/monster"
	"go-jobscout/internal/scraper/simplyhired"
	"go-jobscout/internal/search"
	"go-jobscout/internal/store"
)

func main() {
	//load config
	cfg := config.Load()

	stamp := time.Now().Format(store.StampLayout)
	if err := logging.Setup(cfg.LogsDir, "Job_Search", stamp); err != nil {
		log.Fatalf("❌ Failed to set up logging: %v", err)
	}

	log.Println("🚀 Starting job scraping...")

	//load the most recent parsed resume and keep only the top skills
	st := store.New(cfg.DataDir, cfg.ScrapeDir)
	rec, err := st.LoadLatest(cfg.TopSkills)
	if err != nil {
		if errors.Is(err, store.ErrNoSnapshot) {
			log.Println("❌ Cannot proceed without a parsed resume snapshot; run the parser first.")
			return
		}
		log.Printf("❌ Failed to load parsed data: %v", err)
		return
	}

	if len(rec.Skills) == 0 {
		log.Println("❌ No skills found in saved data; please ensure parsing has been run.")
		return
	}
	log.Printf("🔧 Searching with top %d skills: %v", len(rec.Skills), rec.Skills)

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	fetcher := scraper.NewHTTPFetcher(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second)

	//initialize scrapers
	registry := map[scraper.Site]scraper.Scraper{
		scraper.SiteIndeed:      indeed.NewIndeedScraper(),
		scraper.SiteMonster:     monster.NewMonsterScraper(),
		scraper.SiteSimplyHired: simplyhired.NewSimplyHiredScraper(),
	}

	targets := search.BuildTargets(rec.Skills)
	postings := scraper.ScrapeAll(ctx, fetcher, registry, targets, cfg.MaxPosts)

	path, err := st.SaveJobs(postings, stamp)
	if err != nil {
		log.Fatalf("❌ Failed to persist scraped jobs: %v", err)
	}

	//report the run over telegram when configured
	if cfg.TelegramEnabled() {
		rep, err := reporter.NewTelegramReporter(cfg)
		if err != nil {
			log.Printf("⚠️ Failed to init Telegram reporter: %v", err)
		} else {
			for _, p := range postings {
				if err := rep.SendPosting(p); err != nil {
					log.Printf("⚠️ Failed to send posting to Telegram: %v", err)
				}
				//1 second delay to avoid 429
				time.Sleep(1 * time.Second)
			}
			if err := rep.SendSummary(len(postings), path); err != nil {
				log.Printf("⚠️ Failed to send summary to Telegram: %v", err)
			}
		}
	}

	log.Println("🏁 Job scraping process completed.")
}
