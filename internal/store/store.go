// Timestamped JSON snapshot persistence
// One file per artifact, append-only: re-parses never overwrite old runs

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-jobscout/internal/models"
	"go-jobscout/internal/scraper"
)

// StampLayout is the timestamp embedded in every snapshot filename.
// It is captured once per run so all of a run's artifacts share one stamp.
const StampLayout = "20060102_150405"

// ErrNoSnapshot signals that no usable parsed snapshot exists yet.
// Callers must check for it before scraping; it is an operational
// condition, not a crash.
var ErrNoSnapshot = errors.New("no parsed snapshot found")

type Store struct {
	dataDir   string
	scrapeDir string
}

func New(dataDir, scrapeDir string) *Store {
	return &Store{
		dataDir:   dataDir,
		scrapeDir: scrapeDir,
	}
}

// SaveParsed writes the candidate record to data_dir/parsed_data_<stamp>.json
// and returns the path.
func (s *Store) SaveParsed(rec *models.CandidateRecord, stamp string) (string, error) {
	path := filepath.Join(s.dataDir, fmt.Sprintf("parsed_data_%s.json", stamp))
	if err := s.writeJSON(s.dataDir, path, rec); err != nil {
		log.Printf("❌ Failed to save parsed data: %v", err)
		return "", err
	}
	log.Printf("💾 Parsed data saved to: %s", path)
	return path, nil
}

// SaveJobs writes the scraped postings to scrape_dir/jobs_<stamp>.json.
// An empty run still writes an empty array.
func (s *Store) SaveJobs(postings []scraper.Posting, stamp string) (string, error) {
	if postings == nil {
		postings = []scraper.Posting{}
	}

	path := filepath.Join(s.scrapeDir, fmt.Sprintf("jobs_%s.json", stamp))
	if err := s.writeJSON(s.scrapeDir, path, postings); err != nil {
		log.Printf("❌ Failed to save scraped jobs: %v", err)
		return "", err
	}
	log.Printf("💾 Scraped job data saved to: %s", path)
	return path, nil
}

// LoadLatest returns the most recent parsed snapshot, truncating skills to
// the first maxSkills entries when maxSkills > 0. It never returns a
// partially parsed record: anything unreadable is reported as ErrNoSnapshot.
func (s *Store) LoadLatest(maxSkills int) (*models.CandidateRecord, error) {
	files, err := filepath.Glob(filepath.Join(s.dataDir, "parsed_data_*.json"))
	if err != nil || len(files) == 0 {
		log.Printf("❌ No parsed data files found in %s; please run parsing first.", s.dataDir)
		return nil, ErrNoSnapshot
	}

	//"latest" means max filesystem mtime, matching the original behavior.
	//Under clock skew or copied files this can disagree with the timestamp
	//embedded in the filename; mtime stays the source of truth.
	var latest string
	var latestMod time.Time
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestMod) {
			latest = f
			latestMod = info.ModTime()
		}
	}
	if latest == "" {
		log.Printf("❌ No readable parsed data files in %s.", s.dataDir)
		return nil, ErrNoSnapshot
	}

	data, err := os.ReadFile(latest)
	if err != nil {
		log.Printf("❌ Failed to read parsed data from %s: %v", latest, err)
		return nil, ErrNoSnapshot
	}

	//skills is decoded leniently: a snapshot with a non-array skills field
	//degrades to no skills instead of poisoning the whole record
	var raw struct {
		Name     string          `json:"name"`
		Emails   []string        `json:"emails"`
		Phones   []string        `json:"phones"`
		Skills   json.RawMessage `json:"skills"`
		Source   string          `json:"source"`
		ParsedAt time.Time       `json:"parsed_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("❌ Failed to parse %s: %v", latest, err)
		return nil, ErrNoSnapshot
	}

	rec := &models.CandidateRecord{
		Name:     raw.Name,
		Emails:   raw.Emails,
		Phones:   raw.Phones,
		Source:   raw.Source,
		ParsedAt: raw.ParsedAt,
	}

	if len(raw.Skills) > 0 {
		if err := json.Unmarshal(raw.Skills, &rec.Skills); err != nil {
			log.Printf("⚠️ Expected 'skills' to be a list in %s, treating as empty.", latest)
			rec.Skills = nil
		}
	}

	if maxSkills > 0 && len(rec.Skills) > maxSkills {
		rec.Skills = rec.Skills[:maxSkills]
	}

	log.Printf("📋 Loaded parsed data from: %s", latest)
	return rec, nil
}

// writeJSON persists v as human-readable JSON, keeping non-ASCII characters
// as-is instead of escaping them.
func (s *Store) writeJSON(dir, path string, v any) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
