package main

import (
	"flag"
	"log"
	"path/filepath"
	"time"

	"go-jobscout/internal/config"
	"go-jobscout/internal/extract"
	"go-jobscout/internal/logging"
	"go-jobscout/internal/models"
	"go-jobscout/internal/parser"
	"go-jobscout/internal/store"
)

func main() {
	resumePath := flag.String("resume", "", "path to the resume file (.pdf, .docx/.doc or plain text)")
	flag.Parse()

	if *resumePath == "" {
		log.Fatal("❌ --resume is required")
	}

	//load config
	cfg := config.Load()

	//one stamp per run; every artifact of this run carries it
	stamp := time.Now().Format(store.StampLayout)
	if err := logging.Setup(cfg.LogsDir, "execution", stamp); err != nil {
		log.Fatalf("❌ Failed to set up logging: %v", err)
	}

	log.Println("🚀 Starting resume parsing...")

	text := extract.Text(*resumePath)

	absPath, err := filepath.Abs(*resumePath)
	if err != nil {
		absPath = *resumePath
	}

	rec := &models.CandidateRecord{
		Name:     parser.Name(text),
		Emails:   parser.Emails(text),
		Phones:   parser.Phones(text),
		Skills:   parser.Skills(text),
		Source:   absPath,
		ParsedAt: time.Now(),
	}

	log.Printf("Assumed name: %s", rec.Name)
	log.Printf("Found emails: %v", rec.Emails)
	log.Printf("Found phones: %v", rec.Phones)
	log.Printf("Extracted skills: %v", rec.Skills)

	st := store.New(cfg.DataDir, cfg.ScrapeDir)
	if _, err := st.SaveParsed(rec, stamp); err != nil {
		//a run whose snapshot cannot be written has nothing to show for itself
		log.Fatalf("❌ Failed to persist parsed data: %v", err)
	}

	log.Println("🏁 Data parsing completed.")
}
