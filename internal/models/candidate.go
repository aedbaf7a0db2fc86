package models

import "time"

// CandidateRecord is one parse of a resume document. Records are immutable
// once written: every re-parse produces a new timestamped snapshot file.
type CandidateRecord struct {
	Name     string    `json:"name"`
	Emails   []string  `json:"emails"`
	Phones   []string  `json:"phones"`
	Skills   []string  `json:"skills"`
	Source   string    `json:"source"`
	ParsedAt time.Time `json:"parsed_at"`
}
