// Expand resume skills into job-board search URLs

package search

import (
	"log"
	"strings"
	"unicode"

	"go-jobscout/internal/scraper"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type siteTemplate struct {
	site     scraper.Site
	template string //{query} is replaced with the +-joined skill words
}

// Site order is fixed; tests and snapshot files depend on it.
var siteTemplates = []siteTemplate{
	{scraper.SiteIndeed, "https://www.indeed.com/jobs?q={query}&l="},
	{scraper.SiteMonster, "https://www.monster.com/jobs/search/?q={query}&where="},
	{scraper.SiteSimplyHired, "https://www.simplyhired.com/search?q={query}&l="},
}

// BuildTargets produces one (site, url) pair per skill per board,
// skills-major. A skill's whitespace-separated words are joined with "+"
// to form the query.
func BuildTargets(skills []string) []scraper.Target {
	targets := make([]scraper.Target, 0, len(skills)*len(siteTemplates))
	for _, skill := range skills {
		query := strings.Join(strings.Fields(foldDiacritics(skill)), "+")
		for _, st := range siteTemplates {
			targets = append(targets, scraper.Target{
				Site: st.site,
				URL:  strings.ReplaceAll(st.template, "{query}", query),
			})
		}
	}
	log.Printf("Constructed %d job search URLs.", len(targets))
	return targets
}

// foldDiacritics strips combining marks ("Développeur" -> "Developpeur") so
// accented skill names still form usable query strings.
func foldDiacritics(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return result
}
