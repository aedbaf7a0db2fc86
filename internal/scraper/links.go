package scraper

import "net/url"

// ResolveLink makes href absolute against the site's base URL. Boards mix
// relative and absolute hrefs in the same result page, so both are handled.
func ResolveLink(base, href string) string {
	if href == "" {
		return ""
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}

	linkURL, err := url.Parse(href)
	if err != nil {
		return href
	}

	return baseURL.ResolveReference(linkURL).String()
}
