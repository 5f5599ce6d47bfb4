package scraper

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

func NewIndeedScraper(fetcher PageFetcher) *SiteScraper {
	return NewIndeedScraperWithBaseURL(fetcher, "")
}

func NewIndeedScraperWithBaseURL(fetcher PageFetcher, baseURL string) *SiteScraper {
	return NewSiteScraper(indeedProfile(normalizeBaseURL(baseURL, "https://www.indeed.com")), fetcher)
}

func indeedProfile(baseURL string) Profile {
	return Profile{
		Key:           "indeed",
		Name:          "Indeed",
		BaseURL:       baseURL,
		BaseTerms:     []string{"machine learning engineer", "artificial intelligence", "data scientist", "AI engineer", "ML engineer"},
		TermSeparator: " ",
		SearchURL: func(base, terms, location string) string {
			return fmt.Sprintf("%s/jobs?q=%s&l=%s&fromage=1&sort=date",
				base, url.QueryEscape(terms), url.QueryEscape(location))
		},
		Locators: Locators{
			Container:   ".jobsearch-SerpJobCard",
			Title:       ".jobTitle a, .jobTitle span",
			Company:     ".companyName a, .companyName span",
			Location:    ".companyLocation",
			Description: ".job-snippet",
			URL:         ".jobTitle a",
		},
		PostedDate: relativeDateLocator(".date"),
	}
}

// relativeDateLocator builds a posted-date reader for sites that render
// relative text like "3 days ago" under a fixed selector.
func relativeDateLocator(selector string) func(*goquery.Selection, time.Time) time.Time {
	return func(fragment *goquery.Selection, now time.Time) time.Time {
		text := strings.TrimSpace(fragment.Find(selector).First().Text())
		if text == "" {
			return now
		}
		return ParseRelativeDate(text, now)
	}
}
