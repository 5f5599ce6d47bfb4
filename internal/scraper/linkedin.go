package scraper

import (
	"fmt"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
)

func NewLinkedInScraper(fetcher PageFetcher) *SiteScraper {
	return NewLinkedInScraperWithBaseURL(fetcher, "")
}

func NewLinkedInScraperWithBaseURL(fetcher PageFetcher, baseURL string) *SiteScraper {
	return NewSiteScraper(linkedInProfile(normalizeBaseURL(baseURL, "https://www.linkedin.com")), fetcher)
}

func linkedInProfile(baseURL string) Profile {
	return Profile{
		Key:           "linkedin",
		Name:          "LinkedIn",
		BaseURL:       baseURL,
		BaseTerms:     []string{"machine learning", "artificial intelligence", "data science", "AI", "ML"},
		TermSeparator: " OR ",
		SearchURL: func(base, terms, location string) string {
			return fmt.Sprintf("%s/jobs/search/?keywords=%s&location=%s&f_TPR=r86400&f_JT=I&f_JT=F&start=0",
				base, url.QueryEscape(terms), url.QueryEscape(location))
		},
		Locators: Locators{
			Container:   ".jobs-search__results-list li",
			Title:       ".job-search-card__title a, .base-search-card__title a",
			Company:     ".job-search-card__subtitle a, .base-search-card__subtitle a",
			Location:    ".job-search-card__location, .base-search-card__metadata .job-search-card__location",
			Description: ".job-search-card__snippet, .base-search-card__snippet",
			URL:         ".job-search-card__title a, .base-search-card__title a",
		},
		PostedDate: linkedInPostedDate,
	}
}

// LinkedIn cards carry an absolute timestamp in <time datetime="...">.
func linkedInPostedDate(fragment *goquery.Selection, now time.Time) time.Time {
	datetime, ok := fragment.Find("time").First().Attr("datetime")
	if !ok || datetime == "" {
		return now
	}
	if t, err := time.Parse(time.RFC3339, datetime); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", datetime); err == nil {
		return t
	}
	return now
}
