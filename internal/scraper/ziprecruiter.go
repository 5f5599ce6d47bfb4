package scraper

import (
	"fmt"
	"net/url"
)

func NewZipRecruiterScraper(fetcher PageFetcher) *SiteScraper {
	return NewZipRecruiterScraperWithBaseURL(fetcher, "")
}

func NewZipRecruiterScraperWithBaseURL(fetcher PageFetcher, baseURL string) *SiteScraper {
	return NewSiteScraper(zipRecruiterProfile(normalizeBaseURL(baseURL, "https://www.ziprecruiter.com")), fetcher)
}

func zipRecruiterProfile(baseURL string) Profile {
	return Profile{
		Key:           "ziprecruiter",
		Name:          "ZipRecruiter",
		BaseURL:       baseURL,
		BaseTerms:     []string{"machine learning engineer", "artificial intelligence engineer", "data scientist", "AI engineer", "ML engineer"},
		TermSeparator: " ",
		SearchURL: func(base, terms, location string) string {
			return fmt.Sprintf("%s/jobs-search?search=%s&location=%s&days=1",
				base, url.QueryEscape(terms), url.QueryEscape(location))
		},
		Locators: Locators{
			Container:   ".job_content",
			Title:       ".job_link .job_title",
			Company:     ".job_link .company_name",
			Location:    ".job_link .location",
			Description: ".job_snippet",
			URL:         ".job_link",
		},
		PostedDate: relativeDateLocator(".job_age"),
	}
}
