package scraper

import (
	"fmt"
	"net/url"
)

func NewGlassdoorScraper(fetcher PageFetcher) *SiteScraper {
	return NewGlassdoorScraperWithBaseURL(fetcher, "")
}

func NewGlassdoorScraperWithBaseURL(fetcher PageFetcher, baseURL string) *SiteScraper {
	return NewSiteScraper(glassdoorProfile(normalizeBaseURL(baseURL, "https://www.glassdoor.com")), fetcher)
}

func glassdoorProfile(baseURL string) Profile {
	return Profile{
		Key:           "glassdoor",
		Name:          "Glassdoor",
		BaseURL:       baseURL,
		BaseTerms:     []string{"machine learning", "artificial intelligence", "data science", "AI engineer", "ML engineer"},
		TermSeparator: " ",
		SearchURL: func(base, terms, location string) string {
			return fmt.Sprintf("%s/Job/jobs.htm?sc.keyword=%s&locT=C&locId=%s&fromAge=1",
				base, url.QueryEscape(terms), url.QueryEscape(location))
		},
		Locators: Locators{
			Container:   ".react-job-listing",
			Title:       ".jobTitle a, .jobTitle span",
			Company:     ".employerName a, .employerName span",
			Location:    ".location",
			Description: ".jobDescriptionContent",
			URL:         ".jobTitle a",
		},
		PostedDate: relativeDateLocator(".job-age"),
	}
}
