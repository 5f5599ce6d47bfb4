package scraper

import (
	"fmt"
	"net/url"
)

func NewMonsterScraper(fetcher PageFetcher) *SiteScraper {
	return NewMonsterScraperWithBaseURL(fetcher, "")
}

func NewMonsterScraperWithBaseURL(fetcher PageFetcher, baseURL string) *SiteScraper {
	return NewSiteScraper(monsterProfile(normalizeBaseURL(baseURL, "https://www.monster.com")), fetcher)
}

func monsterProfile(baseURL string) Profile {
	return Profile{
		Key:           "monster",
		Name:          "Monster",
		BaseURL:       baseURL,
		BaseTerms:     []string{"machine learning", "artificial intelligence", "data science", "AI engineer", "ML engineer"},
		TermSeparator: " ",
		SearchURL: func(base, terms, location string) string {
			return fmt.Sprintf("%s/jobs/search/?q=%s&where=%s&tm=1",
				base, url.QueryEscape(terms), url.QueryEscape(location))
		},
		Locators: Locators{
			Container:   ".card-content",
			Title:       ".card-content .title a, .card-content .title",
			Company:     ".card-content .company a, .card-content .company",
			Location:    ".card-content .location",
			Description: ".card-content .summary",
			URL:         ".card-content .title a",
		},
		PostedDate: relativeDateLocator(".meta .date"),
	}
}
