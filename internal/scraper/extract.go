package scraper

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Ritesh-sudo/MCPJobSearch/internal/domain/job"
)

// Locators are the per-site CSS selectors that place each canonical field
// inside one posting fragment. Comma-grouped selectors act as prioritized
// alternatives; the first match in document order wins.
type Locators struct {
	Container   string
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
}

// ExtractPosting reads one posting fragment through the supplied locators and
// assembles a canonical record. It returns false when any required field
// (title, company, application URL) resolves empty.
func ExtractPosting(fragment *goquery.Selection, loc Locators, baseURL, source string, postedDate time.Time) (job.JobPosting, bool) {
	title := extractText(fragment, loc.Title)
	company := extractText(fragment, loc.Company)
	location := extractText(fragment, loc.Location)
	description := extractText(fragment, loc.Description)
	applicationURL := extractURL(fragment, loc.URL, baseURL)

	if title == "" || company == "" || applicationURL == "" {
		return job.JobPosting{}, false
	}

	requirements := ExtractRequirements(description)

	if location == "" {
		location = "Not specified"
	}

	return job.JobPosting{
		ID:                   GenerateJobID(title, company, source),
		Title:                title,
		Company:              company,
		Location:             location,
		Type:                 DetermineJobType(title, description),
		ExperienceLevel:      DetermineExperienceLevel(title, description),
		Description:          description,
		Requirements:         requirements,
		Skills:               ExtractSkills(description),
		PostedDate:           postedDate.UTC().Format(time.RFC3339),
		ApplicationURL:       applicationURL,
		Source:               source,
		IsRemote:             IsRemoteJob(location, description),
		HasPythonRequirement: HasPythonRequirement(description, requirements),
		IsAIMLRelated:        IsAIMLRelated(title, description),
	}, true
}

func extractText(fragment *goquery.Selection, selector string) string {
	if strings.TrimSpace(selector) == "" {
		return ""
	}
	sel := fragment.Find(selector)
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.First().Text())
}

func extractURL(fragment *goquery.Selection, selector, baseURL string) string {
	if strings.TrimSpace(selector) == "" {
		return ""
	}
	sel := fragment.Find(selector)
	if sel.Length() == 0 {
		return ""
	}
	href, ok := sel.First().Attr("href")
	if !ok {
		return ""
	}
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	return NormalizeURL(href, baseURL)
}

// NormalizeURL resolves a scraped href against the source's base origin.
// Absolute URLs pass through unchanged, so normalization is idempotent.
func NormalizeURL(href, baseURL string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	if strings.HasPrefix(href, "/") {
		return baseURL + href
	}
	return baseURL + "/" + href
}

// GenerateJobID derives a short stable identifier from (title, company,
// source). It is a best-effort dedup key within one run, not globally unique.
func GenerateJobID(title, company, source string) string {
	combined := title + "-" + company + "-" + source
	encoded := base64.StdEncoding.EncodeToString([]byte(combined))

	var b strings.Builder
	for _, r := range encoded {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() >= 20 {
			break
		}
	}
	return b.String()
}
