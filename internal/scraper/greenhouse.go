package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Ritesh-sudo/MCPJobSearch/internal/domain/job"
)

// GreenhouseScraper queries the public Greenhouse boards API for a fixed
// roster of companies instead of scraping HTML. Fields arrive structured, so
// it builds records directly and reuses the shared classifiers.
type GreenhouseScraper struct {
	client    *http.Client
	apiBase   string
	companies []string
	now       func() time.Time
}

var defaultGreenhouseCompanies = []string{
	"openai", "anthropic", "scaleai", "nvidia", "stripe", "databricks",
	"doordash", "airbnb", "snap", "affirm", "notion", "asana",
}

func NewGreenhouseScraper() *GreenhouseScraper {
	return &GreenhouseScraper{
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
		apiBase:   "https://boards-api.greenhouse.io",
		companies: defaultGreenhouseCompanies,
		now:       time.Now,
	}
}

func (s *GreenhouseScraper) Name() string {
	return "Greenhouse"
}

type greenhouseJob struct {
	ID          int    `json:"id"`
	AbsoluteURL string `json:"absolute_url"`
	Title       string `json:"title"`
	UpdatedAt   string `json:"updated_at"`
	Location    struct {
		Name string `json:"name"`
	} `json:"location"`
}

type greenhouseBoardResponse struct {
	Jobs []greenhouseJob `json:"jobs"`
}

// Search walks the company roster, giving each company an even share of the
// result budget with a floor of five. Company-level failures are swallowed
// individually; the roster walk continues.
func (s *GreenhouseScraper) Search(ctx context.Context, filter job.SearchFilter) ([]job.JobPosting, error) {
	results := make([]job.JobPosting, 0, max(filter.MaxResults, 0))

	companyCount := len(s.companies)
	if companyCount == 0 {
		return results, nil
	}
	maxPerCompany := filter.MaxResults / companyCount
	if maxPerCompany < 5 {
		maxPerCompany = 5
	}

	for _, company := range s.companies {
		board, err := s.fetchBoard(ctx, company)
		if err != nil {
			log.Printf("greenhouse board %s: %v", company, err)
			continue
		}

		perCompany := 0
		for _, gh := range board.Jobs {
			if len(results) >= filter.MaxResults {
				break
			}

			posting, ok := s.buildPosting(gh, company)
			if !ok {
				continue
			}

			results = append(results, posting)
			perCompany++
			if perCompany >= maxPerCompany {
				break
			}
		}

		if len(results) >= filter.MaxResults {
			break
		}
	}

	return results, nil
}

func (s *GreenhouseScraper) buildPosting(gh greenhouseJob, company string) (job.JobPosting, bool) {
	title := strings.TrimSpace(gh.Title)
	applicationURL := strings.TrimSpace(gh.AbsoluteURL)
	if title == "" || company == "" || applicationURL == "" {
		return job.JobPosting{}, false
	}

	// The boards listing carries no description text.
	description := ""

	location := strings.TrimSpace(gh.Location.Name)
	if location == "" {
		location = "Not specified"
	}

	jobType := job.TypeFullTime
	if strings.Contains(strings.ToLower(title), "intern") {
		jobType = job.TypeInternship
	}

	posted := s.now()
	if gh.UpdatedAt != "" {
		if t, err := time.Parse(time.RFC3339, gh.UpdatedAt); err == nil {
			posted = t
		}
	}

	return job.JobPosting{
		ID:                   strconv.Itoa(gh.ID),
		Title:                title,
		Company:              company,
		Location:             location,
		Type:                 jobType,
		ExperienceLevel:      DetermineExperienceLevel(title, description),
		Description:          description,
		Requirements:         []string{},
		Skills:               ExtractSkills(description + " " + title),
		PostedDate:           posted.UTC().Format(time.RFC3339),
		ApplicationURL:       applicationURL,
		Source:               "Greenhouse",
		IsRemote:             IsRemoteJob(location, description),
		HasPythonRequirement: HasPythonRequirement(description+" "+title, nil),
		IsAIMLRelated:        IsAIMLRelated(title, description),
	}, true
}

func (s *GreenhouseScraper) fetchBoard(ctx context.Context, company string) (greenhouseBoardResponse, error) {
	url := fmt.Sprintf("%s/v1/boards/%s/jobs?content=true", strings.TrimRight(s.apiBase, "/"), company)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return greenhouseBoardResponse{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return greenhouseBoardResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return greenhouseBoardResponse{}, fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := readAllLimit(resp.Body, 10<<20)
	if err != nil {
		return greenhouseBoardResponse{}, err
	}

	var out greenhouseBoardResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return greenhouseBoardResponse{}, err
	}
	return out, nil
}

func readAllLimit(r io.Reader, max int64) ([]byte, error) {
	lr := &io.LimitedReader{R: r, N: max}
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if lr.N <= 0 {
		return nil, fmt.Errorf("response too large")
	}
	return b, nil
}
