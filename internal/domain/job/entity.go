package job

// JobType is the employment category inferred from posting text.
type JobType string

const (
	TypeInternship JobType = "internship"
	TypeFullTime   JobType = "full-time"
	TypeContract   JobType = "contract"
	TypePartTime   JobType = "part-time"
)

// ExperienceLevel is the seniority bucket inferred from posting text.
type ExperienceLevel string

const (
	LevelEntry  ExperienceLevel = "entry"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
	LevelLead   ExperienceLevel = "lead"

	// LevelAll is a filter wildcard, never assigned to a posting.
	LevelAll ExperienceLevel = "all"
)

// JobPosting is the canonical record shared across all sources. A posting
// with an empty Title, Company or ApplicationURL must never be constructed;
// extraction yields no record instead.
type JobPosting struct {
	ID                   string          `json:"id"`
	Title                string          `json:"title"`
	Company              string          `json:"company"`
	Location             string          `json:"location"`
	Type                 JobType         `json:"type"`
	ExperienceLevel      ExperienceLevel `json:"experienceLevel"`
	Description          string          `json:"description"`
	Requirements         []string        `json:"requirements"`
	Skills               []string        `json:"skills"`
	PostedDate           string          `json:"postedDate"`
	ApplicationURL       string          `json:"applicationUrl"`
	Source               string          `json:"source"`
	IsRemote             bool            `json:"isRemote"`
	HasPythonRequirement bool            `json:"hasPythonRequirement"`
	IsAIMLRelated        bool            `json:"isAIMLRelated"`
}

// SearchFilter is the query shape every adapter and the aggregate filter
// consume. JobTypes is an informational hint echoed back in responses; it is
// not applied as an exclusion rule.
type SearchFilter struct {
	Location           string          `json:"location"`
	MaxResults         int             `json:"maxResults"`
	IncludeInternships bool            `json:"includeInternships"`
	IncludeFullTime    bool            `json:"includeFullTime"`
	Keywords           []string        `json:"keywords"`
	ExperienceLevel    ExperienceLevel `json:"experienceLevel"`
	RequiredSkills     []string        `json:"requiredSkills"`
	JobTypes           []string        `json:"jobTypes"`
}

// SourceResult is one adapter's outcome within an aggregate search. Error is
// set only when the adapter itself failed outright, which is distinct from a
// clean zero-match run.
type SourceResult struct {
	Site       string       `json:"site"`
	Jobs       []JobPosting `json:"jobs"`
	TotalFound int          `json:"totalFound"`
	SearchTime int64        `json:"searchTime"`
	Error      string       `json:"error,omitempty"`
}

// AggregateResult is the merged, filtered outcome across every registered
// source.
type AggregateResult struct {
	Results         []SourceResult `json:"results"`
	TotalJobs       int            `json:"totalJobs"`
	SearchTimestamp string         `json:"searchTimestamp"`
	Filters         SearchFilter   `json:"filters"`
}
