package job

import "time"

type Type string

const (
	TypeFullTime  Type = "Tempo Inteiro"
	TypePartTime  Type = "Meio Período"
	TypeRemote    Type = "Remoto"
	TypeFreelance Type = "Freelance"
)

// Types lists the job types in the order they are offered as filters.
var Types = []Type{TypeFullTime, TypePartTime, TypeRemote, TypeFreelance}

// ValidTypes is used to drop unknown types coming from query strings.
var ValidTypes = map[Type]struct{}{
	TypeFullTime:  {},
	TypePartTime:  {},
	TypeRemote:    {},
	TypeFreelance: {},
}

const postedAtLayout = "2006-01-02"

type Job struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Type            Type     `json:"type"`
	SalaryRange     string   `json:"salaryRange,omitempty"`
	PostedAt        string   `json:"postedAt"`
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements,omitempty"`
	Sector          string   `json:"sector,omitempty"`
	Featured        bool     `json:"featured,omitempty"`
	ApplicantsCount int      `json:"applicantsCount,omitempty"`
	Slug            string   `json:"slug"`
}

// PostedAtTime parses PostedAt, returning the zero time when it is malformed.
func (j Job) PostedAtTime() time.Time {
	t, err := time.Parse(postedAtLayout, j.PostedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// JobPost is the listing view of a job handed to API clients.
type JobPost struct {
	Job
	DescriptionHTML  string `json:"descriptionHtml,omitempty"`
	PostedAtHuman    string `json:"postedAtHuman,omitempty"`
	SalaryRangeLabel string `json:"salaryRangeLabel"`
	MinSalary        int64  `json:"minSalary"`
}
