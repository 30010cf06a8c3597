package job

import (
	"net/url"
	"strconv"
	"strings"
)

// Criteria is the set of filters applied to a job listing. Zero values
// disable the corresponding filter.
type Criteria struct {
	Query     string `json:"query,omitempty"`
	Province  string `json:"province,omitempty"`
	Category  string `json:"category,omitempty"`
	Types     []Type `json:"types,omitempty"`
	MinSalary int64  `json:"minSalary,omitempty"`
}

func (c Criteria) IsEmpty() bool {
	return c.Query == "" && c.Province == "" && c.Category == "" && len(c.Types) == 0 && c.MinSalary <= 0
}

// HasSidebarFilters reports whether any filter other than the free text query is set.
func (c Criteria) HasSidebarFilters() bool {
	return c.Province != "" || c.Category != "" || len(c.Types) > 0 || c.MinSalary > 0
}

// Filter returns the jobs matching every active criterion, in their
// original order. jobs is never modified.
func Filter(jobs []Job, c Criteria) []Job {
	query := strings.ToLower(c.Query)
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if !matchesQuery(j, query) {
			continue
		}
		if c.Province != "" && !strings.Contains(j.Location, c.Province) {
			continue
		}
		if c.Category != "" && !strings.Contains(j.Sector, c.Category) && !strings.Contains(j.Title, c.Category) {
			continue
		}
		if len(c.Types) > 0 && !hasType(c.Types, j.Type) {
			continue
		}
		if c.MinSalary > 0 && MinSalary(j.SalaryRange) < c.MinSalary {
			continue
		}
		out = append(out, j)
	}
	return out
}

func matchesQuery(j Job, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(j.Title), query) ||
		strings.Contains(strings.ToLower(j.Company), query) ||
		strings.Contains(strings.ToLower(j.Description), query)
}

func hasType(types []Type, t Type) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}

// ParseCriteriaFromQuery reads q, province, category, type and minSalary.
// type may be repeated or comma separated; unknown types are ignored and a
// non numeric minSalary leaves the salary filter off.
func ParseCriteriaFromQuery(query url.Values) Criteria {
	// If we can't convert the string to an int we're happy leaving the zero value
	minSalary, _ := strconv.ParseInt(strings.TrimSpace(query.Get("minSalary")), 10, 64)
	if minSalary < 0 {
		minSalary = 0
	}

	var types []Type
	seen := make(map[Type]struct{})
	for _, raw := range query["type"] {
		for _, rawType := range strings.Split(raw, ",") {
			t := Type(strings.TrimSpace(rawType))
			if _, ok := ValidTypes[t]; !ok {
				continue
			}
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			types = append(types, t)
		}
	}

	return Criteria{
		Query:     query.Get("q"),
		Province:  strings.TrimSpace(query.Get("province")),
		Category:  strings.TrimSpace(query.Get("category")),
		Types:     types,
		MinSalary: minSalary,
	}
}
