package job

import (
	"fmt"
	"sort"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

var ErrJobNotFound = errors.New("job not found")

// Repository serves the read-only job listing held in memory.
type Repository struct {
	jobs   []Job
	bySlug map[string]int
	byID   map[string]int
}

func NewRepository(jobs []Job) *Repository {
	r := &Repository{
		jobs:   make([]Job, len(jobs)),
		bySlug: make(map[string]int, len(jobs)),
		byID:   make(map[string]int, len(jobs)),
	}
	for i, j := range jobs {
		if len(j.Requirements) > 0 {
			j.Requirements = append([]string(nil), j.Requirements...)
		}
		if j.Slug == "" {
			j.Slug = slug.Make(fmt.Sprintf("%s %s %s", j.Title, j.Company, j.ID))
		}
		r.jobs[i] = j
		r.bySlug[j.Slug] = i
		r.byID[j.ID] = i
	}
	return r
}

// All returns a copy of every job in listing order.
func (r *Repository) All() []Job {
	out := make([]Job, len(r.jobs))
	copy(out, r.jobs)
	return out
}

func (r *Repository) Featured() []Job {
	var out []Job
	for _, j := range r.jobs {
		if j.Featured {
			out = append(out, j)
		}
	}
	return out
}

func (r *Repository) JobByID(id string) (Job, error) {
	i, ok := r.byID[id]
	if !ok {
		return Job{}, errors.Wrapf(ErrJobNotFound, "id %s", id)
	}
	return r.jobs[i], nil
}

func (r *Repository) JobBySlug(s string) (Job, error) {
	i, ok := r.bySlug[s]
	if !ok {
		return Job{}, errors.Wrapf(ErrJobNotFound, "slug %s", s)
	}
	return r.jobs[i], nil
}

// JobsByQuery filters the listing and returns the requested page together
// with the total number of matches.
func (r *Repository) JobsByQuery(c Criteria, pageID, jobsPerPage int) ([]Job, int) {
	matches := Filter(r.jobs, c)
	total := len(matches)
	if jobsPerPage < 1 {
		return matches, total
	}
	if pageID < 1 {
		pageID = 1
	}
	pages := total / jobsPerPage
	if total%jobsPerPage != 0 {
		pages++
	}
	if pageID-1 >= pages {
		return []Job{}, total
	}
	offset := (pageID - 1) * jobsPerPage
	end := total
	if jobsPerPage < total-offset {
		end = offset + jobsPerPage
	}
	return matches[offset:end], total
}

// LastN returns up to n jobs matching c, most recently posted first.
func (r *Repository) LastN(c Criteria, n int) []Job {
	matches := Filter(r.jobs, c)
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].PostedAtTime().After(matches[b].PostedAtTime())
	})
	if n > 0 && len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// Provinces returns the provinces offered by the location filter.
func (r *Repository) Provinces() []string {
	return append([]string(nil), Provinces...)
}

func (r *Repository) Categories() []string {
	return append([]string(nil), Categories...)
}
