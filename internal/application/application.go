package application

import (
	"sort"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusViewed    Status = "viewed"
	StatusInterview Status = "interview"
	StatusRejected  Status = "rejected"
	StatusAccepted  Status = "accepted"
)

var Statuses = []Status{StatusPending, StatusViewed, StatusInterview, StatusRejected, StatusAccepted}

type Application struct {
	ID             string `json:"id"`
	JobID          string `json:"jobId"`
	CandidateID    string `json:"candidateId"`
	CandidateName  string `json:"candidateName"`
	CandidateTitle string `json:"candidateTitle"`
	Date           string `json:"date"`
	Status         Status `json:"status"`
	MatchScore     int    `json:"matchScore,omitempty"` // 0-100
}

var MockApplications = []Application{
	{ID: "a1", JobID: "1", CandidateID: "u2", CandidateName: "João Manganhela", CandidateTitle: "Fullstack Developer", Date: "2024-05-15", Status: StatusInterview, MatchScore: 95},
	{ID: "a2", JobID: "1", CandidateID: "u3", CandidateName: "Maria Silva", CandidateTitle: "Frontend Dev", Date: "2024-05-16", Status: StatusPending, MatchScore: 78},
	{ID: "a3", JobID: "2", CandidateID: "u4", CandidateName: "Carlos Tembe", CandidateTitle: "Contabilista Junior", Date: "2024-05-14", Status: StatusRejected, MatchScore: 40},
}

// Repository is a read only view over a fixed set of applications.
type Repository struct {
	applications []Application
}

func NewRepository(applications []Application) *Repository {
	cp := make([]Application, len(applications))
	copy(cp, applications)
	return &Repository{applications: cp}
}

func (r *Repository) All() []Application {
	return r.filter(func(Application) bool { return true })
}

func (r *Repository) ForJob(jobID string) []Application {
	return r.filter(func(a Application) bool { return a.JobID == jobID })
}

func (r *Repository) ForCandidate(candidateID string) []Application {
	return r.filter(func(a Application) bool { return a.CandidateID == candidateID })
}

// ForJobs returns the applications to any of jobIDs ranked by match score.
func (r *Repository) ForJobs(jobIDs []string) []Application {
	wanted := make(map[string]struct{}, len(jobIDs))
	for _, id := range jobIDs {
		wanted[id] = struct{}{}
	}
	res := r.filter(func(a Application) bool {
		_, ok := wanted[a.JobID]
		return ok
	})
	sort.SliceStable(res, func(i, j int) bool { return res[i].MatchScore > res[j].MatchScore })
	return res
}

func (r *Repository) CountByStatus() map[Status]int {
	counts := make(map[Status]int, len(Statuses))
	for _, s := range Statuses {
		counts[s] = 0
	}
	for _, a := range r.applications {
		counts[a.Status]++
	}
	return counts
}

func (r *Repository) filter(keep func(Application) bool) []Application {
	res := make([]Application, 0)
	for _, a := range r.applications {
		if keep(a) {
			res = append(res, a)
		}
	}
	return res
}
