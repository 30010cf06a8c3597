package handler

import (
	"net/http"

	"github.com/jobmoz/job-board/internal/application"
	"github.com/jobmoz/job-board/internal/job"
	"github.com/jobmoz/job-board/internal/payment"
	"github.com/jobmoz/job-board/internal/server"
	"github.com/jobmoz/job-board/internal/user"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

func SavedJobsHandler(svr server.Server, jobRepo *job.Repository, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := currentUser(svr, w, r, userRepo)
		if !ok {
			return
		}
		jobs := make([]job.Job, 0, len(u.SavedJobIDs))
		for _, id := range u.SavedJobIDs {
			j, err := jobRepo.JobByID(id)
			if err != nil {
				continue
			}
			jobs = append(jobs, j)
		}
		svr.JSON(w, http.StatusOK, svr.RenderJobPosts(jobs))
	}
}

func ToggleSavedJobHandler(svr server.Server, jobRepo *job.Repository, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := currentUser(svr, w, r, userRepo)
		if !ok {
			return
		}
		jobID := mux.Vars(r)["id"]
		if _, err := jobRepo.JobByID(jobID); err != nil {
			svr.JSONError(w, http.StatusNotFound, "Vaga não encontrada.")
			return
		}
		updated, saved, err := userRepo.ToggleSavedJob(u.ID, jobID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				svr.JSONError(w, http.StatusUnauthorized, msgSessionExpired)
				return
			}
			svr.Log(err, "unable to toggle saved job")
			svr.JSONError(w, http.StatusInternalServerError, msgSomethingWentWrong)
			return
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{
			"saved":       saved,
			"savedJobIds": updated.SavedJobIDs,
		})
	}
}

type applicationsResponse struct {
	Applications []application.Application  `json:"applications"`
	ByStatus     map[application.Status]int `json:"byStatus"`
	Jobs         map[string]job.Job         `json:"jobs"`
}

// ApplicationsHandler shows companies who applied to their listings and
// candidates where they applied.
func ApplicationsHandler(svr server.Server, jobRepo *job.Repository, appRepo *application.Repository, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := currentUser(svr, w, r, userRepo)
		if !ok {
			return
		}
		var apps []application.Application
		if u.IsCompany() {
			var ids []string
			for _, j := range jobRepo.All() {
				ids = append(ids, j.ID)
			}
			apps = appRepo.ForJobs(ids)
		} else {
			apps = appRepo.ForCandidate(u.ID)
		}
		if jobID := r.URL.Query().Get("job"); jobID != "" {
			filtered := make([]application.Application, 0, len(apps))
			for _, a := range apps {
				if a.JobID == jobID {
					filtered = append(filtered, a)
				}
			}
			apps = filtered
		}
		jobs := make(map[string]job.Job)
		for _, a := range apps {
			if j, err := jobRepo.JobByID(a.JobID); err == nil {
				jobs[j.ID] = j
			}
		}
		svr.JSON(w, http.StatusOK, applicationsResponse{
			Applications: apps,
			ByStatus:     appRepo.CountByStatus(),
			Jobs:         jobs,
		})
	}
}

func TransactionsHandler(svr server.Server, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := currentUser(svr, w, r, userRepo)
		if !ok {
			return
		}
		if !u.IsCompany() {
			svr.JSON(w, http.StatusOK, []payment.Transaction{})
			return
		}
		svr.JSON(w, http.StatusOK, payment.Transactions())
	}
}

func PricingHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.JSON(w, http.StatusOK, map[string]interface{}{
			"plans": payment.Plans(),
			"ai":    payment.AIPricingOptions(),
			"ads":   payment.AdPricingOptions(),
		})
	}
}
