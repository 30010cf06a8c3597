package handler

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io/ioutil"
	"math"
	"net/http"
	"strconv"

	"github.com/jobmoz/job-board/internal/imagemeta"
	"github.com/jobmoz/job-board/internal/job"
	"github.com/jobmoz/job-board/internal/seo"
	"github.com/jobmoz/job-board/internal/server"

	"github.com/gorilla/mux"
)

type jobListResponse struct {
	Jobs       []job.JobPost `json:"jobs"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Pages      []int         `json:"pages"`
	Criteria   job.Criteria  `json:"criteria"`
	IsFiltered bool          `json:"isFiltered"`
}

func pageFromQuery(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("p"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func pageNumbers(total, perPage int) []int {
	if perPage < 1 || total == 0 {
		return []int{1}
	}
	n := int(math.Ceil(float64(total) / float64(perPage)))
	pages := make([]int, n)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

func renderJobList(svr server.Server, w http.ResponseWriter, r *http.Request, jobRepo *job.Repository, c job.Criteria) {
	page := pageFromQuery(r)
	perPage := svr.GetConfig().JobsPerPage
	jobs, total := jobRepo.JobsByQuery(c, page, perPage)
	svr.JSON(w, http.StatusOK, jobListResponse{
		Jobs:       svr.RenderJobPosts(jobs),
		Total:      total,
		Page:       page,
		Pages:      pageNumbers(total, perPage),
		Criteria:   c,
		IsFiltered: !c.IsEmpty(),
	})
}

func ListJobsHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderJobList(svr, w, r, jobRepo, job.ParseCriteriaFromQuery(r.URL.Query()))
	}
}

func FeaturedJobsHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.JSON(w, http.StatusOK, svr.FeaturedJobPosts(jobRepo))
	}
}

func JobBySlugHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := mux.Vars(r)["slug"]
		j, err := jobRepo.JobBySlug(slug)
		if err != nil {
			svr.JSONError(w, http.StatusNotFound, "Vaga não encontrada.")
			return
		}
		svr.JSON(w, http.StatusOK, svr.RenderJobPost(j))
	}
}

func JobImageHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := mux.Vars(r)["slug"]
		j, err := jobRepo.JobBySlug(slug)
		if err != nil {
			svr.TEXT(w, http.StatusNotFound, "job not found")
			return
		}
		out, err := imagemeta.GenerateImageForJob(j)
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to generate image for job %s", j.ID))
			svr.TEXT(w, http.StatusInternalServerError, "unable to generate image")
			return
		}
		b, err := ioutil.ReadAll(out)
		if err != nil {
			svr.Log(err, "unable to read job image")
			svr.TEXT(w, http.StatusInternalServerError, "unable to generate image")
			return
		}
		svr.MEDIA(w, http.StatusOK, b, "image/png")
	}
}

type salaryBand struct {
	Value int64  `json:"value"`
	Label string `json:"label"`
}

func FiltersHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bands := make([]salaryBand, 0, len(svr.GetConfig().AvailableSalaryBands))
		for _, b := range svr.GetConfig().AvailableSalaryBands {
			bands = append(bands, salaryBand{Value: int64(b), Label: job.FormatSalary(int64(b))})
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{
			"provinces":   jobRepo.Provinces(),
			"categories":  jobRepo.Categories(),
			"types":       job.Types,
			"salaryBands": bands,
		})
	}
}

func SalaryStatsHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := job.ParseCriteriaFromQuery(r.URL.Query())
		if !c.IsEmpty() {
			svr.JSON(w, http.StatusOK, job.SalaryStats(job.Filter(jobRepo.All(), c)))
			return
		}
		if raw, ok := svr.CacheGet(server.CacheKeySalaryStats); ok {
			var st job.SalaryStat
			if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&st); err == nil {
				svr.JSON(w, http.StatusOK, st)
				return
			}
		}
		st := job.SalaryStats(jobRepo.All())
		buf := &bytes.Buffer{}
		if err := gob.NewEncoder(buf).Encode(st); err != nil {
			svr.Log(err, "unable to encode salary stats")
		} else if err := svr.CacheSet(server.CacheKeySalaryStats, buf.Bytes()); err != nil {
			svr.Log(err, "unable to cache salary stats")
		}
		svr.JSON(w, http.StatusOK, st)
	}
}

func LandingPagesHandler(svr server.Server, pages []seo.LandingPage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.JSON(w, http.StatusOK, pages)
	}
}

func LandingPageHandler(svr server.Server, jobRepo *job.Repository, pages []seo.LandingPage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uri := mux.Vars(r)["uri"]
		p, ok := seo.LandingPageByURI(pages, uri)
		if !ok {
			svr.JSONError(w, http.StatusNotFound, "Página não encontrada.")
			return
		}
		renderJobList(svr, w, r, jobRepo, p.Criteria)
	}
}
