package server

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jobmoz/job-board/internal/config"
	"github.com/jobmoz/job-board/internal/email"
	"github.com/jobmoz/job-board/internal/job"
	"github.com/jobmoz/job-board/internal/middleware"
	"github.com/jobmoz/job-board/internal/template"

	"github.com/allegro/bigcache/v3"
	"github.com/getsentry/raven-go"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	CacheKeyFeaturedJobs = "featuredJobs"
	CacheKeySalaryStats  = "salaryStats"
	CacheKeySitemap      = "sitemap"
)

type Server struct {
	cfg          config.Config
	router       *mux.Router
	tmpl         *template.Template
	emailClient  email.Client
	SessionStore *sessions.CookieStore
	bigCache     *bigcache.BigCache
	logger       zerolog.Logger
}

func NewServer(
	cfg config.Config,
	r *mux.Router,
	t *template.Template,
	emailClient email.Client,
	sessionStore *sessions.CookieStore,
	bigCache *bigcache.BigCache,
	logger zerolog.Logger,
) Server {
	if err := raven.SetDSN(cfg.SentryDSN); err != nil {
		logger.Error().Err(err).Msg("unable to set sentry dsn")
	}
	return Server{
		cfg:          cfg,
		router:       r,
		tmpl:         t,
		emailClient:  emailClient,
		SessionStore: sessionStore,
		bigCache:     bigCache,
		logger:       logger,
	}
}

func (s Server) RegisterRoute(path string, handler func(w http.ResponseWriter, r *http.Request), methods []string) {
	s.router.HandleFunc(path, handler).Methods(methods...)
}

func (s Server) GetConfig() config.Config {
	return s.cfg
}

func (s Server) Logger() zerolog.Logger {
	return s.logger
}

func (s Server) MarkdownToHTML(str string) string {
	return string(s.tmpl.MarkdownToHTML(str))
}

// RenderJobPosts decorates jobs for display.
func (s Server) RenderJobPosts(jobs []job.Job) []job.JobPost {
	posts := make([]job.JobPost, 0, len(jobs))
	for _, j := range jobs {
		posts = append(posts, s.RenderJobPost(j))
	}
	return posts
}

func (s Server) RenderJobPost(j job.Job) job.JobPost {
	p := job.JobPost{
		Job:              j,
		DescriptionHTML:  s.MarkdownToHTML(j.Description),
		SalaryRangeLabel: job.SalaryRangeLabel(j.SalaryRange),
		MinSalary:        job.MinSalary(j.SalaryRange),
	}
	if posted := j.PostedAtTime(); !posted.IsZero() {
		p.PostedAtHuman = s.tmpl.HumanTime(posted)
	}
	return p
}

// FeaturedJobPosts serves the featured listing from the cache, rendering
// and storing it on a miss.
func (s Server) FeaturedJobPosts(jobRepo *job.Repository) []job.JobPost {
	if raw, ok := s.CacheGet(CacheKeyFeaturedJobs); ok {
		var posts []job.JobPost
		err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&posts)
		if err == nil {
			return posts
		}
		s.Log(errors.Wrap(err, "decode featured jobs"), "unable to decode featured jobs")
	}
	posts := s.RenderJobPosts(jobRepo.Featured())
	buf := &bytes.Buffer{}
	if err := gob.NewEncoder(buf).Encode(posts); err != nil {
		s.Log(err, "unable to encode featured jobs")
		return posts
	}
	if err := s.CacheSet(CacheKeyFeaturedJobs, buf.Bytes()); err != nil {
		s.Log(err, "unable to cache featured jobs")
	}
	return posts
}

func (s Server) XML(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(status)
	w.Write(data)
}

func (s Server) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// JSONError answers with a message meant for the user.
func (s Server) JSONError(w http.ResponseWriter, status int, msg string) {
	s.JSON(w, status, map[string]string{"error": msg})
}

func (s Server) TEXT(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

func (s Server) MEDIA(w http.ResponseWriter, status int, media []byte, mediaType string) {
	w.Header().Set("Content-Type", mediaType)
	w.Header().Set("Cache-Control", "max-age=31536000")
	w.WriteHeader(status)
	w.Write(media)
}

func (s Server) Log(err error, msg string) {
	raven.CaptureErrorAndWait(err, map[string]string{"ctx": msg})
	s.logger.Error().Err(err).Msg(msg)
}

func (s Server) GetEmail() email.Client {
	return s.emailClient
}

func (s Server) GetJWTSigningKey() []byte {
	return s.cfg.JwtSigningKey
}

func (s Server) CacheGet(key string) ([]byte, bool) {
	out, err := s.bigCache.Get(key)
	if err != nil {
		return []byte{}, false
	}
	return out, true
}

func (s Server) CacheSet(key string, val []byte) error {
	return s.bigCache.Set(key, val)
}

func (s Server) CacheDelete(key string) error {
	err := s.bigCache.Delete(key)
	if err == bigcache.ErrEntryNotFound {
		return nil
	}
	return err
}

// Handler wraps the router with the middleware chain.
func (s Server) Handler() http.Handler {
	return middleware.HTTPSMiddleware(
		middleware.LoggingMiddleware(middleware.HeadersMiddleware(s.router, s.cfg.Env), s.logger),
		s.cfg.Env,
	)
}

func (s Server) Run() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	if s.cfg.Env == "dev" {
		s.logger.Info().Msgf("local env http://localhost:%s", s.cfg.Port)
		addr = fmt.Sprintf("localhost:%s", s.cfg.Port)
	}
	return http.ListenAndServe(addr, s.Handler())
}
