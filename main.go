package main

import (
	"context"
	"net/http"
	"os"

	"github.com/jobmoz/job-board/internal/aistudio"
	"github.com/jobmoz/job-board/internal/application"
	"github.com/jobmoz/job-board/internal/auth"
	"github.com/jobmoz/job-board/internal/config"
	"github.com/jobmoz/job-board/internal/email"
	"github.com/jobmoz/job-board/internal/handler"
	"github.com/jobmoz/job-board/internal/job"
	"github.com/jobmoz/job-board/internal/logger"
	"github.com/jobmoz/job-board/internal/message"
	"github.com/jobmoz/job-board/internal/server"
	"github.com/jobmoz/job-board/internal/template"
	"github.com/jobmoz/job-board/internal/user"

	"github.com/allegro/bigcache/v3"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log := logger.New(os.Getenv("ENV"))
		log.Fatal().Err(err).Msg("unable to load config")
	}
	log := logger.New(cfg.Env)

	bigCache, err := bigcache.New(context.Background(), bigcache.DefaultConfig(cfg.SessionTTL))
	if err != nil {
		log.Fatal().Err(err).Msg("unable to initialise big cache")
	}
	emailClient := email.NewClient(cfg.SupportEmail, cfg.NoReplyEmail, cfg.SiteName, log)
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Secure = cfg.Env != "dev"
	sessionStore.Options.MaxAge = int(cfg.SessionTTL.Seconds())

	svr := server.NewServer(
		cfg,
		mux.NewRouter(),
		template.NewTemplate(),
		emailClient,
		sessionStore,
		bigCache,
		log,
	)

	authSvc := auth.NewService(auth.Config{
		Latency:       cfg.AuthLatency,
		VerifyLatency: cfg.VerifyLatency,
	}, emailClient, log)
	studio := aistudio.NewStudio(aistudio.MockEditor{Delay: aistudio.DefaultEditLatency}, log)

	handler.RegisterRoutes(svr, handler.Repositories{
		Jobs:         job.NewRepository(job.MockJobs),
		Users:        user.NewRepository(bigCache),
		Applications: application.NewRepository(application.MockApplications),
		Messages:     message.NewRepository(message.MockMessages),
	}, authSvc, studio)

	log.Fatal().Err(svr.Run()).Msg("server stopped")
}
