package handler

import (
	"net/http"

	"github.com/jobmoz/job-board/internal/aistudio"
	"github.com/jobmoz/job-board/internal/application"
	"github.com/jobmoz/job-board/internal/auth"
	"github.com/jobmoz/job-board/internal/job"
	"github.com/jobmoz/job-board/internal/message"
	"github.com/jobmoz/job-board/internal/middleware"
	"github.com/jobmoz/job-board/internal/seo"
	"github.com/jobmoz/job-board/internal/server"
	"github.com/jobmoz/job-board/internal/user"
)

type Repositories struct {
	Jobs         *job.Repository
	Users        *user.Repository
	Applications *application.Repository
	Messages     *message.Repository
}

// RegisterRoutes wires every endpoint of the API on svr.
func RegisterRoutes(svr server.Server, repos Repositories, authSvc *auth.Service, studio *aistudio.Studio) {
	cfg := svr.GetConfig()
	landingPages := seo.LandingPages(repos.Jobs.Provinces(), repos.Jobs.Categories(), cfg.AvailableSalaryBands)
	authenticated := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.UserAuthenticatedMiddleware(svr.SessionStore, svr.GetJWTSigningKey(), h)
	}

	// jobs
	svr.RegisterRoute("/api/jobs", ListJobsHandler(svr, repos.Jobs), []string{http.MethodGet})
	svr.RegisterRoute("/api/jobs/featured", FeaturedJobsHandler(svr, repos.Jobs), []string{http.MethodGet})
	svr.RegisterRoute("/api/jobs/{slug}", JobBySlugHandler(svr, repos.Jobs), []string{http.MethodGet})
	svr.RegisterRoute("/api/jobs/{slug}/image.png", JobImageHandler(svr, repos.Jobs), []string{http.MethodGet})
	svr.RegisterRoute("/api/filters", FiltersHandler(svr, repos.Jobs), []string{http.MethodGet})
	svr.RegisterRoute("/api/salary-stats", SalaryStatsHandler(svr, repos.Jobs), []string{http.MethodGet})
	svr.RegisterRoute("/api/landing-pages", LandingPagesHandler(svr, landingPages), []string{http.MethodGet})
	svr.RegisterRoute("/api/landing-pages/{uri}", LandingPageHandler(svr, repos.Jobs, landingPages), []string{http.MethodGet})

	// auth
	svr.RegisterRoute("/api/auth/login", LoginHandler(svr, authSvc, repos.Users), []string{http.MethodPost})
	svr.RegisterRoute("/api/auth/register", RegisterHandler(svr, authSvc, repos.Users), []string{http.MethodPost})
	svr.RegisterRoute("/api/auth/verify", VerifyAccountHandler(svr, authSvc, repos.Users), []string{http.MethodPost})
	svr.RegisterRoute("/api/auth/resend", ResendCodeHandler(svr, authSvc, repos.Users), []string{http.MethodPost})
	svr.RegisterRoute("/api/auth/recover", RecoverPasswordHandler(svr, authSvc), []string{http.MethodPost})
	svr.RegisterRoute("/api/auth/logout", LogoutHandler(svr, repos.Users), []string{http.MethodPost})

	// account
	svr.RegisterRoute("/api/me", authenticated(MeHandler(svr, repos.Users)), []string{http.MethodGet})
	svr.RegisterRoute("/api/me/saved-jobs", authenticated(SavedJobsHandler(svr, repos.Jobs, repos.Users)), []string{http.MethodGet})
	svr.RegisterRoute("/api/me/saved-jobs/{id}", authenticated(ToggleSavedJobHandler(svr, repos.Jobs, repos.Users)), []string{http.MethodPost})
	svr.RegisterRoute("/api/me/transactions", authenticated(TransactionsHandler(svr, repos.Users)), []string{http.MethodGet})
	svr.RegisterRoute("/api/dashboard/applications", authenticated(ApplicationsHandler(svr, repos.Jobs, repos.Applications, repos.Users)), []string{http.MethodGet})

	// messages
	svr.RegisterRoute("/api/messages", authenticated(ConversationsHandler(svr, repos.Messages, repos.Users)), []string{http.MethodGet})
	svr.RegisterRoute("/api/messages/{userID}", authenticated(ThreadHandler(svr, repos.Messages, repos.Users)), []string{http.MethodGet})
	svr.RegisterRoute("/api/messages/{userID}", authenticated(SendMessageHandler(svr, repos.Messages, repos.Users)), []string{http.MethodPost})

	// pricing and ai studio
	svr.RegisterRoute("/api/pricing", PricingHandler(svr), []string{http.MethodGet})
	svr.RegisterRoute("/api/ai-studio/edit", AIStudioEditHandler(svr, studio), []string{http.MethodPost})

	// feeds
	svr.RegisterRoute("/rss", ServeRSSFeed(svr, repos.Jobs), []string{http.MethodGet})
	svr.RegisterRoute("/sitemap.xml", SitemapHandler(svr, repos.Jobs, landingPages), []string{http.MethodGet})
	svr.RegisterRoute("/robots.txt", RobotsTxtHandler(svr), []string{http.MethodGet})
}
