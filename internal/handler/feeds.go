package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/jobmoz/job-board/internal/job"
	"github.com/jobmoz/job-board/internal/seo"
	"github.com/jobmoz/job-board/internal/server"

	"github.com/gorilla/feeds"
)

const rssFeedSize = 20

func ServeRSSFeed(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := svr.GetConfig()
		jobs := jobRepo.LastN(job.ParseCriteriaFromQuery(r.URL.Query()), rssFeedSize)
		author := &feeds.Author{Name: cfg.SiteName, Email: cfg.SupportEmail}
		feed := &feeds.Feed{
			Title:       cfg.SiteName + " Vagas",
			Link:        &feeds.Link{Href: cfg.SiteURL("/")},
			Description: "Últimas vagas de emprego em Moçambique",
			Author:      author,
			Created:     time.Now(),
		}
		for _, j := range jobs {
			feed.Items = append(feed.Items, &feeds.Item{
				Id:          j.ID,
				Title:       fmt.Sprintf("%s na %s - %s", j.Title, j.Company, j.Location),
				Link:        &feeds.Link{Href: cfg.SiteURL("vaga/" + j.Slug)},
				Description: svr.MarkdownToHTML(j.Description + "\n\n**Salário:** " + job.SalaryRangeLabel(j.SalaryRange)),
				Author:      author,
				Enclosure:   &feeds.Enclosure{Length: "0", Type: "image/png", Url: cfg.SiteURL("api/jobs/" + j.Slug + "/image.png")},
				Created:     j.PostedAtTime(),
			})
		}
		rssFeed, err := feed.ToRss()
		if err != nil {
			svr.Log(err, "unable to convert rss feed to xml")
			svr.XML(w, http.StatusInternalServerError, []byte{})
			return
		}
		svr.XML(w, http.StatusOK, []byte(rssFeed))
	}
}

func SitemapHandler(svr server.Server, jobRepo *job.Repository, landingPages []seo.LandingPage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, ok := svr.CacheGet(server.CacheKeySitemap); ok {
			svr.XML(w, http.StatusOK, cached)
			return
		}
		sm := seo.Sitemap(svr.GetConfig().SiteURL, jobRepo.All(), landingPages, time.Now().UTC())
		buf := new(bytes.Buffer)
		if _, err := sm.WriteTo(buf); err != nil {
			svr.Log(err, "sitemap.WriteTo")
			svr.TEXT(w, http.StatusInternalServerError, "unable to generate sitemap")
			return
		}
		if err := svr.CacheSet(server.CacheKeySitemap, buf.Bytes()); err != nil {
			svr.Log(err, "unable to cache sitemap")
		}
		svr.XML(w, http.StatusOK, buf.Bytes())
	}
}

func RobotsTxtHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.TEXT(w, http.StatusOK, fmt.Sprintf("User-agent: *\nDisallow: /api/me\nDisallow: /api/messages\nDisallow: /api/dashboard\n\nSitemap: %s\n", svr.GetConfig().SiteURL("sitemap.xml")))
	}
}
