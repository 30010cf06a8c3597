package seo

import (
	"fmt"
	"time"

	"github.com/jobmoz/job-board/internal/job"

	"github.com/gosimple/slug"
	"github.com/snabb/sitemap"
)

func StaticPages() []string {
	return []string{
		"precos",
		"ai-studio",
		"sobre",
		"termos",
		"privacidade",
	}
}

// LandingPage is a canned search with its own indexable url.
type LandingPage struct {
	URI      string       `json:"uri"`
	Title    string       `json:"title"`
	Criteria job.Criteria `json:"criteria"`
}

// LandingPages returns a page per province, per category, per category in
// each province and per salary band.
func LandingPages(provinces, categories []string, salaryBands []int) []LandingPage {
	pages := make([]LandingPage, 0, len(provinces)*(len(categories)+1)+len(categories)+len(salaryBands))
	for _, p := range provinces {
		pages = appendLandingPage(pages, fmt.Sprintf("Vagas em %s", p), job.Criteria{Province: p})
	}
	for _, c := range categories {
		pages = appendLandingPage(pages, fmt.Sprintf("Vagas de %s", c), job.Criteria{Category: c})
		for _, p := range provinces {
			pages = appendLandingPage(pages, fmt.Sprintf("Vagas de %s em %s", c, p), job.Criteria{Province: p, Category: c})
		}
	}
	for _, band := range salaryBands {
		pages = appendLandingPage(pages, fmt.Sprintf("Vagas a partir de %s", job.FormatSalary(int64(band))), job.Criteria{MinSalary: int64(band)})
	}
	return pages
}

func appendLandingPage(pages []LandingPage, title string, c job.Criteria) []LandingPage {
	return append(pages, LandingPage{URI: slug.Make(title), Title: title, Criteria: c})
}

func LandingPageByURI(pages []LandingPage, uri string) (LandingPage, bool) {
	for _, p := range pages {
		if p.URI == uri {
			return p, true
		}
	}
	return LandingPage{}, false
}

// Sitemap lists the home page, static pages, landing pages and every job.
// siteURL turns a path into an absolute url.
func Sitemap(siteURL func(string) string, jobs []job.Job, landingPages []LandingPage, now time.Time) *sitemap.Sitemap {
	sm := sitemap.New()
	sm.Add(&sitemap.URL{
		Loc:        siteURL("/"),
		LastMod:    &now,
		ChangeFreq: sitemap.Daily,
	})
	for _, p := range StaticPages() {
		sm.Add(&sitemap.URL{
			Loc:        siteURL(p),
			LastMod:    &now,
			ChangeFreq: sitemap.Monthly,
		})
	}
	for _, p := range landingPages {
		sm.Add(&sitemap.URL{
			Loc:        siteURL("vagas/" + p.URI),
			LastMod:    &now,
			ChangeFreq: sitemap.Daily,
		})
	}
	for _, j := range jobs {
		posted := j.PostedAtTime()
		u := &sitemap.URL{
			Loc:        siteURL("vaga/" + j.Slug),
			ChangeFreq: sitemap.Weekly,
		}
		if !posted.IsZero() {
			u.LastMod = &posted
		}
		sm.Add(u)
	}
	return sm
}
