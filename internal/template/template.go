package template

import (
	stdtemplate "html/template"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	blackfriday "gopkg.in/russross/blackfriday.v2"
)

type Template struct {
	policy *bluemonday.Policy
}

func NewTemplate() *Template {
	return &Template{policy: bluemonday.UGCPolicy()}
}

func (t *Template) StringToHTML(s string) stdtemplate.HTML {
	return stdtemplate.HTML(t.policy.Sanitize(s))
}

// MarkdownToHTML renders job descriptions. Raw HTML in the input is
// sanitized away.
func (t *Template) MarkdownToHTML(s string) stdtemplate.HTML {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink |
			blackfriday.NofollowLinks |
			blackfriday.NoreferrerLinks |
			blackfriday.HrefTargetBlank,
	})
	out := blackfriday.Run([]byte(s), blackfriday.WithRenderer(renderer))
	return stdtemplate.HTML(t.policy.SanitizeBytes(out))
}

func (t *Template) HumanTime(tm time.Time) string {
	return humanize.Time(tm)
}
