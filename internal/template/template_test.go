package template

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToHTML(t *testing.T) {
	tmpl := NewTemplate()

	out := string(tmpl.MarkdownToHTML("**React** e TypeScript"))
	assert.Contains(t, out, "<strong>React</strong>")

	out = string(tmpl.MarkdownToHTML("olá <script>alert(1)</script>"))
	assert.False(t, strings.Contains(out, "<script>"))
	assert.Contains(t, out, "olá")
}

func TestStringToHTMLSanitizes(t *testing.T) {
	tmpl := NewTemplate()
	assert.Equal(t, "<b>ok</b>", string(tmpl.StringToHTML(`<b onclick="x()">ok</b>`)))
}

func TestHumanTime(t *testing.T) {
	assert.Equal(t, "3 days ago", NewTemplate().HumanTime(time.Now().Add(-72*time.Hour)))
}
