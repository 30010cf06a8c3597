package email

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendHTMLEmailLogsDispatch(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewClient("apoio@jobmoz.co.mz", "no-reply@jobmoz.co.mz", "JobMoz", zerolog.New(buf))

	err := c.SendHTMLEmail(c.NoReplySenderAddress(), Address{Email: "ana@example.com"}, c.SupportSenderAddress(), "Código", "<p>123456</p>")
	require.NoError(t, err)

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "email dispatched", entry["message"])
	assert.Equal(t, "email", entry["component"])
	assert.Equal(t, "ana@example.com", entry["to"])
	assert.Equal(t, "JobMoz <no-reply@jobmoz.co.mz>", entry["from"])
	assert.Equal(t, "Código", entry["subject"])
}

func TestSendHTMLEmailRequiresRecipient(t *testing.T) {
	c := NewClient("a@b.com", "c@d.com", "JobMoz", zerolog.Nop())
	assert.Error(t, c.SendHTMLEmail(c.NoReplySenderAddress(), Address{}, Address{}, "s", "t"))
}
