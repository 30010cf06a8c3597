package email

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Address struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

type EmailMessage struct {
	Sender      Address   `json:"sender"`
	To          []Address `json:"to"`
	Subject     string    `json:"subject"`
	ReplyTo     Address   `json:"replyTo,omitempty"`
	HtmlContent string    `json:"htmlContent,omitempty"`
}

// Client dispatches transactional emails. There is no mail provider behind
// it: every message is written to the logger instead of being delivered.
type Client struct {
	supportAddress string
	noReplyAddress string
	siteName       string
	logger         zerolog.Logger
}

func NewClient(supportAddress, noReplyAddress, siteName string, logger zerolog.Logger) Client {
	return Client{
		supportAddress: supportAddress,
		noReplyAddress: noReplyAddress,
		siteName:       siteName,
		logger:         logger.With().Str("component", "email").Logger(),
	}
}

func (e Client) DefaultSenderName() string {
	return e.siteName
}

func (e Client) SupportSenderAddress() Address {
	return Address{Name: e.siteName, Email: e.supportAddress}
}

func (e Client) NoReplySenderAddress() Address {
	return Address{Name: e.siteName, Email: e.noReplyAddress}
}

func (e Client) SendHTMLEmail(from, to, replyTo Address, subject, text string) error {
	if strings.TrimSpace(to.Email) == "" {
		return errors.New("email recipient cannot be empty")
	}
	msg := EmailMessage{
		Sender:      from,
		ReplyTo:     replyTo,
		Subject:     subject,
		To:          []Address{to},
		HtmlContent: text,
	}
	e.logger.Info().
		Str("from", msg.Sender.String()).
		Str("to", to.String()).
		Str("reply_to", msg.ReplyTo.String()).
		Str("subject", msg.Subject).
		Int("bytes", len(msg.HtmlContent)).
		Msg("email dispatched")
	return nil
}
