// Package auth is a stand-in for the account backend. It validates input
// and simulates the latency of the real calls but stores nothing and checks
// no credentials.
package auth

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jobmoz/job-board/internal/email"
	"github.com/jobmoz/job-board/internal/latency"
	"github.com/jobmoz/job-board/internal/user"

	"github.com/rs/zerolog"
)

const (
	DefaultLatency       = 1000 * time.Millisecond
	DefaultVerifyLatency = 1500 * time.Millisecond
)

type mailer interface {
	SendHTMLEmail(from, to, replyTo email.Address, subject, text string) error
	NoReplySenderAddress() email.Address
	SupportSenderAddress() email.Address
}

type Registration struct {
	Name          string    `json:"name" validate:"required"`
	Email         string    `json:"email" validate:"required"`
	Phone         string    `json:"phone"`
	Password      string    `json:"password" validate:"required"`
	Role          user.Role `json:"role" validate:"required,oneof=candidate company"`
	TermsAccepted bool      `json:"termsAccepted"`
}

type RegistrationResult struct {
	RequiresVerification bool   `json:"requiresVerification"`
	Email                string `json:"email"`
}

type Config struct {
	Latency       time.Duration
	VerifyLatency time.Duration
	Sleep         latency.Sleeper
}

type Service struct {
	cfg    Config
	mail   mailer
	logger zerolog.Logger
}

// NewService replaces negative latencies with the defaults and uses a real
// timer when no sleeper is given.
func NewService(cfg Config, mail mailer, logger zerolog.Logger) *Service {
	if cfg.Sleep == nil {
		cfg.Sleep = latency.Real
	}
	if cfg.Latency < 0 {
		cfg.Latency = DefaultLatency
	}
	if cfg.VerifyLatency < 0 {
		cfg.VerifyLatency = DefaultVerifyLatency
	}
	return &Service{
		cfg:    cfg,
		mail:   mail,
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// Login accepts any well formed email with a password of six characters or
// more and returns a candidate derived from the email.
func (s *Service) Login(ctx context.Context, emailAddr, password string) (user.User, error) {
	if err := s.cfg.Sleep(ctx, s.cfg.Latency); err != nil {
		return user.User{}, err
	}
	if !ValidateEmail(emailAddr) {
		return user.User{}, errLoginInvalidFormat
	}
	if utf8.RuneCountInString(password) < minLoginPasswordLength {
		return user.User{}, ErrInvalidCredentials
	}
	name := strings.SplitN(emailAddr, "@", 2)[0]
	s.logger.Info().Str("email", emailAddr).Msg("login")
	return user.User{
		ID:       UserIDForEmail(emailAddr),
		Name:     name,
		Email:    emailAddr,
		Role:     user.RoleCandidate,
		Avatar:   AvatarURL(name),
		Verified: true,
	}, nil
}

// Register validates a sign up. Success only means a verification code is
// due; no user exists yet.
func (s *Service) Register(ctx context.Context, reg Registration) (RegistrationResult, error) {
	if err := s.cfg.Sleep(ctx, s.cfg.Latency); err != nil {
		return RegistrationResult{}, err
	}
	if !reg.TermsAccepted {
		return RegistrationResult{}, ErrTermsNotAccepted
	}
	if !ValidateEmail(reg.Email) {
		return RegistrationResult{}, ErrInvalidFormat
	}
	if !ValidatePassword(reg.Password) {
		return RegistrationResult{}, ErrWeakPassword
	}
	s.logger.Info().Str("email", reg.Email).Str("role", string(reg.Role)).Msg("registration pending verification")
	return RegistrationResult{RequiresVerification: true, Email: reg.Email}, nil
}

// VerifyAccount accepts any code of exactly six characters.
func (s *Service) VerifyAccount(ctx context.Context, code string) error {
	if err := s.cfg.Sleep(ctx, s.cfg.VerifyLatency); err != nil {
		return err
	}
	if !ValidateCode(code) {
		return ErrInvalidCode
	}
	return nil
}

// ResendCode always succeeds; a failed dispatch is only logged.
func (s *Service) ResendCode(ctx context.Context, emailAddr string) error {
	if err := s.cfg.Sleep(ctx, s.cfg.Latency); err != nil {
		return err
	}
	s.dispatch(emailAddr, "Código de verificação", "<p>Enviámos um novo código de verificação para a sua conta.</p>")
	s.logger.Info().Str("email", emailAddr).Msg("code resent")
	return nil
}

func (s *Service) RecoverPassword(ctx context.Context, emailAddr string) error {
	if err := s.cfg.Sleep(ctx, s.cfg.Latency); err != nil {
		return err
	}
	if !ValidateEmail(emailAddr) {
		return ErrInvalidFormat
	}
	s.dispatch(emailAddr, "Recuperação de senha", "<p>Use o link enviado para redefinir a sua senha.</p>")
	s.logger.Info().Str("email", emailAddr).Msg("password reset link sent")
	return nil
}

func (s *Service) dispatch(to, subject, body string) {
	if s.mail == nil {
		return
	}
	err := s.mail.SendHTMLEmail(s.mail.NoReplySenderAddress(), email.Address{Email: to}, s.mail.SupportSenderAddress(), subject, body)
	if err != nil {
		s.logger.Error().Err(err).Str("email", to).Str("subject", subject).Msg("unable to send email")
	}
}

// UserFromRegistration builds the account a verified registration turns into.
func UserFromRegistration(name, emailAddr, phone string, role user.Role) user.User {
	return user.User{
		ID:       UserIDForEmail(emailAddr),
		Name:     name,
		Email:    emailAddr,
		Phone:    phone,
		Role:     role,
		Avatar:   AvatarURL(name),
		Verified: true,
	}
}

// UserIDForEmail derives a stable id so repeated logins map to the same user.
func UserIDForEmail(emailAddr string) string {
	sum := sha1.Sum([]byte(strings.ToLower(emailAddr)))
	return "u-" + hex.EncodeToString(sum[:])[:9]
}

func AvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=0D9488&color=fff", url.QueryEscape(name))
}
