package auth

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jobmoz/job-board/internal/email"
	"github.com/jobmoz/job-board/internal/latency"
	"github.com/jobmoz/job-board/internal/user"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	to      string
	subject string
}

type fakeMailer struct {
	sent []sentEmail
	err  error
}

func (m *fakeMailer) SendHTMLEmail(from, to, replyTo email.Address, subject, text string) error {
	m.sent = append(m.sent, sentEmail{to: to.Email, subject: subject})
	return m.err
}

func (m *fakeMailer) NoReplySenderAddress() email.Address {
	return email.Address{Email: "no-reply@jobmoz.co.mz"}
}

func (m *fakeMailer) SupportSenderAddress() email.Address {
	return email.Address{Email: "apoio@jobmoz.co.mz"}
}

func newTestService(mail mailer) (*Service, *latency.Recorder) {
	rec := &latency.Recorder{}
	svc := NewService(Config{Latency: DefaultLatency, VerifyLatency: DefaultVerifyLatency, Sleep: rec.Sleep}, mail, zerolog.Nop())
	return svc, rec
}

func validRegistration() Registration {
	return Registration{
		Name:          "Ana Sitoe",
		Email:         "ana@example.com",
		Password:      "abc12345",
		Role:          user.RoleCandidate,
		TermsAccepted: true,
	}
}

func TestLogin(t *testing.T) {
	svc, rec := newTestService(nil)
	ctx := context.Background()

	_, err := svc.Login(ctx, "not-an-email", "anything")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFormat))
	assert.Equal(t, "Formato de e-mail inválido.", err.Error())

	_, err = svc.Login(ctx, "a@b.com", "12345")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	assert.Equal(t, "Senha incorreta.", err.Error())

	u, err := svc.Login(ctx, "a@b.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "a", u.Name)
	assert.Equal(t, "a@b.com", u.Email)
	assert.Equal(t, user.RoleCandidate, u.Role)
	assert.True(t, u.Verified)
	assert.True(t, strings.HasPrefix(u.ID, "u-"))
	assert.Len(t, u.ID, 11)

	assert.Equal(t, []time.Duration{DefaultLatency, DefaultLatency, DefaultLatency}, rec.Delays)
}

func TestLoginIsDeterministic(t *testing.T) {
	svc, _ := newTestService(nil)
	a, err := svc.Login(context.Background(), "joao@techmoz.co.mz", "segredo1")
	require.NoError(t, err)
	b, err := svc.Login(context.Background(), "joao@techmoz.co.mz", "outra-senha")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, UserIDForEmail("JOAO@techmoz.co.mz"), a.ID)
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	res, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, RegistrationResult{RequiresVerification: true, Email: "ana@example.com"}, res)

	tests := []struct {
		name   string
		mutate func(r *Registration)
		want   error
	}{
		{"terms", func(r *Registration) { r.TermsAccepted = false }, ErrTermsNotAccepted},
		{"email", func(r *Registration) { r.Email = "ana.example.com" }, ErrInvalidFormat},
		{"no digit", func(r *Registration) { r.Password = "abcdefgh" }, ErrWeakPassword},
		{"too short", func(r *Registration) { r.Password = "1234567" }, ErrWeakPassword},
		{"no letter", func(r *Registration) { r.Password = "12345678" }, ErrWeakPassword},
		{"symbol", func(r *Registration) { r.Password = "abc1234!" }, ErrWeakPassword},
		{"terms checked first", func(r *Registration) { r.TermsAccepted = false; r.Email = "x" }, ErrTermsNotAccepted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			tt.mutate(&reg)
			_, err := svc.Register(ctx, reg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestVerifyAccount(t *testing.T) {
	svc, rec := newTestService(nil)
	ctx := context.Background()

	err := svc.VerifyAccount(ctx, "12345")
	assert.True(t, errors.Is(err, ErrInvalidCode))
	assert.Equal(t, "Código inválido. Digite os 6 números.", err.Error())
	assert.True(t, errors.Is(svc.VerifyAccount(ctx, "1234567"), ErrInvalidCode))

	assert.NoError(t, svc.VerifyAccount(ctx, "123456"))
	assert.NoError(t, svc.VerifyAccount(ctx, "abcdef"))
	assert.Equal(t, DefaultVerifyLatency, rec.Delays[0])
}

func TestResendCodeAlwaysSucceeds(t *testing.T) {
	mail := &fakeMailer{err: errors.New("provider down")}
	svc, _ := newTestService(mail)

	assert.NoError(t, svc.ResendCode(context.Background(), "ana@example.com"))
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "ana@example.com", mail.sent[0].to)
}

func TestRecoverPassword(t *testing.T) {
	mail := &fakeMailer{}
	svc, _ := newTestService(mail)
	ctx := context.Background()

	err := svc.RecoverPassword(ctx, "nope")
	assert.True(t, errors.Is(err, ErrInvalidFormat))
	assert.Equal(t, "E-mail inválido.", err.Error())
	assert.Empty(t, mail.sent)

	require.NoError(t, svc.RecoverPassword(ctx, "ana@example.com"))
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "Recuperação de senha", mail.sent[0].subject)
}

func TestCancelledContextStopsBeforeValidation(t *testing.T) {
	svc := NewService(Config{Latency: time.Hour, VerifyLatency: time.Hour}, nil, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, "not-an-email", "")
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, context.Canceled, svc.VerifyAccount(ctx, "1"))
}

func TestServiceLogsWithComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	svc := NewService(Config{Sleep: latency.None}, nil, zerolog.New(buf))
	_, err := svc.Login(context.Background(), "a@b.com", "123456")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"component":"auth"`)
}

func TestUserFromRegistration(t *testing.T) {
	u := UserFromRegistration("Empresa X", "rh@x.co.mz", "+258 84 000 0000", user.RoleCompany)
	assert.Equal(t, UserIDForEmail("rh@x.co.mz"), u.ID)
	assert.Equal(t, user.RoleCompany, u.Role)
	assert.True(t, u.Verified)
	assert.Equal(t, "https://ui-avatars.com/api/?name=Empresa+X&background=0D9488&color=fff", u.Avatar)
}
