package auth

type Kind int

const (
	KindInvalidFormat Kind = iota + 1
	KindInvalidCredentials
	KindWeakPassword
	KindTermsNotAccepted
	KindInvalidCode
)

func (k Kind) String() string {
	switch k {
	case KindInvalidFormat:
		return "invalid_format"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindWeakPassword:
		return "weak_password"
	case KindTermsNotAccepted:
		return "terms_not_accepted"
	case KindInvalidCode:
		return "invalid_code"
	}
	return "unknown"
}

// Error is a validation failure. Message is shown to the end user as is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same Kind, so errors.Is(err, ErrWeakPassword)
// holds whatever the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidFormat      = &Error{Kind: KindInvalidFormat, Message: "E-mail inválido."}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "Senha incorreta."}
	ErrWeakPassword       = &Error{Kind: KindWeakPassword, Message: "A senha deve ter no mínimo 8 caracteres, incluindo letras e números."}
	ErrTermsNotAccepted   = &Error{Kind: KindTermsNotAccepted, Message: "Deve aceitar os termos e política de privacidade."}
	ErrInvalidCode        = &Error{Kind: KindInvalidCode, Message: "Código inválido. Digite os 6 números."}
)

// login reports the email shape problem with its own wording
var errLoginInvalidFormat = &Error{Kind: KindInvalidFormat, Message: "Formato de e-mail inválido."}
