package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jobmoz/job-board/internal/auth"
	"github.com/jobmoz/job-board/internal/middleware"
	"github.com/jobmoz/job-board/internal/server"
	"github.com/jobmoz/job-board/internal/user"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	msgMissingFields      = "Preencha todos os campos obrigatórios."
	msgNoPendingSignUp    = "Não existe nenhum registo pendente de verificação."
	msgSessionExpired     = "Sessão expirada. Inicie sessão novamente."
	msgSomethingWentWrong = "Ocorreu um erro. Tente novamente."
)

var validate = validator.New()

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type verifyRequest struct {
	Code string `json:"code" validate:"required"`
}

type emailRequest struct {
	Email string `json:"email"`
}

// decodeRequest reads a JSON body into req and checks its validate tags.
func decodeRequest(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.Wrap(err, "unable to decode request")
	}
	return validate.Struct(req)
}

// writeAuthError answers with the message of an auth failure. Any other
// error is logged and reported as a generic failure.
func writeAuthError(svr server.Server, w http.ResponseWriter, err error, action string) {
	var authErr *auth.Error
	switch {
	case errors.As(err, &authErr):
		status := http.StatusBadRequest
		if authErr.Kind == auth.KindInvalidCredentials {
			status = http.StatusUnauthorized
		}
		svr.JSONError(w, status, authErr.Message)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger := svr.Logger()
		logger.Warn().Err(err).Str("action", action).Msg("request abandoned")
		svr.JSONError(w, http.StatusServiceUnavailable, msgSomethingWentWrong)
	default:
		svr.Log(err, action)
		svr.JSONError(w, http.StatusInternalServerError, msgSomethingWentWrong)
	}
}

func signIn(svr server.Server, w http.ResponseWriter, r *http.Request, userRepo *user.Repository, u user.User) bool {
	if err := userRepo.Save(u); err != nil {
		svr.Log(err, "unable to save user session")
		svr.JSONError(w, http.StatusInternalServerError, msgSomethingWentWrong)
		return false
	}
	if err := middleware.SignIn(w, r, svr.SessionStore, svr.GetJWTSigningKey(), u.ID, u.Email, string(u.Role)); err != nil {
		svr.Log(err, "unable to sign in user")
		svr.JSONError(w, http.StatusInternalServerError, msgSomethingWentWrong)
		return false
	}
	return true
}

func LoginHandler(svr server.Server, authSvc *auth.Service, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &loginRequest{}
		if err := decodeRequest(r, req); err != nil {
			svr.JSONError(w, http.StatusBadRequest, msgMissingFields)
			return
		}
		u, err := authSvc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeAuthError(svr, w, err, "login")
			return
		}
		// a returning user keeps what they saved in this session window
		if existing, err := userRepo.Get(u.ID); err == nil {
			u.SavedJobIDs = existing.SavedJobIDs
		}
		if !signIn(svr, w, r, userRepo, u) {
			return
		}
		svr.JSON(w, http.StatusOK, u)
	}
}

func RegisterHandler(svr server.Server, authSvc *auth.Service, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &auth.Registration{}
		if err := decodeRequest(r, req); err != nil {
			svr.JSONError(w, http.StatusBadRequest, msgMissingFields)
			return
		}
		res, err := authSvc.Register(r.Context(), *req)
		if err != nil {
			writeAuthError(svr, w, err, "register")
			return
		}
		token, err := userRepo.SavePending(user.Pending{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
			Role:  req.Role,
		})
		if err != nil {
			svr.Log(err, "unable to save pending registration")
			svr.JSONError(w, http.StatusInternalServerError, msgSomethingWentWrong)
			return
		}
		if err := middleware.SetPendingRegistration(w, r, svr.SessionStore, token); err != nil {
			svr.Log(err, "unable to store pending registration in session")
			svr.JSONError(w, http.StatusInternalServerError, msgSomethingWentWrong)
			return
		}
		svr.JSON(w, http.StatusOK, res)
	}
}

func VerifyAccountHandler(svr server.Server, authSvc *auth.Service, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &verifyRequest{}
		if err := decodeRequest(r, req); err != nil {
			svr.JSONError(w, http.StatusBadRequest, auth.ErrInvalidCode.Message)
			return
		}
		token, ok := middleware.GetPendingRegistration(r, svr.SessionStore)
		if !ok {
			svr.JSONError(w, http.StatusBadRequest, msgNoPendingSignUp)
			return
		}
		pending, err := userRepo.GetPending(token)
		if err != nil {
			svr.JSONError(w, http.StatusBadRequest, msgNoPendingSignUp)
			return
		}
		if err := authSvc.VerifyAccount(r.Context(), req.Code); err != nil {
			writeAuthError(svr, w, err, "verify account")
			return
		}
		u := auth.UserFromRegistration(pending.Name, pending.Email, pending.Phone, pending.Role)
		if u.IsCompany() {
			u.CompanyName = u.Name
			u.CurrentPlan = "free"
		}
		if !signIn(svr, w, r, userRepo, u) {
			return
		}
		if err := userRepo.DeletePending(token); err != nil {
			svr.Log(err, "unable to delete pending registration")
		}
		svr.JSON(w, http.StatusOK, u)
	}
}

// ResendCodeHandler falls back to the email of the pending registration
// when the body carries none.
func ResendCodeHandler(svr server.Server, authSvc *auth.Service, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &emailRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			req.Email = ""
		}
		if req.Email == "" {
			if token, ok := middleware.GetPendingRegistration(r, svr.SessionStore); ok {
				if pending, err := userRepo.GetPending(token); err == nil {
					req.Email = pending.Email
				}
			}
		}
		if req.Email == "" {
			svr.JSONError(w, http.StatusBadRequest, msgNoPendingSignUp)
			return
		}
		if err := authSvc.ResendCode(r.Context(), req.Email); err != nil {
			writeAuthError(svr, w, err, "resend code")
			return
		}
		svr.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func RecoverPasswordHandler(svr server.Server, authSvc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &emailRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			svr.JSONError(w, http.StatusBadRequest, auth.ErrInvalidFormat.Message)
			return
		}
		if err := authSvc.RecoverPassword(r.Context(), req.Email); err != nil {
			writeAuthError(svr, w, err, "recover password")
			return
		}
		svr.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func LogoutHandler(svr server.Server, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey()); err == nil {
			if err := userRepo.Delete(claims.UserID); err != nil {
				svr.Log(err, "unable to delete user session")
			}
		}
		if err := middleware.SignOut(w, r, svr.SessionStore); err != nil {
			svr.Log(err, "unable to clear session cookie")
		}
		svr.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// currentUser loads the signed in user, answering 401 when the session is
// gone.
func currentUser(svr server.Server, w http.ResponseWriter, r *http.Request, userRepo *user.Repository) (user.User, bool) {
	claims, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
	if err != nil {
		svr.JSONError(w, http.StatusUnauthorized, msgSessionExpired)
		return user.User{}, false
	}
	u, err := userRepo.Get(claims.UserID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			svr.Log(err, "unable to load user session")
		}
		svr.JSONError(w, http.StatusUnauthorized, msgSessionExpired)
		return user.User{}, false
	}
	return u, true
}

func MeHandler(svr server.Server, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := currentUser(svr, w, r, userRepo)
		if !ok {
			return
		}
		svr.JSON(w, http.StatusOK, u)
	}
}
