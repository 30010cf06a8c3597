package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jobmoz/job-board/internal/message"
	"github.com/jobmoz/job-board/internal/server"
	"github.com/jobmoz/job-board/internal/user"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

const msgEmptyMessage = "Escreva uma mensagem antes de enviar."

func ConversationsHandler(svr server.Server, msgRepo *message.Repository, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := currentUser(svr, w, r, userRepo)
		if !ok {
			return
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{
			"conversations": msgRepo.Conversations(u.ID),
			"unread":        msgRepo.UnreadCount(u.ID),
		})
	}
}

// ThreadHandler returns the conversation with another user and marks it read.
func ThreadHandler(svr server.Server, msgRepo *message.Repository, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := currentUser(svr, w, r, userRepo)
		if !ok {
			return
		}
		other := mux.Vars(r)["userID"]
		thread := msgRepo.Thread(u.ID, other)
		msgRepo.MarkRead(u.ID, other)
		svr.JSON(w, http.StatusOK, thread)
	}
}

func SendMessageHandler(svr server.Server, msgRepo *message.Repository, userRepo *user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := currentUser(svr, w, r, userRepo)
		if !ok {
			return
		}
		req := &struct {
			Content string `json:"content"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			svr.JSONError(w, http.StatusBadRequest, msgEmptyMessage)
			return
		}
		m, err := msgRepo.Send(u.ID, mux.Vars(r)["userID"], u.Name, req.Content)
		if errors.Is(err, message.ErrEmptyMessage) {
			svr.JSONError(w, http.StatusBadRequest, msgEmptyMessage)
			return
		}
		if err != nil {
			svr.Log(err, "unable to send message")
			svr.JSONError(w, http.StatusInternalServerError, msgSomethingWentWrong)
			return
		}
		svr.JSON(w, http.StatusCreated, m)
	}
}
