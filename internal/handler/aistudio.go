package handler

import (
	"context"
	"encoding/base64"
	"io/ioutil"
	"net/http"

	"github.com/jobmoz/job-board/internal/aistudio"
	"github.com/jobmoz/job-board/internal/server"

	"github.com/pkg/errors"
)

const multipartMemory = 1 << 20

type aiStudioResponse struct {
	aistudio.Result
	DataURL string `json:"dataUrl"`
}

// AIStudioEditHandler takes a multipart form with an "image" file and a
// "prompt" field.
func AIStudioEditHandler(svr server.Server, studio *aistudio.Studio) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, aistudio.MaxUploadBytes+multipartMemory)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			svr.JSONError(w, http.StatusBadRequest, aistudio.ErrImageTooLarge.Message)
			return
		}
		f, _, err := r.FormFile("image")
		if err != nil {
			svr.JSONError(w, http.StatusBadRequest, aistudio.ErrImageRequired.Message)
			return
		}
		defer f.Close()
		data, err := ioutil.ReadAll(f)
		if err != nil {
			svr.Log(err, "unable to read uploaded image")
			svr.JSONError(w, http.StatusBadRequest, aistudio.ErrImageRequired.Message)
			return
		}
		res, err := studio.Edit(r.Context(), data, r.FormValue("prompt"))
		var userErr *aistudio.UserError
		switch {
		case err == nil:
		case errors.As(err, &userErr):
			svr.JSONError(w, http.StatusBadRequest, userErr.Message)
			return
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			svr.JSONError(w, http.StatusServiceUnavailable, msgSomethingWentWrong)
			return
		default:
			svr.Log(err, "unable to edit image")
			svr.JSONError(w, http.StatusInternalServerError, aistudio.ErrEditFailed.Message)
			return
		}
		svr.JSON(w, http.StatusOK, aiStudioResponse{
			Result:  res,
			DataURL: "data:" + res.ContentType + ";base64," + base64.StdEncoding.EncodeToString(res.Image),
		})
	}
}
