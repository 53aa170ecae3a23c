package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
)

type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, status int, title string) {
	writeJSON(w, status, problem{Title: title, Status: status})
}

// writeError maps service errors to status codes. Anything unknown is
// logged and reported as a bare 500.
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var locked *common.LockedOutError
	switch {
	case errors.As(err, &locked):
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(locked.Remaining.Seconds()))))
		writeProblem(w, http.StatusTooManyRequests, common.ErrAccountLockedOut.Error())
	case errors.Is(err, common.ErrorValidation):
		writeProblem(w, http.StatusBadRequest, common.ErrorValidation.Error())
	case errors.Is(err, common.ErrAuthenticationFailed):
		writeProblem(w, http.StatusUnauthorized, common.ErrAuthenticationFailed.Error())
	case errors.Is(err, common.ErrLoginSessionExpired),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrorUnauthorized):
		writeProblem(w, http.StatusUnauthorized, rootTitle(err))
	case errors.Is(err, common.ErrRevisionConflict):
		writeProblem(w, http.StatusConflict, common.ErrRevisionConflict.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		writeProblem(w, http.StatusConflict, common.ErrorAlreadyExists.Error())
	case errors.Is(err, common.ErrorNotFound):
		writeProblem(w, http.StatusNotFound, common.ErrorNotFound.Error())
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		writeProblem(w, http.StatusInternalServerError, common.ErrorInternal.Error())
	}
}

func rootTitle(err error) string {
	for _, e := range []error{
		common.ErrLoginSessionExpired,
		common.ErrTokenExpired,
		common.ErrRefreshTokenExpired,
		common.ErrInvalidToken,
	} {
		if errors.Is(err, e) {
			return e.Error()
		}
	}
	return common.ErrorUnauthorized.Error()
}

// maxBodyBytes bounds request bodies; vault blobs are the largest.
const maxBodyBytes = 32 << 20

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		return common.ErrorValidation
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, common.ErrorNotFound)
}
