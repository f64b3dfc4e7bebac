package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hive-community/backend/pkg/errorx"
	"github.com/hive-community/backend/pkg/ratelimit"
	"github.com/hive-community/backend/pkg/xcontext"
)

// MessageResponse is implemented by mutation responses that carry a success
// message in the envelope.
type MessageResponse interface {
	SuccessMessage() string
}

// StatusResponse is implemented by responses rendered with a status other
// than 200, like 201 on creation.
type StatusResponse interface {
	SuccessStatusCode() int
}

var errMethodNotAllowed = errorx.New(errorx.BadRequest, "Not supported method")

type response struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       any               `json:"data,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	RetryAfter int               `json:"retryAfter,omitempty"`
}

func handleResponse(ctx context.Context) {
	w := xcontext.HTTPWriter(ctx)

	if err := xcontext.Error(ctx); err != nil {
		status, resp := newErrorResponse(err)
		writeJson(ctx, w, status, resp)
		return
	}

	resp := xcontext.GetResponse(ctx)
	if resp == nil {
		return
	}

	status := http.StatusOK
	if statusResp, ok := resp.(StatusResponse); ok {
		status = statusResp.SuccessStatusCode()
	}

	envelope := response{Success: true, Data: resp}
	if msgResp, ok := resp.(MessageResponse); ok {
		envelope.Message = msgResp.SuccessMessage()
	}

	writeJson(ctx, w, status, envelope)
}

func newErrorResponse(err error) (int, response) {
	var limitErr ratelimit.Error
	if errors.As(err, &limitErr) {
		return http.StatusTooManyRequests, response{
			Success:    false,
			Message:    limitErr.Error(),
			RetryAfter: limitErr.RetryAfter,
		}
	}

	var errx errorx.Error
	if errors.As(err, &errx) {
		return statusOf(errx.Code), response{
			Success: false,
			Message: errx.Message,
			Errors:  errx.Fields,
		}
	}

	return http.StatusInternalServerError, response{
		Success: false,
		Message: errorx.Unknown.Message,
	}
}

func statusOf(code errorx.Code) int {
	switch code {
	case errorx.BadRequest, errorx.AlreadyExists:
		return http.StatusBadRequest
	case errorx.Unauthenticated, errorx.TokenRevoked, errorx.TokenExpired:
		return http.StatusUnauthorized
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.TooManyRequests:
		return http.StatusTooManyRequests
	case errorx.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJson(ctx context.Context, w http.ResponseWriter, status int, resp response) {
	b, err := json.Marshal(resp)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal the response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}
