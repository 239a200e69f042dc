package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/internal/navigation"
)

const errInternalText = "Something went wrong. Please try again."

type ErrorResponse struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	resp := ErrorResponse{Message: msgToSend}

	var ve *entity.ValidationError
	if errors.As(originErr, &ve) {
		resp.Fields = ve.Fields
	}

	if originErr != nil {
		slog.ErrorContext(ctx, msgToSend, "error", originErr.Error(), "http_code", code)
	}

	SendJSON(ctx, w, code, resp)
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendServiceErr classifies a service error into a status code and a message
// safe to show.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	var ve *entity.ValidationError

	switch {
	case errors.As(err, &ve):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, ve.Message)
	case errors.Is(err, entity.ErrInvalidCredentials):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, entity.InvalidCredentialsMessage)
	case errors.Is(err, entity.ErrSessionEnded),
		errors.Is(err, entity.ErrTokenInvalid),
		errors.Is(err, entity.ErrUnauthorized):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Your session has ended. Please log in again.")
	case errors.Is(err, entity.ErrForbidden), errors.Is(err, navigation.ErrUnknownRole):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "You do not have access to this action.")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Not found.")
	case errors.Is(err, navigation.ErrNoTransition):
		SendJSONErr(ctx, w, http.StatusConflict, err, "This action is not available on the current screen.")
	case errors.Is(err, navigation.ErrUnknownScreen):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Unknown screen.")
	case errors.Is(err, entity.ErrLeaveNotPending):
		SendJSONErr(ctx, w, http.StatusConflict, err, "This request has already been decided.")
	case errors.Is(err, entity.ErrAttendanceClosed):
		SendJSONErr(ctx, w, http.StatusConflict, err, "You have already clocked out today.")
	case errors.Is(err, entity.ErrLeaveTypeInUse):
		SendJSONErr(ctx, w, http.StatusConflict, err, "This leave type is used by pending requests.")
	case errors.Is(err, entity.ErrAlreadyExists):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Already exists.")
	case errors.Is(err, entity.ErrIdentityUnavailable):
		SendJSONErr(ctx, w, http.StatusServiceUnavailable, err, "Sign in is temporarily unavailable. Please try again later.")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		SendJSONErr(r.Context(), w, http.StatusBadRequest, err, "Invalid JSON")
		return false
	}

	return true
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.FromString(chi.URLParam(r, name))
	if err != nil {
		SendJSONErr(r.Context(), w, http.StatusBadRequest, err, "Invalid "+name)
		return uuid.Nil, false
	}

	return id, true
}

func int64Param(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		SendJSONErr(r.Context(), w, http.StatusBadRequest, err, "Invalid "+name)
		return 0, false
	}

	return id, true
}

// intQuery reads an optional integer query parameter; absent means zero.
func intQuery(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		SendJSONErr(r.Context(), w, http.StatusBadRequest, err, "Invalid "+name)
		return 0, false
	}

	return v, true
}

func principal(w http.ResponseWriter, r *http.Request) (entity.Principal, bool) {
	p, ok := entity.PrincipalFromCtx(r.Context())
	if !ok {
		SendJSONErr(r.Context(), w, http.StatusUnauthorized, entity.ErrUnauthorized, "Unauthorized")
		return entity.Principal{}, false
	}

	return p, true
}
