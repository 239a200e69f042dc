package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

const originService = "attendance"

type ctxKey uint8

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyUserID
	ctxKeySessionID
	ctxKeyIP
	ctxKeyLogType
	ctxKeyMethod
	ctxKeyURL
)

// requestFields are copied from the context into every record when set.
var requestFields = []struct {
	key  ctxKey
	name string
}{
	{ctxKeyRequestID, "request_id"},
	{ctxKeySessionID, "session_id"},
	{ctxKeyIP, "ip"},
	{ctxKeyLogType, "type"},
	{ctxKeyMethod, "method"},
	{ctxKeyURL, "url"},
}

// Handler decorates records with the request attributes stored by the Set*
// functions.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	// user_id is null for anonymous requests
	if v := value(ctx, ctxKeyUserID); v != "" {
		record.AddAttrs(slog.String("user_id", v))
	} else {
		record.AddAttrs(slog.Any("user_id", nil))
	}

	for _, f := range requestFields {
		if v := value(ctx, f.key); v != "" {
			record.AddAttrs(slog.String(f.name, v))
		}
	}

	record.AddAttrs(slog.String("origin_service", originService))

	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}

func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(&Handler{
		Handler: slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}),
	})
}

// ParseLevel accepts slog level names in any case, with optional offsets
// such as "warn+2". Anything else means info.
func ParseLevel(level string) slog.Level {
	var l slog.Level

	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}

	return l
}

func value(ctx context.Context, key ctxKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

func SetRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, reqID)
}

func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKeyUserID, userID)
}

func SetSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKeySessionID, sessionID)
}

func SetIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKeyIP, ip)
}

func SetLogType(ctx context.Context, logType string) context.Context {
	return context.WithValue(ctx, ctxKeyLogType, logType)
}

func SetMethod(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, ctxKeyMethod, method)
}

func SetURL(ctx context.Context, url string) context.Context {
	return context.WithValue(ctx, ctxKeyURL, url)
}
