package logfilter

import (
	"context"
	"log/slog"
)

// LevelTrace is the slog level used for trace records. Trace sits below
// slog.LevelDebug.
const LevelTrace = slog.LevelDebug - 4

// Handler is a slog.Handler that consults a FilterSet before delegating to an
// inner handler. The module path a record is attributed to is assembled from
// WithGroup calls joined with "::", or set directly with WithModule.
type Handler struct {
	inner   slog.Handler
	filters *FilterSet
	module  string
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler wraps inner so that records are emitted only when filters admit
// the handler's module at the record's level.
func NewHandler(inner slog.Handler, filters *FilterSet) *Handler {
	return &Handler{inner: inner, filters: filters}
}

// WithModule returns a handler whose records are attributed to module,
// replacing any module path accumulated so far.
func (h *Handler) WithModule(module string) *Handler {
	clone := *h
	clone.module = module
	return &clone
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.filters.IsEnabled(h.module, levelFromSlog(level))
}

// Handle implements slog.Handler.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	return h.inner.Handle(ctx, record)
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.inner = h.inner.WithAttrs(attrs)
	return &clone
}

// WithGroup implements slog.Handler. Each group name extends the module path.
func (h *Handler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.inner = h.inner.WithGroup(name)
	if clone.module == "" {
		clone.module = name
	} else {
		clone.module += "::" + name
	}
	return &clone
}

// SlogLevel converts the level to its slog equivalent. Off has no slog
// representation and maps above slog.LevelError so no record reaches it.
func (l Level) SlogLevel() slog.Level {
	switch l {
	case Trace:
		return LevelTrace
	case Debug:
		return slog.LevelDebug
	case Info:
		return slog.LevelInfo
	case Warn:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}

// levelFromSlog maps an slog level onto the filter levels. Levels above Error
// clamp to Error and levels below Debug map to Trace.
func levelFromSlog(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return Error
	case level >= slog.LevelWarn:
		return Warn
	case level >= slog.LevelInfo:
		return Info
	case level >= slog.LevelDebug:
		return Debug
	default:
		return Trace
	}
}
