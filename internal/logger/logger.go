package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const battleIDKey ctxKey = "battleID"

// InitLogger installs the configured handler on stdout as the default logger
func InitLogger(config Config) {
	InitLoggerWithWriter(config, os.Stdout)
}

// InitLoggerWithWriter installs the configured handler on w as the default logger
func InitLoggerWithWriter(config Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     config.LogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(config.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}

// Info logs at info level on the default logger
func Info(msg string, args ...any) {
	slog.Default().Info(msg, args...)
}

// NewBattleID creates a new UUID identifying one battle.
func NewBattleID() string {
	return uuid.NewString()
}

// WithBattleID returns a new context containing the battle ID.
func WithBattleID(ctx context.Context, battleID string) context.Context {
	return context.WithValue(ctx, battleIDKey, battleID)
}

// GetBattleID extracts the battle ID from the context, or "" when absent.
func GetBattleID(ctx context.Context) string {
	if id, ok := ctx.Value(battleIDKey).(string); ok {
		return id
	}
	return ""
}

// ForBattle returns the default logger tagged with battleID
func ForBattle(battleID string) *slog.Logger {
	return slog.Default().With(AttrKeyBattleID, battleID)
}

// FromContext returns a logger that includes the battle_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id := GetBattleID(ctx); id != "" {
		return ForBattle(id)
	}
	return slog.Default()
}
