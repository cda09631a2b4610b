package database

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/thenoetrevino/taskr/internal/models"
)

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// parseCreatedAt reads a stored local timestamp.
// Rows written by other tools may carry an RFC 3339 value instead.
func parseCreatedAt(s string) time.Time {
	if t, err := time.ParseInLocation(models.CreatedAtLayout, s, time.Local); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	slog.Warn("unparseable created_at", "value", s)
	return time.Time{}
}
