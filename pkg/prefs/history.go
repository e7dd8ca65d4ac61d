// FILE: pkg/prefs/history.go
// PURPOSE: Per-user activity history backed by Redis, feeding preference
// aware query generation.
package prefs

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	historyKeyPrefix = "activity:"
	historyMaxLen    = 200
	historyTTL       = 30 * 24 * time.Hour
)

// History records what a user searched for and clicked on. A nil Redis
// client turns every call into a no-op so the pipeline works without the
// dependency.
type History struct {
	rdb    *redis.Client
	logger *log.Logger
}

func NewHistory(rdb *redis.Client, logger *log.Logger) *History {
	return &History{rdb: rdb, logger: logger}
}

// Append records one activity line, trimming the list to its cap.
func (h *History) Append(ctx context.Context, userID, entry string) {
	if h.rdb == nil || entry == "" {
		return
	}
	key := historyKeyPrefix + userID
	pipe := h.rdb.TxPipeline()
	pipe.RPush(ctx, key, entry)
	pipe.LTrim(ctx, key, -historyMaxLen, -1)
	pipe.Expire(ctx, key, historyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		h.logger.Printf("WARN: activity append failed for %s: %v", userID, err)
	}
}

// Recent returns up to n newest entries as one newline-joined block, oldest
// first. Failures read as an empty history.
func (h *History) Recent(ctx context.Context, userID string, n int) string {
	if h.rdb == nil {
		return ""
	}
	entries, err := h.rdb.LRange(ctx, historyKeyPrefix+userID, int64(-n), -1).Result()
	if err != nil {
		h.logger.Printf("WARN: activity read failed for %s: %v", userID, err)
		return ""
	}
	return strings.Join(entries, "\n")
}

// RecordTurn is the canonical activity line for a completed search turn.
func (h *History) RecordTurn(ctx context.Context, userID, query string, results int) {
	h.Append(ctx, userID, fmt.Sprintf("[%s] searched %q (%d results)", time.Now().UTC().Format(time.RFC3339), query, results))
}
