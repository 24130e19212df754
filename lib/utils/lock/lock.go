package lock

import (
	"context"
	"sync"
	"time"
)

var lockMap sync.Map

// WithDelay выполняет safeCode под локом по ключу.
// Занятый лок опрашивается до истечения wait или отмены контекста,
// после чего возвращается success=false без выполнения safeCode.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	deadline := time.After(wait)
	for {
		if _, busy := lockMap.LoadOrStore(key, struct{}{}); !busy {
			defer lockMap.Delete(key)
			return true, safeCode()
		}
		select {
		case <-deadline:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// CandidateKey - ключ лока обработки воронки кандидата
func CandidateKey(spaceID, candidateID string) string {
	return "candidate/" + spaceID + "/" + candidateID
}
