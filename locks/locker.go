package locks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNotOwner is returned when releasing a lock held by someone else.
	ErrNotOwner = errors.New("lock release failed: not the lock owner")
	// ErrLockTimeout is returned when a lock stays held for the whole wait.
	ErrLockTimeout = errors.New("lock is still held")
)

// Locker is a named mutual-exclusion primitive with an owner token and a TTL.
type Locker interface {
	TryLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key, value string) error
}

// Manager waits for locks and always releases them. A caller waits until the
// lock frees up, its context ends, or maxWait passes. maxWait is longer than
// the TTL so a lock left behind by a crashed holder is eventually taken over.
type Manager struct {
	locker     Locker
	log        *zap.Logger
	ttl        time.Duration
	maxWait    time.Duration
	retryDelay time.Duration
}

func NewManager(locker Locker, log *zap.Logger) *Manager {
	return &Manager{
		locker:     locker,
		log:        log,
		ttl:        10 * time.Second,
		maxWait:    15 * time.Second,
		retryDelay: 50 * time.Millisecond,
	}
}

// Key builds a lock name in the clinic namespace.
func Key(parts ...any) string {
	key := "clinic:lock"
	for _, p := range parts {
		key += fmt.Sprintf(":%v", p)
	}
	return key
}

// WithLock runs fn while holding the named lock.
func (m *Manager) WithLock(ctx context.Context, key string, fn func() error) error {
	lockValue := uuid.New().String()

	deadline := time.NewTimer(m.maxWait)
	defer deadline.Stop()

	for {
		locked, err := m.locker.TryLock(ctx, key, lockValue, m.ttl)
		if err == nil && locked {
			break
		}
		if err != nil {
			m.log.Warn("lock attempt failed", zap.String("key", key), zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for lock %s: %w", key, ctx.Err())
		case <-deadline.C:
			if err == nil {
				err = ErrLockTimeout
			}
			return fmt.Errorf("failed to acquire lock %s: %w", key, err)
		case <-time.After(m.retryDelay):
		}
	}

	defer func() {
		// the request context may already be cancelled; release regardless
		if err := m.locker.Unlock(context.WithoutCancel(ctx), key, lockValue); err != nil {
			m.log.Warn("failed to release lock", zap.String("key", key), zap.Error(err))
		}
	}()

	return fn()
}

// MemoryLocker is the in-process Locker used when no Redis is configured.
type MemoryLocker struct {
	mu    sync.Mutex
	held  map[string]memoryLock
	clock func() time.Time
}

type memoryLock struct {
	value   string
	expires time.Time
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{held: make(map[string]memoryLock), clock: time.Now}
}

func (l *MemoryLocker) TryLock(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if cur, ok := l.held[key]; ok && now.Before(cur.expires) {
		return false, nil
	}
	l.held[key] = memoryLock{value: value, expires: now.Add(ttl)}
	return true, nil
}

func (l *MemoryLocker) Unlock(_ context.Context, key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur, ok := l.held[key]
	if !ok || cur.value != value {
		return ErrNotOwner
	}
	delete(l.held, key)
	return nil
}
