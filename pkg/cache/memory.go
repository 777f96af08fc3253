package cache

import (
	"sync"
	"time"
)

// memStore is the degraded-mode store: per-process, TTL-aware, coarse lock.
// Correctness here is best-effort; the authoritative counters live in Redis.
type memStore struct {
	mu    sync.Mutex
	nums  map[string]memNum
	strs  map[string]memStr
	rings map[string]memRing
}

type memNum struct {
	value     int64
	expiresAt time.Time
}

type memStr struct {
	value     string
	expiresAt time.Time
}

type memRing struct {
	entries   []string
	expiresAt time.Time
}

func newMemStore() *memStore {
	return &memStore{
		nums:  make(map[string]memNum),
		strs:  make(map[string]memStr),
		rings: make(map[string]memRing),
	}
}

func expired(t time.Time) bool {
	return !t.IsZero() && time.Now().After(t)
}

func (m *memStore) incr(key string, ttl time.Duration) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.nums[key]
	if expired(n.expiresAt) {
		n = memNum{}
	}
	if n.value == 0 {
		n.expiresAt = time.Now().Add(ttl)
	}
	n.value++
	m.nums[key] = n
	return n.value
}

func (m *memStore) decr(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.nums[key]
	if !ok || expired(n.expiresAt) {
		return
	}
	n.value--
	if n.value <= 0 {
		delete(m.nums, key)
		return
	}
	m.nums[key] = n
}

func (m *memStore) set(key, value string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strs[key] = memStr{value: value, expiresAt: time.Now().Add(ttl)}
}

func (m *memStore) exists(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.strs[key]; ok && !expired(s.expiresAt) {
		return true
	}
	if n, ok := m.nums[key]; ok && !expired(n.expiresAt) {
		return true
	}
	return false
}

func (m *memStore) del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.strs, key)
	delete(m.nums, key)
	delete(m.rings, key)
}

func (m *memStore) pushRing(key, entry string, maxLen int, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.rings[key]
	if expired(r.expiresAt) {
		r = memRing{}
	}
	r.entries = append(r.entries, entry)
	if len(r.entries) > maxLen {
		r.entries = r.entries[len(r.entries)-maxLen:]
	}
	r.expiresAt = time.Now().Add(ttl)
	m.rings[key] = r
}

func (m *memStore) ring(key string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rings[key]
	if !ok || expired(r.expiresAt) {
		return nil
	}
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}
