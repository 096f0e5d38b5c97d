package testutil

import (
	"context"
	"maps"
	"skilld/internal/models"
	"skilld/internal/providers"
	"skilld/internal/services"
	"slices"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockSnapshotService implements services.SnapshotServiceInterface.
type MockSnapshotService struct {
	mu           sync.Mutex
	Snapshots    map[string]*models.Snapshot
	ReplaceCalls int
	GetCalls     int
}

func (m *MockSnapshotService) Get(playerID string) (*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	s, ok := m.Snapshots[playerID]
	if !ok {
		return nil, services.ErrUnknownPlayer
	}
	return s, nil
}

func (m *MockSnapshotService) Players() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.Snapshots))
	for id := range m.Snapshots {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (m *MockSnapshotService) Replace(snapshots map[string]*models.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Snapshots = snapshots
	m.ReplaceCalls++
}

func (m *MockSnapshotService) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Snapshots)
}

func (m *MockSnapshotService) Reloads() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(m.ReplaceCalls)
}

func (m *MockSnapshotService) ProfilesPerVersion() map[int]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[int]int{}
	for _, s := range m.Snapshots {
		for _, v := range s.Versions() {
			out[v]++
		}
	}
	return out
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu         sync.Mutex
	Data       map[string][]byte
	ClearCalls int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
	m.ClearCalls++
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() { m.Closed = true }

// MockSource implements interfaces.SourceInterface.
type MockSource struct {
	mu        sync.Mutex
	Snapshots map[string]*models.Snapshot
	Err       error
	Calls     int
}

func (m *MockSource) Load(_ context.Context) (map[string]*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Snapshots, nil
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Close() error { return nil }

func (m *MockSource) LoadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu              sync.Mutex
	Requests        map[string]int
	CacheHits       int
	CacheMisses     int
	ReloadDurations []time.Duration
	Profiles        map[string]int
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Requests == nil {
		m.Requests = map[string]int{}
	}
	m.Requests[endpoint]++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) ObserveReloadDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReloadDurations = append(m.ReloadDurations, d)
}

func (m *MockMetrics) SetProfilesTotal(perVersion map[string]int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Profiles = maps.Clone(perVersion)
}

func (m *MockMetrics) Reloads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ReloadDurations)
}
