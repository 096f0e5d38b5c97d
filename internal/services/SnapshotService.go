package services

import (
	"errors"
	"maps"
	"skilld/internal/models"
	"slices"
	"sync"

	"go.uber.org/atomic"
)

var ErrUnknownPlayer = errors.New("unknown player")

type SnapshotServiceInterface interface {
	Get(playerID string) (*models.Snapshot, error)
	Players() []string
	Replace(snapshots map[string]*models.Snapshot)
	Count() int
	Reloads() int64
	ProfilesPerVersion() map[int]int
}

type SnapshotService struct {
	mu        sync.RWMutex
	snapshots map[string]*models.Snapshot
	reloads   atomic.Int64
}

func (ss *SnapshotService) Get(playerID string) (*models.Snapshot, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	s, ok := ss.snapshots[playerID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	return s, nil
}

func (ss *SnapshotService) Players() []string {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return slices.Sorted(maps.Keys(ss.snapshots))
}

// Replace swaps the whole player set at once. Nil snapshots are dropped.
func (ss *SnapshotService) Replace(snapshots map[string]*models.Snapshot) {
	next := make(map[string]*models.Snapshot, len(snapshots))
	for id, s := range snapshots {
		if s != nil {
			next[id] = s
		}
	}

	ss.mu.Lock()
	ss.snapshots = next
	ss.mu.Unlock()
	ss.reloads.Inc()
}

func (ss *SnapshotService) Count() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.snapshots)
}

func (ss *SnapshotService) Reloads() int64 {
	return ss.reloads.Load()
}

func (ss *SnapshotService) ProfilesPerVersion() map[int]int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	out := make(map[int]int)
	for _, s := range ss.snapshots {
		for _, v := range s.Versions() {
			out[v]++
		}
	}
	return out
}

func NewSnapshotService() SnapshotServiceInterface {
	return &SnapshotService{
		snapshots: make(map[string]*models.Snapshot),
	}
}
