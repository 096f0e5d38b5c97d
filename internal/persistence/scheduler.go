package persistence

import (
	"context"
	"github.com/roylee0704/gron"
	"skilld/internal/persistence/interfaces"
	"skilld/internal/providers"
	"skilld/internal/services"
	"skilld/internal/structures"
	"strconv"
	"sync"
	"time"
)

type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	service services.SnapshotServiceInterface
	source  interfaces.SourceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func (s *Scheduler) interval() time.Duration {
	return time.Duration(max(s.config.Source.ReloadInterval, 1)) * time.Second
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.interval()), func() {
		_ = s.Reload()
	})
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore performs the initial load.
func (s *Scheduler) Restore() error {
	s.logger.Infof(providers.TypeApp, "Loading snapshots from %s", s.source.Name())
	return s.Reload()
}

// Reload swaps in the source's current player set. On failure the loaded
// snapshots stay in place.
func (s *Scheduler) Reload() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), s.interval())
	defer cancel()

	players, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while loading snapshots from %s: %s", s.source.Name(), err)
		return err
	}

	s.service.Replace(players)
	s.cache.Clear()

	s.metrics.ObserveReloadDuration(time.Since(start))
	perVersion := make(map[string]int)
	for version, count := range s.service.ProfilesPerVersion() {
		perVersion[strconv.Itoa(version)] = count
	}
	s.metrics.SetProfilesTotal(perVersion)
	s.logger.Debugf(providers.TypeApp, "Loaded %d player snapshots in %s", s.service.Count(), time.Since(start))
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.SnapshotServiceInterface, source interfaces.SourceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		service: service,
		source:  source,
		cache:   cache,
		metrics: metrics,
	}
}
