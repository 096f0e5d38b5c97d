package controllers

import (
	json "github.com/goccy/go-json"
	"net/http"
	"skilld/internal/navigation"
	"skilld/internal/providers"
	"skilld/internal/services"
	"skilld/internal/skills"
	"strconv"

	"golang.org/x/sync/singleflight"
)

type ApiController struct {
	logger  providers.Logger
	service services.SnapshotServiceInterface
	cache   providers.CacheProviderInterface
	link    *navigation.Link
	group   singleflight.Group
}

func NewApiController(logger providers.Logger, service services.SnapshotServiceInterface, cache providers.CacheProviderInterface, link *navigation.Link) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
		link:    link,
	}
}

// serveFromCacheOrCompute answers from the cache when possible. Concurrent
// misses for the same key share one compute call.
func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, r *http.Request, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		writeJSON(w, data)
		return
	}

	v, err, _ := ac.group.Do(cacheKey, func() (any, error) {
		result, err := compute()
		if err != nil {
			return nil, err
		}
		gson, err := json.Marshal(result)
		if err != nil {
			return nil, err
		}
		ac.cache.Set(cacheKey, gson)
		return gson, nil
	})
	if err != nil {
		ac.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "Unable to compute %s: %s", cacheKey, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, v.([]byte))
}

func writeJSON(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (ac *ApiController) GetPlayers(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, r, "players", func() (any, error) {
		return ac.service.Players(), nil
	})
}

// GetSkills returns the skills page model for the requested version and sort.
func (ac *ApiController) GetSkills(w http.ResponseWriter, r *http.Request) {
	id, snap, ok := loadPlayer(w, r, ac.service, ac.logger)
	if !ok {
		return
	}

	view := skills.NewView(id, snap, navigation.NewRequestHistory(r, ac.link, id), ac.link)
	sorts := skills.ParseSortState(r.URL.Query())
	key := "skills:" + id + ":" + strconv.Itoa(view.Selected()) + ":" + sorts.Key()
	ac.serveFromCacheOrCompute(w, r, key, func() (any, error) {
		return view.Render(sorts), nil
	})
}
