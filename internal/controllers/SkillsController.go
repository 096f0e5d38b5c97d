package controllers

import (
	"net/http"
	"skilld/internal/models"
	"skilld/internal/navigation"
	"skilld/internal/providers"
	"skilld/internal/render"
	"skilld/internal/services"
	"skilld/internal/skills"
	"strings"
)

// selectParam carries a version picked from the picker or a tab.
const selectParam = "select"

type SkillsController struct {
	logger   providers.Logger
	service  services.SnapshotServiceInterface
	renderer render.RendererInterface
	link     *navigation.Link
}

func NewSkillsController(logger providers.Logger, service services.SnapshotServiceInterface, renderer render.RendererInterface, link *navigation.Link) *SkillsController {
	return &SkillsController{
		logger:   logger,
		service:  service,
		renderer: renderer,
		link:     link,
	}
}

// Skills renders the skills page. A select parameter that changes the
// version answers with a redirect to the canonical version url.
func (sc *SkillsController) Skills(w http.ResponseWriter, r *http.Request) {
	id, snap, ok := loadPlayer(w, r, sc.service, sc.logger)
	if !ok {
		return
	}

	history := navigation.NewRequestHistory(r, sc.link, id)
	view := skills.NewView(id, snap, history, sc.link)
	sorts := skills.ParseSortState(r.URL.Query())

	if version, ok := navigation.ParseVersion(r.URL.Query().Get(selectParam)); ok && view.Select(version) {
		location, _ := history.Location()
		if q := sorts.Values(); len(q) > 0 {
			location += "&" + q.Encode()
		}
		http.Redirect(w, r, location, http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := sc.renderer.Skills(w, view.Render(sorts)); err != nil {
		sc.fail(w, r, err)
	}
}

func (sc *SkillsController) Profile(w http.ResponseWriter, r *http.Request) {
	id, snap, ok := loadPlayer(w, r, sc.service, sc.logger)
	if !ok {
		return
	}

	version := navigation.NewRequestHistory(r, sc.link, id).GetInitialState(snap.DefaultVersion())
	profile := render.Profile{
		PlayerID:    id,
		Name:        id,
		VersionName: snap.Catalog().DisplayName(version),
		SkillsLink:  sc.link.Get(navigation.PageSkills, []string{id}, version),
	}
	if rec, ok := snap.Player(version); ok {
		if name := strings.TrimSpace(rec.Name); name != "" {
			profile.Name = name
		}
		profile.Title = rec.Title
		profile.ExtID = models.FormatExtID(rec.ExtID)
		profile.Plays = rec.Plays
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := sc.renderer.Profile(w, profile); err != nil {
		sc.fail(w, r, err)
	}
}

func (sc *SkillsController) fail(w http.ResponseWriter, r *http.Request, err error) {
	sc.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "Unable to render %s: %s", r.URL.Path, err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
