package controllers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"skilld/internal/navigation"
	"skilld/internal/render"
	"skilld/internal/skills"
	"skilld/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	skillsPattern  = "GET /players/{player}/skills"
	profilePattern = "GET /players/{player}"
)

type failingRenderer struct{}

func (failingRenderer) Skills(io.Writer, skills.Page) error    { return errors.New("boom") }
func (failingRenderer) Profile(io.Writer, render.Profile) error { return errors.New("boom") }

func newTestSkillsController(t *testing.T) *SkillsController {
	t.Helper()
	r, err := render.NewRenderer()
	require.NoError(t, err)
	return NewSkillsController(&testutil.MockLogger{}, newTestService(), r, navigation.NewLink(""))
}

func TestSkills_RendersHTML(t *testing.T) {
	sc := newTestSkillsController(t)

	rr := httptest.NewRecorder()
	serve(skillsPattern, sc.Skills, rr, httptest.NewRequest(http.MethodGet, "/players/alice/skills", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "<td>High</td>")
	assert.Contains(t, rr.Body.String(), "98.76")
}

func TestSkills_SelectRedirects(t *testing.T) {
	sc := newTestSkillsController(t)

	rr := httptest.NewRecorder()
	serve(skillsPattern, sc.Skills, rr, httptest.NewRequest(http.MethodGet, "/players/alice/skills?version=6&select=5&sort.gf-exist=name", nil))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/players/alice/skills?version=5&dir.gf-exist=asc&sort.gf-exist=name", rr.Header().Get("Location"))
}

func TestSkills_SelectRedirectKeepsBasePath(t *testing.T) {
	r, err := render.NewRenderer()
	require.NoError(t, err)
	sc := NewSkillsController(&testutil.MockLogger{}, newTestService(), r, navigation.NewLink("/g"))

	rr := httptest.NewRecorder()
	serve(skillsPattern, sc.Skills, rr, httptest.NewRequest(http.MethodGet, "/players/alice/skills?version=6&select=5", nil))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/g/players/alice/skills?version=5", rr.Header().Get("Location"))
}

func TestSkills_SelectSameVersionRenders(t *testing.T) {
	sc := newTestSkillsController(t)

	rr := httptest.NewRecorder()
	serve(skillsPattern, sc.Skills, rr, httptest.NewRequest(http.MethodGet, "/players/alice/skills?version=6&select=6", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Location"))
}

func TestSkills_NoProfileShowsPicker(t *testing.T) {
	sc := newTestSkillsController(t)

	rr := httptest.NewRecorder()
	serve(skillsPattern, sc.Skills, rr, httptest.NewRequest(http.MethodGet, "/players/alice/skills?version=4", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "You have no profile for Tri-Boost Re:EVOLVE!")
}

func TestSkills_UnknownPlayer(t *testing.T) {
	sc := newTestSkillsController(t)

	rr := httptest.NewRecorder()
	serve(skillsPattern, sc.Skills, rr, httptest.NewRequest(http.MethodGet, "/players/nobody/skills", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSkills_RenderError(t *testing.T) {
	logger := &testutil.MockLogger{}
	sc := NewSkillsController(logger, newTestService(), failingRenderer{}, navigation.NewLink(""))

	rr := httptest.NewRecorder()
	serve(skillsPattern, sc.Skills, rr, httptest.NewRequest(http.MethodGet, "/players/alice/skills", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, 1, logger.Count("error"))
}

func TestProfile_Renders(t *testing.T) {
	sc := newTestSkillsController(t)

	rr := httptest.NewRecorder()
	serve(profilePattern, sc.Profile, rr, httptest.NewRequest(http.MethodGet, "/players/alice?version=5", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "<h1>ALICE</h1>")
	assert.Contains(t, body, "1234-5678")
	assert.Contains(t, body, `href="/players/alice/skills?version=5"`)
}

func TestProfile_UnknownPlayer(t *testing.T) {
	sc := newTestSkillsController(t)

	rr := httptest.NewRecorder()
	serve(profilePattern, sc.Profile, rr, httptest.NewRequest(http.MethodGet, "/players/nobody", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
