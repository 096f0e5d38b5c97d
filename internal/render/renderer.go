// Package render writes skills pages and player profiles as HTML.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"skilld/internal/skills"
)

//go:embed templates/*.html
var templateFS embed.FS

// Profile is the data behind the player profile page.
type Profile struct {
	PlayerID    string
	Name        string
	Title       string
	ExtID       string
	Plays       int
	VersionName string
	SkillsLink  string
}

type RendererInterface interface {
	Skills(w io.Writer, page skills.Page) error
	Profile(w io.Writer, p Profile) error
}

type Renderer struct {
	skills  *template.Template
	profile *template.Template
}

func parsePage(name string) (*template.Template, error) {
	t, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return t, nil
}

func NewRenderer() (RendererInterface, error) {
	s, err := parsePage("skills.html")
	if err != nil {
		return nil, err
	}
	p, err := parsePage("profile.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{skills: s, profile: p}, nil
}

// Skills writes nothing to w when the template fails.
func (r *Renderer) Skills(w io.Writer, page skills.Page) error {
	return execute(w, r.skills, page)
}

func (r *Renderer) Profile(w io.Writer, p Profile) error {
	return execute(w, r.profile, p)
}

func execute(w io.Writer, t *template.Template, data any) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", t.Name(), err)
	}
	_, err := buf.WriteTo(w)
	return err
}
