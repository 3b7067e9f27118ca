// Package present renders the project catalog as HTML. Every record field is
// treated as untrusted text and goes through html/template escaping.
package present

import (
	"bytes"
	"embed"
	"fmt"
	"folio/internal/catalog"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const TechnologiesPlaceholder = "Various technologies"

// inline image types accepted in the src attribute
var imageDataPrefixes = []string{
	"data:image/png;base64,",
	"data:image/jpeg;base64,",
	"data:image/gif;base64,",
	"data:image/webp;base64,",
}

type Notice struct {
	Message string
	Kind    string
}

type Page struct {
	Title        string
	Owner        string
	Tagline      string
	ContactEmail string
	InquiryTypes []string
	Notice       Notice
	MailtoURL    string
	Projects     []catalog.Project
}

type Presenter struct {
	tmpl *template.Template
}

func New() (*Presenter, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Presenter{tmpl: tmpl}, nil
}

// Must is New for package-level initialisation; the templates are embedded,
// so a parse failure is a build defect.
func Must() *Presenter {
	p, err := New()
	if err != nil {
		panic(err)
	}
	return p
}

type card struct {
	ID           int
	Title        string
	Description  string
	Technologies string
	Link         string
	Image        any
}

func newCard(p catalog.Project) card {
	c := card{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		Link:         p.Link,
	}
	if c.Technologies == "" {
		c.Technologies = TechnologiesPlaceholder
	}
	if p.HasImage() {
		c.Image = imageSource(p.Image)
	}
	return c
}

// imageSource marks inline images of known raster types as safe URLs. Any
// other value is left to the template URL filter.
func imageSource(src string) any {
	lower := strings.ToLower(src)
	for _, prefix := range imageDataPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return template.URL(src)
		}
	}
	return src
}

func (p *Presenter) RenderEmpty() (string, error) {
	return p.execute("empty", nil)
}

func (p *Presenter) RenderCatalog(projects []catalog.Project) (string, error) {
	cards := make([]card, len(projects))
	for i, proj := range projects {
		cards[i] = newCard(proj)
	}
	return p.execute("cards", cards)
}

// Render picks the empty block exactly when there are no projects.
func (p *Presenter) Render(projects []catalog.Project) (string, error) {
	if len(projects) == 0 {
		return p.RenderEmpty()
	}
	return p.RenderCatalog(projects)
}

type pageView struct {
	Page
	Grid template.HTML
}

func (p *Presenter) RenderPage(w io.Writer, page Page) error {
	grid, err := p.Render(page.Projects)
	if err != nil {
		return err
	}
	if err := p.tmpl.ExecuteTemplate(w, "page", pageView{Page: page, Grid: template.HTML(grid)}); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

func (p *Presenter) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
