package proptest

import (
	"errors"
	"folio/internal/catalog"
	"folio/internal/present"
	"slices"
	"strings"

	"pgregory.net/rapid"
)

// catalogModel tracks only what the catalog must agree on: which ids exist,
// in which order, and which id comes next.
type catalogModel struct {
	ids  []int
	next int
}

func newCatalogModel(cat *catalog.Catalog) *catalogModel {
	m := &catalogModel{next: cat.NextID()}
	for _, p := range cat.List() {
		m.ids = append(m.ids, p.ID)
	}
	return m
}

func (m *catalogModel) Create() int {
	id := m.next
	m.next++
	m.ids = append(m.ids, id)
	return id
}

func (m *catalogModel) Delete(id int) bool {
	idx := slices.Index(m.ids, id)
	if idx < 0 {
		return false
	}
	m.ids = slices.Delete(m.ids, idx, idx+1)
	return true
}

func (m *catalogModel) Exists(id int) bool {
	return slices.Contains(m.ids, id)
}

func (m *catalogModel) IDs() []int {
	return slices.Clone(m.ids)
}

type CheckedCatalog struct {
	real      *catalog.Catalog
	model     *catalogModel
	presenter *present.Presenter
	t         *rapid.T
}

func NewCheckedCatalog(t *rapid.T, cat *catalog.Catalog) *CheckedCatalog {
	return &CheckedCatalog{
		real:      cat,
		model:     newCatalogModel(cat),
		presenter: present.Must(),
		t:         t,
	}
}

func (c *CheckedCatalog) Model() *catalogModel {
	return c.model
}

func (c *CheckedCatalog) Create(fields catalog.Fields) (catalog.Project, error) {
	p, err := c.real.Create(fields)
	if err != nil {
		var verr *catalog.ValidationError
		if !errors.As(err, &verr) {
			c.t.Fatalf("Create failed: %v", err)
		}
		if strings.TrimSpace(fields.Title) != "" {
			c.t.Fatalf("Create rejected title %q: %v", fields.Title, err)
		}
		c.verify()
		return p, err
	}

	want := c.model.Create()
	if p.ID != want {
		c.t.Fatalf("[%s] violated: Create assigned %d, model expected %d", InvModelConsistent, p.ID, want)
	}
	verifyTrimmed(c.t, p)
	c.verify()
	return p, nil
}

func (c *CheckedCatalog) Delete(id int) bool {
	removed, err := c.real.Delete(id)
	if err != nil {
		c.t.Fatalf("Delete(%d) failed: %v", id, err)
	}
	if modelRemoved := c.model.Delete(id); removed != modelRemoved {
		c.t.Fatalf("[%s] violated: Delete(%d) real=%v model=%v", InvModelConsistent, id, removed, modelRemoved)
	}
	c.verify()
	return removed
}

func (c *CheckedCatalog) Get(id int) (catalog.Project, error) {
	p, err := c.real.Get(id)
	if (err == nil) != c.model.Exists(id) {
		c.t.Fatalf("[%s] violated: Get(%d) err=%v model exists=%v", InvModelConsistent, id, err, c.model.Exists(id))
	}
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		c.t.Fatalf("Get(%d) returned unexpected error: %v", id, err)
	}
	return p, err
}

func (c *CheckedCatalog) Render() string {
	html, err := c.presenter.Render(c.real.List())
	if err != nil {
		c.t.Fatalf("Render failed: %v", err)
	}
	empty := strings.Contains(html, `class="no-projects"`)
	if empty != (len(c.model.ids) == 0) {
		c.t.Fatalf("[%s] violated: empty block=%v with %d projects", InvEmptyBlockIffEmpty, empty, len(c.model.ids))
	}
	if cards := strings.Count(html, `class="project-card"`); cards != len(c.model.ids) {
		c.t.Fatalf("rendered %d cards for %d projects", cards, len(c.model.ids))
	}
	return html
}

func (c *CheckedCatalog) verify() {
	verifyStructuralInvariants(c.t, c.real)
	assertIDs(c.t, c.model.ids, c.real.List())
	if c.real.NextID() != c.model.next {
		c.t.Fatalf("[%s] violated: NextID real=%d model=%d", InvModelConsistent, c.real.NextID(), c.model.next)
	}
}
