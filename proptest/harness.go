package proptest

import (
	"folio/internal/catalog"
	"folio/internal/store"
	"os"
	"testing"

	"pgregory.net/rapid"
)

const (
	typicalMinProjects = 1
	typicalMaxProjects = 10
)

type Harness struct {
	T   *rapid.T
	Dir string
}

// CatalogHarness drives one catalog over a file-backed store that lives in
// a fresh directory for every rapid iteration.
type CatalogHarness struct {
	Harness
	Store   *store.Store
	Catalog *catalog.Catalog
}

func (h *CatalogHarness) MustCreate() catalog.Project {
	fields := fieldsGen().Draw(h.T, "fields")
	p, err := h.Catalog.Create(fields)
	if err != nil {
		h.T.Fatalf("failed to create project: %v", err)
	}
	return p
}

func (h *CatalogHarness) CreateProjects(minCount, maxCount int) []catalog.Project {
	var created []catalog.Project
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numProjects")
	for range n {
		created = append(created, h.MustCreate())
	}
	return created
}

// Reopen loads a second catalog from the same directory.
func (h *CatalogHarness) Reopen() *catalog.Catalog {
	st, err := store.Open(store.KindFile, h.Dir)
	if err != nil {
		h.T.Fatalf("failed to reopen store: %v", err)
	}
	cat, err := catalog.Load(st)
	if err != nil {
		h.T.Fatalf("failed to reload catalog: %v", err)
	}
	return cat
}

func newIterDir(t *rapid.T, base string) string {
	dir, err := os.MkdirTemp(base, "iter")
	if err != nil {
		t.Fatalf("failed to create iter dir: %v", err)
	}
	return dir
}

func RunWithCatalog(t *testing.T, fn func(h *CatalogHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := newIterDir(rt, tempDir)

		st, err := store.Open(store.KindFile, iterDir)
		if err != nil {
			rt.Fatalf("failed to open store: %v", err)
		}
		cat, err := catalog.Load(st)
		if err != nil {
			rt.Fatalf("failed to load catalog: %v", err)
		}

		fn(&CatalogHarness{
			Harness: Harness{T: rt, Dir: iterDir},
			Store:   st,
			Catalog: cat,
		})
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		fn(&Harness{T: rt, Dir: newIterDir(rt, tempDir)})
	})
}
