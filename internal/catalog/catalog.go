package catalog

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
)

// ProjectStore is the durable mirror behind a Catalog. LoadProjects reports
// found=false when nothing has been stored yet.
type ProjectStore interface {
	SaveProjects(projects []Project) error
	LoadProjects() (projects []Project, found bool, err error)
}

// Catalog is the ordered, uniquely identified set of projects. Insertion
// order is display order. Create and Delete hold the write lock across
// allocate, mutate and save so concurrent callers cannot observe or
// persist a half-applied change.
type Catalog struct {
	store    ProjectStore
	projects []Project
	nextID   int
	mu       sync.RWMutex
}

// New returns an empty catalog bound to store. A nil store keeps the
// catalog in memory only.
func New(store ProjectStore) *Catalog {
	return &Catalog{store: store}
}

func Load(store ProjectStore) (*Catalog, error) {
	c := New(store)
	if store == nil {
		c.seed()
		return c, nil
	}

	projects, found, err := store.LoadProjects()
	if err != nil {
		var corrupt *CorruptStoreError
		if errors.As(err, &corrupt) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	if !found {
		c.seed()
		return c, nil
	}

	if err := c.restore(projects); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadOrSeed is Load for callers that fall back to the sample projects when
// the stored data is corrupt. The corrupt error is still returned so the
// caller can warn; the catalog is usable either way.
func LoadOrSeed(store ProjectStore) (*Catalog, error) {
	c, err := Load(store)
	if err == nil {
		return c, nil
	}

	var corrupt *CorruptStoreError
	if !errors.As(err, &corrupt) {
		return nil, err
	}

	c = New(store)
	c.seed()
	return c, err
}

func (c *Catalog) seed() {
	c.projects = SeedProjects()
	c.nextID = len(c.projects)
}

func (c *Catalog) restore(projects []Project) error {
	seen := make(map[int]bool, len(projects))
	next := 0
	for _, p := range projects {
		if seen[p.ID] {
			return &CorruptStoreError{
				Key: "projects",
				Err: fmt.Errorf("duplicate project id %d", p.ID),
			}
		}
		if p.ID < 0 || p.ID == math.MaxInt {
			return &CorruptStoreError{
				Key: "projects",
				Err: fmt.Errorf("project id %d out of range", p.ID),
			}
		}
		seen[p.ID] = true
		next = max(next, p.ID+1)
	}

	c.projects = slices.Clone(projects)
	c.nextID = next
	return nil
}

func (c *Catalog) Create(fields Fields) (Project, error) {
	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		return Project{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.nextID == math.MaxInt {
		return Project{}, ErrIDsExhausted
	}

	p := fields.project(c.nextID)
	c.nextID++
	c.projects = append(c.projects, p)

	if err := c.saveLocked(); err != nil {
		return p, &PersistenceWriteError{Op: "create", Err: err}
	}
	return p, nil
}

// Delete removes the project with the given id. It reports false, and saves
// nothing, when no project has that id.
func (c *Catalog) Delete(id int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return false, nil
	}

	c.projects = slices.Delete(c.projects, idx, idx+1)

	if err := c.saveLocked(); err != nil {
		return true, &PersistenceWriteError{Op: "delete", Err: err}
	}
	return true, nil
}

func (c *Catalog) Get(id int) (Project, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return Project{}, ErrNotFound
	}
	return c.projects[idx], nil
}

func (c *Catalog) List() []Project {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.projects)
}

func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.projects)
}

// NextID is the id the next Create will assign.
func (c *Catalog) NextID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nextID
}

func (c *Catalog) indexLocked(id int) int {
	return slices.IndexFunc(c.projects, func(p Project) bool {
		return p.ID == id
	})
}

func (c *Catalog) saveLocked() error {
	if c.store == nil {
		return nil
	}
	return c.store.SaveProjects(slices.Clone(c.projects))
}
