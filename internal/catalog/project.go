package catalog

import "strings"

type Project struct {
	ID           int    `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Description  string `json:"description" yaml:"description"`
	Technologies string `json:"technologies" yaml:"technologies"`
	Link         string `json:"link" yaml:"link"`
	Image        string `json:"image" yaml:"image"`
}

// Fields is the caller-supplied part of a project; the catalog assigns the ID.
type Fields struct {
	Title        string `json:"title" form:"title"`
	Description  string `json:"description" form:"description"`
	Technologies string `json:"technologies" form:"technologies"`
	Link         string `json:"link" form:"link"`
	Image        string `json:"image" form:"image"`
}

func (f Fields) Normalize() Fields {
	return Fields{
		Title:        strings.TrimSpace(f.Title),
		Description:  strings.TrimSpace(f.Description),
		Technologies: strings.TrimSpace(f.Technologies),
		Link:         strings.TrimSpace(f.Link),
		Image:        strings.TrimSpace(f.Image),
	}
}

func (f Fields) Validate() error {
	return ValidateTitle(f.Title)
}

func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "project title cannot be empty"}
	}
	return nil
}

func (f Fields) project(id int) Project {
	return Project{
		ID:           id,
		Title:        f.Title,
		Description:  f.Description,
		Technologies: f.Technologies,
		Link:         f.Link,
		Image:        f.Image,
	}
}

func (p Project) HasLink() bool {
	return p.Link != ""
}

func (p Project) HasImage() bool {
	return p.Image != ""
}
