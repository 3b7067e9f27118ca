package main

import (
	"fmt"
	"folio/internal/catalog"
)

type AddCmd struct {
	Title        string `arg:"" help:"Project title"`
	Description  string `short:"d" help:"Short description"`
	Technologies string `short:"t" help:"Technologies used, e.g. \"Go, SQLite\""`
	Link         string `short:"l" help:"Project URL"`
	Image        string `short:"i" help:"Image URL or data:image URI"`
}

func (cmd *AddCmd) fields() catalog.Fields {
	return catalog.Fields{
		Title:        cmd.Title,
		Description:  cmd.Description,
		Technologies: cmd.Technologies,
		Link:         cmd.Link,
		Image:        cmd.Image,
	}
}

func (cmd *AddCmd) Run(g *Globals) error {
	p, err := createProject(g, cmd.fields())
	if err != nil {
		return err
	}

	fmt.Fprintf(g.Out, "Added: %s (#%d)\n", p.Title, p.ID)
	return nil
}

// createProject reports a non-durable create as a warning, since the
// project does exist for the rest of this process.
func createProject(g *Globals, fields catalog.Fields) (catalog.Project, error) {
	p, err := g.Cat.Create(fields)
	if catalog.IsNotDurable(err) {
		fmt.Fprintf(g.Err, "warning: %v\n", err)
		return p, nil
	}
	if err != nil {
		return catalog.Project{}, fmt.Errorf("failed to add project: %w", err)
	}
	return p, nil
}
