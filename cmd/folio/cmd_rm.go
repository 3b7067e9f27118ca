package main

import (
	"fmt"
	"folio/internal/catalog"
)

type RmCmd struct {
	ID int `arg:"" help:"Project id to remove"`
}

func (cmd *RmCmd) Run(g *Globals) error {
	project, err := g.Cat.Get(cmd.ID)
	if err != nil {
		return fmt.Errorf("no project with id %d", cmd.ID)
	}

	removed, err := g.Cat.Delete(cmd.ID)
	if !removed {
		return fmt.Errorf("no project with id %d", cmd.ID)
	}
	if catalog.IsNotDurable(err) {
		fmt.Fprintf(g.Err, "warning: %v\n", err)
	}

	fmt.Fprintf(g.Out, "Removed: %s (#%d)\n", project.Title, project.ID)
	return nil
}
