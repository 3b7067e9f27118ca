package main

import (
	"encoding/json"
	"fmt"
)

type ShowCmd struct {
	ID   int  `arg:"" help:"Project id"`
	JSON bool `help:"Output the stored record as JSON"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	project, err := g.Cat.Get(cmd.ID)
	if err != nil {
		return fmt.Errorf("no project with id %d", cmd.ID)
	}

	if cmd.JSON {
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(project)
	}

	fmt.Fprint(g.Out, g.Render.RenderProject(listItem(project)))
	return nil
}
