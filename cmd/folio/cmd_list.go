package main

import (
	"fmt"
	"folio/cmd/folio/render"
	"folio/internal/catalog"
)

type ListCmd struct {
	IDs bool `short:"q" help:"Output only project ids (one per line)"`
}

func (cmd *ListCmd) Run(g *Globals) error {
	projects := g.Cat.List()

	if cmd.IDs {
		for _, p := range projects {
			fmt.Fprintln(g.Out, p.ID)
		}
		return nil
	}

	view := render.ProjectListView{Items: make([]render.ProjectListItem, len(projects))}
	for i, p := range projects {
		view.Items[i] = listItem(p)
	}
	fmt.Fprint(g.Out, g.Render.RenderProjectList(view))
	return nil
}

func listItem(p catalog.Project) render.ProjectListItem {
	return render.ProjectListItem{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		Link:         p.Link,
		Image:        p.Image,
	}
}
