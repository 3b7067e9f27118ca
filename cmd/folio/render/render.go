package render

// Renderer draws the catalog for a terminal.
type Renderer interface {
	RenderProjectList(view ProjectListView) string
	RenderProject(item ProjectListItem) string
}

type ProjectListView struct {
	Items []ProjectListItem
}

type ProjectListItem struct {
	ID           int
	Title        string
	Description  string
	Technologies string
	Link         string
	Image        string
}

func (v ProjectListView) IsEmpty() bool {
	return len(v.Items) == 0
}
