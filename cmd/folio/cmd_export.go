package main

import (
	"encoding/json"
	"fmt"
	"folio/internal/catalog"

	"gopkg.in/yaml.v3"
)

const exportVersion = 1

type exportFile struct {
	Version  int               `json:"version" yaml:"version"`
	Projects []catalog.Project `json:"projects" yaml:"projects"`
}

type ExportCmd struct {
	Format string `short:"f" enum:"yaml,json" default:"yaml" help:"Output format (yaml or json)"`
}

func (cmd *ExportCmd) Run(g *Globals) error {
	file := exportFile{Version: exportVersion, Projects: g.Cat.List()}
	if file.Projects == nil {
		file.Projects = []catalog.Project{}
	}

	switch cmd.Format {
	case "json":
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(file)
	default:
		enc := yaml.NewEncoder(g.Out)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}
}
