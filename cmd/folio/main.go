package main

import (
	"errors"
	"fmt"
	"folio/cmd/folio/render"
	"folio/internal/catalog"
	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/present"
	"folio/internal/store"
	"io"
	"os"

	"github.com/alecthomas/kong"
	_ "github.com/joho/godotenv/autoload"
)

type CLI struct {
	Add      AddCmd      `cmd:"" aliases:"a" help:"Add a project to the catalog"`
	Create   CreateCmd   `cmd:"" help:"Add a project with an interactive form"`
	List     ListCmd     `cmd:"" aliases:"ls" help:"List projects in the catalog"`
	Rm       RmCmd       `cmd:"" help:"Remove a project from the catalog"`
	Show     ShowCmd     `cmd:"" help:"Show project details"`
	Render   RenderCmd   `cmd:"" help:"Print the catalog as HTML"`
	Export   ExportCmd   `cmd:"" help:"Export the catalog as YAML or JSON"`
	Contact  ContactCmd  `cmd:"" help:"Send a message through the contact pipeline"`
	Messages MessagesCmd `cmd:"" help:"List archived contact messages"`
	Serve    ServeCmd    `cmd:"" help:"Serve the portfolio over HTTP"`

	ConfigPath string `name:"config" short:"c" help:"Path to config file" type:"path"`
	DataDir    string `name:"data-dir" help:"Directory for stored data" type:"path"`
	Backend    string `name:"backend" help:"Storage backend (file, sqlite or memory)"`
	LogLevel   string `name:"log-level" help:"Log level (debug, info, warn or error)"`

	globals *Globals
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.DataDir != "" {
		cfg.Store.DataDir = c.DataDir
	}
	if c.Backend != "" {
		cfg.Store.Backend = c.Backend
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: os.Stderr})
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Store.Backend, cfg.Store.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	cat, err := loadCatalog(st, os.Stderr)
	if err != nil {
		st.Close()
		return err
	}

	presenter, err := present.New()
	if err != nil {
		st.Close()
		return err
	}

	c.globals = &Globals{
		Cat:       cat,
		Store:     st,
		Config:    cfg,
		Logger:    logger,
		Presenter: presenter,
		Out:       os.Stdout,
		Err:       os.Stderr,
		Render:    render.NewLipglossRendererAuto(os.Stdout),
	}
	ctx.Bind(c.globals)
	return nil
}

// loadCatalog falls back to the sample projects when the stored catalog is
// corrupt and says so on w. The corrupt data stays on disk until the next
// create or delete overwrites it.
func loadCatalog(st catalog.ProjectStore, w io.Writer) (*catalog.Catalog, error) {
	cat, err := catalog.LoadOrSeed(st)
	var corrupt *catalog.CorruptStoreError
	if errors.As(err, &corrupt) {
		fmt.Fprintf(w, "warning: %v; showing sample projects instead\n", err)
		return cat, nil
	}
	if err != nil {
		return nil, err
	}
	return cat, nil
}

func (c *CLI) close() {
	if c.globals == nil {
		return
	}
	c.globals.Store.Close()
	logging.Sync(c.globals.Logger)
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("folio"),
		kong.Description("Portfolio project catalog"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	cli.close()
	ctx.FatalIfErrorf(err)
}
