package cmd

import (
	"fmt"
	"strings"

	"github.com/jimezsa/findyourhome/internal/config"
)

type ConfigCmd struct {
	Init InitConfigCmd `cmd:"" help:"Write default config and proxies files."`
	Path PathConfigCmd `cmd:"" help:"Print config directory."`
}

type InitConfigCmd struct{}

type PathConfigCmd struct {
	CatalogFile bool `name:"catalog-file" help:"Print the catalog file path instead."`
}

func (c *InitConfigCmd) Run(ctx *Context) error {
	paths, err := config.Init()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		ctx.UI.Infof("Config already initialized at %s", ctx.ConfigDir)
		return nil
	}
	ctx.UI.Infof("Created: %s", strings.Join(paths, ", "))
	return nil
}

func (c *PathConfigCmd) Run(ctx *Context) error {
	path := ctx.ConfigDir
	if c.CatalogFile {
		var err error
		if path, err = ctx.Config.CatalogPath(ctx.Catalog); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(ctx.Out, path)
	return err
}
