package cmd

import (
	"fmt"

	"github.com/jimezsa/findyourhome/internal/export"
	"github.com/jimezsa/findyourhome/internal/seen"
)

type SeenCmd struct {
	Diff   SeenDiffCmd   `cmd:"" help:"Write unseen listings (A-B) to JSON."`
	Update SeenUpdateCmd `cmd:"" help:"Merge new listings into seen history JSON."`
}

type SeenDiffCmd struct {
	New   string `name:"new" required:"" help:"Path to new listings JSON file (A)."`
	Seen  string `name:"seen" required:"" help:"Path to seen listings JSON file (B). Missing file is treated as empty."`
	Out   string `name:"out" required:"" help:"Output path for unseen listings JSON file (C)."`
	Stats bool   `name:"stats" help:"Print comparison stats."`
}

type SeenUpdateCmd struct {
	Seen  string `name:"seen" required:"" help:"Path to seen listings JSON file (B). Missing file is treated as empty."`
	Input string `name:"input" required:"" help:"Path to input listings JSON file to merge into seen history."`
	Out   string `name:"out" required:"" help:"Output path for updated seen listings JSON."`
	Stats bool   `name:"stats" help:"Print merge stats."`
}

func (c *SeenDiffCmd) Run(ctx *Context) error {
	fresh, err := seen.ReadListings(c.New)
	if err != nil {
		return fmt.Errorf("read --new: %w", err)
	}
	history, err := seen.ReadListingsAllowMissing(c.Seen)
	if err != nil {
		return fmt.Errorf("read --seen: %w", err)
	}

	unseen, stats := seen.Diff(fresh, history)
	if err := seen.WriteListings(c.Out, unseen); err != nil {
		return fmt.Errorf("write --out: %w", err)
	}
	if !c.Stats {
		return nil
	}

	if ctx.JSONOutput {
		return export.WriteJSON(ctx.Out, map[string]int{
			"total_new":       stats.TotalNew,
			"total_seen":      stats.TotalSeen,
			"invalid_skipped": stats.InvalidSkipped(),
			"unseen_emitted":  stats.Unseen,
		})
	}
	_, err = fmt.Fprintf(
		ctx.Out,
		"total_new=%d total_seen=%d invalid_skipped=%d unseen_emitted=%d\n",
		stats.TotalNew,
		stats.TotalSeen,
		stats.InvalidSkipped(),
		stats.Unseen,
	)
	return err
}

func (c *SeenUpdateCmd) Run(ctx *Context) error {
	history, err := seen.ReadListingsAllowMissing(c.Seen)
	if err != nil {
		return fmt.Errorf("read --seen: %w", err)
	}
	input, err := seen.ReadListings(c.Input)
	if err != nil {
		return fmt.Errorf("read --input: %w", err)
	}

	merged, stats := seen.Merge(history, input)
	if err := seen.WriteListings(c.Out, merged); err != nil {
		return fmt.Errorf("write --out: %w", err)
	}
	if !c.Stats {
		return nil
	}

	if ctx.JSONOutput {
		return export.WriteJSON(ctx.Out, map[string]int{
			"total_seen":      stats.TotalSeen,
			"total_input":     stats.TotalInput,
			"invalid_skipped": stats.InvalidSkipped(),
			"added":           stats.Added,
			"total_out":       stats.TotalOut,
		})
	}
	_, err = fmt.Fprintf(
		ctx.Out,
		"total_seen=%d total_input=%d invalid_skipped=%d added=%d total_out=%d\n",
		stats.TotalSeen,
		stats.TotalInput,
		stats.InvalidSkipped(),
		stats.Added,
		stats.TotalOut,
	)
	return err
}
