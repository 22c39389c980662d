package cmd

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`
	Catalog string `help:"Listing catalog JSON merged with the built-in listings." env:"FINDYOURHOME_CATALOG" type:"path"`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Home         HomeCmd         `cmd:"" default:"withargs" help:"Featured listings and quick search."`
	Search       SearchCmd       `cmd:"" help:"Advanced listing search."`
	Requirements RequirementsCmd `cmd:"" help:"Submit housing requirements and rank matching listings."`
	Post         PostCmd         `cmd:"" help:"Post a property listing."`
	Detail       DetailCmd       `cmd:"" help:"Show a listing detail page."`
	Login        LoginCmd        `cmd:"" help:"Log in."`
	Signup       SignupCmd       `cmd:"" help:"Create an account."`
	Import       ImportCmd       `cmd:"" help:"Import listings from an HTML page, URL or catalog file."`
	Seen         SeenCmd         `cmd:"" help:"Seen listings utilities."`
	Config       ConfigCmd       `cmd:"" help:"Manage configuration."`
	Proxies      ProxiesCmd      `cmd:"" help:"Proxy utilities."`
	Version      VersionCmd      `cmd:"" help:"Print version."`
}

func NewCLI() *CLI {
	return &CLI{}
}
