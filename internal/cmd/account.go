package cmd

import (
	"errors"

	"github.com/jimezsa/findyourhome/internal/account"
	"github.com/jimezsa/findyourhome/internal/export"
)

type LoginCmd struct {
	Email    string `help:"Email address."`
	Password string `help:"Password." env:"FINDYOURHOME_PASSWORD"`
}

type SignupCmd struct {
	Email           string `help:"Email address."`
	Password        string `help:"Password." env:"FINDYOURHOME_PASSWORD"`
	ConfirmPassword string `name:"confirm-password" help:"Repeat the password."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	page := &account.LoginPage{Email: c.Email, Password: c.Password}
	if err := page.Submit(ctx.Logger); err != nil {
		return err
	}
	return showMessage(ctx, page.Message)
}

// Run shows the page message. A password mismatch is reported through the
// message, like the form does, and is not a command failure.
func (c *SignupCmd) Run(ctx *Context) error {
	page := &account.SignupPage{
		Email:           c.Email,
		Password:        c.Password,
		ConfirmPassword: c.ConfirmPassword,
	}
	if err := page.Submit(ctx.Logger); err != nil && !errors.Is(err, account.ErrPasswordMismatch) {
		return err
	}
	return showMessage(ctx, page.Message)
}

func showMessage(ctx *Context, msg account.Message) error {
	if msg.Empty() {
		return nil
	}
	if ctx.JSONOutput {
		return export.WriteJSON(ctx.Out, msg)
	}
	ctx.UI.Alert(msg.Title(), msg.Content, msg.Type == account.MessageError)
	return nil
}
