package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ANSI palette indexes and the link color.
const (
	colorRed    = "1"
	colorGreen  = "2"
	colorYellow = "3"
	colorBlue   = "4"

	LinkColor  = "#87CEEB"
	BadgeColor = "#3B82F6"
)

// UI prints messages, page alerts and headings. Diagnostics go to Err;
// page content goes to Out.
type UI struct {
	Out          io.Writer
	Err          io.Writer
	Output       *termenv.Output
	ErrOutput    *termenv.Output
	ColorEnabled bool
}

func New(out io.Writer, err io.Writer, mode ColorMode, disableColor bool) *UI {
	output := termenv.NewOutput(out)
	return &UI{
		Out:          out,
		Err:          err,
		Output:       output,
		ErrOutput:    termenv.NewOutput(err),
		ColorEnabled: shouldEnableColor(output, mode, disableColor),
	}
}

func shouldEnableColor(output *termenv.Output, mode ColorMode, disableColor bool) bool {
	if disableColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return output.ColorProfile() != termenv.Ascii
	}
}

func (u *UI) Errorf(format string, args ...any) {
	u.line(u.Err, u.ErrOutput, colorRed, fmt.Sprintf(format, args...))
}

func (u *UI) Warnf(format string, args ...any) {
	u.line(u.Err, u.ErrOutput, colorYellow, fmt.Sprintf(format, args...))
}

func (u *UI) Infof(format string, args ...any) {
	u.line(u.Out, u.Output, colorBlue, fmt.Sprintf(format, args...))
}

func (u *UI) Successf(format string, args ...any) {
	u.line(u.Out, u.Output, colorGreen, fmt.Sprintf(format, args...))
}

func (u *UI) line(w io.Writer, output *termenv.Output, color, msg string) {
	msg = strings.TrimRight(msg, "\n")
	if u.ColorEnabled {
		msg = output.String(msg).Foreground(output.Color(color)).String()
	}
	fmt.Fprintln(w, msg)
}

// Alert renders a page message as a titled block on stdout. Errors go red
// and everything else green.
func (u *UI) Alert(title, content string, isError bool) {
	color := colorGreen
	if isError {
		color = colorRed
	}
	heading := title
	if u.ColorEnabled {
		heading = u.Output.String(title).Bold().Foreground(u.Output.Color(color)).String()
	}
	fmt.Fprintf(u.Out, "%s\n  %s\n", heading, strings.TrimRight(content, "\n"))
}

// Heading prints a bold section title.
func (u *UI) Heading(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if u.ColorEnabled {
		msg = u.Output.String(msg).Bold().String()
	}
	fmt.Fprintln(u.Out, msg)
}

// Badges joins feature names as bracketed tags, colored when enabled.
func (u *UI) Badges(names []string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		badge := "[" + strings.TrimSpace(name) + "]"
		if u.ColorEnabled {
			badge = u.Output.String(badge).Foreground(u.Output.Color(BadgeColor)).String()
		}
		parts = append(parts, badge)
	}
	return strings.Join(parts, " ")
}

func ColorizeLink(output *termenv.Output, enabled bool, text string) string {
	if !enabled || output == nil {
		return text
	}
	return output.String(text).Foreground(output.Color(LinkColor)).String()
}

func (u *UI) LinkText(text string) string {
	return ColorizeLink(u.Output, u.ColorEnabled, text)
}

func NormalizeColorMode(value string) ColorMode {
	switch ColorMode(strings.ToLower(strings.TrimSpace(value))) {
	case ColorAlways:
		return ColorAlways
	case ColorNever:
		return ColorNever
	default:
		return ColorAuto
	}
}
