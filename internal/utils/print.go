package utils

import (
	"fmt"
	"io"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/sahayak/internal/models"
	"github.com/charmbracelet/glamour"
)

// AutoStyle picks a dark or light glamour style depending on the terminal background.
const AutoStyle = "auto"

func roleColor(role string) string {
	switch role {
	case models.RoleUser:
		return ancli.CYAN
	case models.RoleAssistant:
		return ancli.MAGENTA
	default:
		return ancli.BLUE
	}
}

func newRenderer(style string) (*glamour.TermRenderer, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != AutoStyle {
		styleOpt = glamour.WithStandardStyle(style)
	}
	return glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(TermWidth()-4),
	)
}

// AttemptPrettyPrint the turn to out as markdown, using the glamour style. If raw,
// the text is printed as is. If the style can't be loaded, the text is printed
// as is, prefixed with the role.
func AttemptPrettyPrint(out io.Writer, turn models.Turn, username string, raw bool, style string) error {
	if raw {
		fmt.Fprintln(out, turn.Text)
		return nil
	}
	role := turn.Role
	if role == models.RoleUser {
		role = username
	}
	color := roleColor(turn.Role)

	renderer, err := newRenderer(style)
	if err != nil {
		ancli.PrintWarn(fmt.Sprintf("failed to load style '%v', printing raw: %v\n", style, err))
		fmt.Fprintf(out, "%v: %v\n", ancli.ColoredMessage(color, role), turn.Text)
		return nil
	}
	rendered, err := renderer.Render(turn.Text)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	fmt.Fprintf(out, "%v:%v", ancli.ColoredMessage(color, role), rendered)
	return nil
}
