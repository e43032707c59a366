package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"recordbook/internal/command"
	"recordbook/internal/config"
)

const helpTitle = "Available commands:"

// renderHelp lists every command with its description in the configured style.
func (s *Session) renderHelp() string {
	cmds := s.registry.Commands()
	if s.ui.HelpStyle == config.HelpMarkdown {
		out, err := renderMarkdownHelp(cmds)
		if err == nil {
			return out
		}
		s.logger.Warn("markdown help failed, falling back to plain", zap.Error(err))
	}
	return s.renderPlainHelp(cmds)
}

func (s *Session) renderPlainHelp(cmds []command.Command) string {
	var sb strings.Builder
	sb.WriteString(s.styles.Title.Render(helpTitle))
	sb.WriteString("\n")
	for _, c := range cmds {
		sb.WriteString(s.styles.Key.Render(c.Key))
		sb.WriteString(" - ")
		sb.WriteString(c.Description)
		sb.WriteString("\n")
	}
	return sb.String()
}

// helpMarkdown builds the command table as markdown.
func helpMarkdown(cmds []command.Command) string {
	var sb strings.Builder
	sb.WriteString("## " + helpTitle + "\n\n")
	sb.WriteString("| Command | Usage | Description |\n")
	sb.WriteString("|---------|-------|-------------|\n")
	for _, c := range cmds {
		fmt.Fprintf(&sb, "| `%s` | `%s` | %s |\n", c.Key, c.Usage, c.Description)
	}
	return sb.String()
}

func renderMarkdownHelp(cmds []command.Command) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(helpMarkdown(cmds))
}
