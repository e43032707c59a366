package config

import "fmt"

// Help renderers.
const (
	HelpPlain    = "plain"
	HelpMarkdown = "markdown"
)

// UIConfig holds console presentation settings.
type UIConfig struct {
	// HelpStyle picks the help renderer: a styled table or rendered markdown.
	HelpStyle string `yaml:"help_style" env:"RECORDBOOK_HELP_STYLE"`

	// PagePrompt asks before every page of "show some"; when false all pages
	// are printed at once.
	PagePrompt bool `yaml:"page_prompt"`
}

func (c *UIConfig) validate() error {
	switch c.HelpStyle {
	case HelpPlain, HelpMarkdown:
		return nil
	}
	return fmt.Errorf("invalid help style: %q (valid: %s, %s)", c.HelpStyle, HelpPlain, HelpMarkdown)
}
