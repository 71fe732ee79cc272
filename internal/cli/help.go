// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Custom help styles
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accentColor).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(okColor).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AAAA")).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)
)

// StyledHelpPrinter renders kong help with lipgloss. It describes the
// selected command, or lists the commands when none is selected.
func StyledHelpPrinter(options kong.HelpOptions) func(options kong.HelpOptions, ctx *kong.Context) error {
	return func(options kong.HelpOptions, ctx *kong.Context) error {
		node := ctx.Selected()
		if node == nil {
			node = ctx.Model.Node
		}

		var sb strings.Builder

		sb.WriteString(helpTitleStyle.Render(ctx.Model.Name))
		sb.WriteString("\n")
		desc := ctx.Model.Help
		if node != ctx.Model.Node && node.Help != "" {
			desc = node.Help
		}
		if desc != "" {
			sb.WriteString(helpDescStyle.Render(desc))
			sb.WriteString("\n")
		}

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(usageLine(node))
		sb.WriteString("\n")

		if cmds := getCommands(node); len(cmds) > 0 {
			writeSection(&sb, "Commands:", cmds, helpArgStyle)
		}
		if args := getArguments(node); len(args) > 0 {
			writeSection(&sb, "Arguments:", args, helpArgStyle)
		}
		if flags := getFlags(node); len(flags) > 0 {
			writeSection(&sb, "Flags:", flags, helpFlagStyle)
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	}
}

type entry struct {
	name       string
	help       string
	defaultVal string
}

func writeSection(sb *strings.Builder, title string, entries []entry, style lipgloss.Style) {
	sb.WriteString("\n")
	sb.WriteString(helpSectionStyle.Render(title))
	sb.WriteString("\n")
	for _, e := range entries {
		sb.WriteString("  ")
		sb.WriteString(style.Render(e.name))
		if e.help != "" {
			sb.WriteString("  ")
			sb.WriteString(e.help)
		}
		if e.defaultVal != "" {
			sb.WriteString(" ")
			sb.WriteString(helpDefaultStyle.Render("(default: " + e.defaultVal + ")"))
		}
		sb.WriteString("\n")
	}
}

func usageLine(node *kong.Node) string {
	var parts []string
	parts = append(parts, node.FullPath())
	if len(node.Children) > 0 {
		parts = append(parts, "<command>")
	}
	parts = append(parts, "[flags]")
	for _, p := range node.Positional {
		parts = append(parts, p.Summary())
	}

	return strings.Join(parts, " ")
}

func getCommands(node *kong.Node) []entry {
	var out []entry
	for _, child := range node.Children {
		if child.Hidden || child.Type != kong.CommandNode {
			continue
		}
		out = append(out, entry{name: child.Name, help: child.Help})
	}

	return out
}

func getArguments(node *kong.Node) []entry {
	var out []entry
	for _, arg := range node.Positional {
		out = append(out, entry{name: arg.Summary(), help: arg.Help})
	}

	return out
}

// getFlags lists the node's flags followed by those inherited from parents.
func getFlags(node *kong.Node) []entry {
	out := []entry{{
		name: "-h, --help",
		help: "Show context-sensitive help.",
	}}

	groups := node.AllFlags(true)
	for i := len(groups) - 1; i >= 0; i-- {
		for _, f := range groups[i] {
			if f.Name == "help" {
				continue
			}

			name := "--" + f.Name
			if f.Short != 0 {
				name = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
			}
			if !f.IsBool() {
				name += "=" + strings.ToUpper(f.FormatPlaceHolder())
			}

			def := ""
			if f.HasDefault && !f.IsBool() {
				def = f.Default
			}
			out = append(out, entry{name: name, help: f.Help, defaultVal: def})
		}
	}

	return out
}
