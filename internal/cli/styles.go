package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/shelftools/shelf/internal/model"
)

var (
	folderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// colorCodes maps the folder color names users pick to terminal colors.
var colorCodes = map[string]string{
	"red":    "203",
	"orange": "214",
	"yellow": "221",
	"green":  "84",
	"blue":   "75",
	"purple": "135",
	"pink":   "212",
	"gray":   "246",
}

// renderFolderName styles a folder name in its configured color.
func renderFolderName(f model.Folder) string {
	style := folderStyle
	if code, ok := colorCodes[f.Color]; ok {
		style = style.Foreground(lipgloss.Color(code))
	}

	name := f.Name
	if f.Icon != "" {
		name = f.Icon + " " + name
	}
	return style.Render(name)
}

// renderItem styles one item line with its kind-specific detail.
func renderItem(it model.Item) string {
	var detail string
	switch t := it.Target.(type) {
	case model.AppTarget:
		detail = t.Path
	case model.SiteTarget:
		detail = t.URL
	case model.FolderTarget:
		detail = "→ folder " + t.FolderID
	}

	return fmt.Sprintf("%s  %s", itemStyle.Render(it.Name), detailStyle.Render(detail))
}
