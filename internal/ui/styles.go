package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors, taken from the web page's palette.
const (
	ColorBrand   = "#2563eb" // blue-600
	ColorAccent  = "#3b82f6" // blue-500
	ColorGreen   = "#10b981"
	ColorAmber   = "#f59e0b"
	ColorOrange  = "#ea580c"
	ColorPurple  = "#a855f7"
	ColorSlate   = "#94a3b8"
	ColorText    = "252"
	ColorMuted   = "241"
	ColorDim     = "243"
	ColorSurface = "236"
)

// Styles contains shared style definitions used across the page.
var Styles = struct {
	// Nav bar
	NavSolid      lipgloss.Style // bar once the page has scrolled
	NavClear      lipgloss.Style // bar at the top of the page
	NavItem       lipgloss.Style
	NavItemActive lipgloss.Style
	NavBrand      lipgloss.Style
	NavRule       lipgloss.Style

	// Content
	Kicker  lipgloss.Style
	Hero    lipgloss.Style
	HeroAlt lipgloss.Style
	Heading lipgloss.Style
	Subhead lipgloss.Style
	Card    lipgloss.Style
	Figure  lipgloss.Style
	Normal  lipgloss.Style
	Muted   lipgloss.Style
	Link    lipgloss.Style
	Badge   lipgloss.Style
	Button  lipgloss.Style

	// Chrome
	Status lipgloss.Style
	Box    lipgloss.Style
	Title  lipgloss.Style
}{
	NavSolid: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorSurface)),
	NavClear: lipgloss.NewStyle(),
	NavItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	NavItemActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorBrand)).
		Bold(true).
		Padding(0, 1),
	NavBrand: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true).
		Padding(0, 1),
	NavRule: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),

	Kicker: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Hero: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")),
	HeroAlt: lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(ColorBrand)),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		BorderStyle(lipgloss.ThickBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(ColorBrand)),
	Subhead: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	Figure: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Underline(true),
	Badge: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorBrand)).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("#0f172a")).
		Bold(true).
		Padding(0, 2),

	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
}
