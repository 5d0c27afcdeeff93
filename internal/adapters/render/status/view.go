package status

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/voxel-schematics/internal/application"
	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const fillBarWidth = 24

type RenderOptions struct {
	ActorName string
}

func renderView(status application.SessionStatus, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Schematics Session"),
		s.header.Render("actor: ") + s.actor.Render(actorTitle(opts.ActorName, status.ActorID)),
	}

	lines = append(lines, s.section.Render(renderSelection(status, s)))
	lines = append(lines, s.section.Render(renderClipboard(status, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSelection(status application.SessionStatus, s styles) string {
	parts := []string{
		field("first position", optionalVec(status.FirstCorner), s),
		field("second position", optionalVec(status.SecondCorner), s),
	}

	if status.Selection == nil {
		parts = append(parts, s.key.Render("selection: ")+s.empty.Render("incomplete"))
	} else {
		parts = append(parts, field("selection", fmt.Sprintf("%s..%s %s (%d blocks)",
			status.Selection.Min,
			status.Selection.Max,
			dimensions(*status.SelectionSize),
			status.Selection.Volume(),
		), s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderClipboard(status application.SessionStatus, s styles) string {
	clipboard := status.Clipboard
	if clipboard == nil {
		return s.key.Render("clipboard: ") + s.empty.Render("empty")
	}

	solidPercent := 0.0
	if clipboard.Blocks > 0 {
		solidPercent = 100 * float64(clipboard.SolidBlocks) / float64(clipboard.Blocks)
	}
	percentStyle := lipgloss.NewStyle().Foreground(interpolateColor(solidPercent, 0, 100))

	return lipgloss.JoinVertical(lipgloss.Left,
		field("clipboard", fmt.Sprintf("%s offset %s", dimensions(clipboard.Size), clipboard.Offset), s),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.key.Render("fill: "),
			renderFillBar(solidPercent, fillBarWidth, s),
			" ",
			percentStyle.Render(fmt.Sprintf("%3.0f%% solid", solidPercent)),
		),
		field("block entities", fmt.Sprintf("%d", clipboard.BlockEntities), s),
		field("entities", fmt.Sprintf("%d", clipboard.Entities), s),
		field("origin", optionalVec(status.Origin), s),
	)
}

func field(key, value string, s styles) string {
	return s.key.Render(key+": ") + s.detail.Render(value)
}

func actorTitle(name, id string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return id
	}

	return fmt.Sprintf("%s (%s)", name, id)
}

func optionalVec(v *domain.Vec3i) string {
	if v == nil {
		return "not set"
	}

	return v.String()
}

func dimensions(size domain.Vec3i) string {
	return fmt.Sprintf("%dx%dx%d", size.X, size.Y, size.Z)
}

func renderFillBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// interpolateColor maps value onto the 240..255 greyscale ramp.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240+15*normalized)))
}
