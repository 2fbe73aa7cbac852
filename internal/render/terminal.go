package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-writing-services/internal/ui"
	"go-writing-services/internal/view"
)

const levelBarWidth = 20

// Terminal draws view documents as styled text
type Terminal struct {
	palette ui.Palette

	heading lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	body    lipgloss.Style
	muted   lipgloss.Style
	notice  lipgloss.Style
}

// NewTerminal creates a terminal renderer coloured with palette.
func NewTerminal(palette ui.Palette) *Terminal {
	return &Terminal{
		palette: palette,
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Primary)).MarginBottom(1),
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Secondary)),
		label:   lipgloss.NewStyle().Bold(true),
		body:    lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Text)),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Muted)).Italic(true),
		notice:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Render draws doc section by section.
func (t *Terminal) Render(doc view.Document) string {
	blocks := []string{t.heading.Render(doc.Heading)}
	for _, s := range doc.Sections {
		blocks = append(blocks, t.section(s))
	}
	return strings.Join(blocks, "\n") + "\n"
}

func (t *Terminal) section(s view.Section) string {
	switch s.Kind {
	case view.KindNotice:
		color := lipgloss.Color(t.toneColor(s.Tone))
		box := t.notice.BorderForeground(color)
		return box.Render(t.title.Foreground(color).Render(s.Title) + "\n" + s.Body)
	case view.KindText:
		return t.title.Render(s.Title) + "\n" + t.body.Render(s.Body) + "\n"
	case view.KindLevel:
		return t.title.Render(s.Title) + "\n" + t.tone(s.Tone).Render(s.Body) + "\n" + t.bar(s.Level) + "\n"
	case view.KindFacts:
		return t.title.Render(s.Title) + "\n" + t.facts(s.Facts, "") + "\n"
	case view.KindList:
		return t.title.Render(s.Title) + "\n" + t.items(s.Items) + "\n"
	default:
		return t.title.Render(s.Title) + "\n" + s.Body + "\n"
	}
}

func (t *Terminal) items(items []view.Item) string {
	if len(items) == 0 {
		return t.muted.Render("None.")
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		bullet := t.tone(it.Marker).Render("•")
		var b strings.Builder
		b.WriteString(bullet)
		if it.Text != "" {
			b.WriteString(" " + it.Text)
		}
		if len(it.Facts) > 0 {
			if it.Text != "" {
				b.WriteString("\n")
				b.WriteString(t.facts(it.Facts, "  "))
			} else {
				b.WriteString(" " + strings.TrimPrefix(t.facts(it.Facts, "  "), "  "))
			}
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func (t *Terminal) facts(fs []view.Fact, indent string) string {
	lines := make([]string, 0, len(fs))
	for _, f := range fs {
		value := t.tone(f.Tone).Render(f.Value)
		if f.Label == "" {
			lines = append(lines, indent+"["+value+"]")
			continue
		}
		lines = append(lines, indent+t.label.Render(f.Label+":")+" "+value)
	}
	return strings.Join(lines, "\n")
}

func (t *Terminal) bar(level float64) string {
	filled := int(math.Round(level / 100 * levelBarWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > levelBarWidth {
		filled = levelBarWidth
	}
	on := lipgloss.NewStyle().Foreground(lipgloss.Color(t.palette.Error)).Render(strings.Repeat("█", filled))
	off := t.muted.Render(strings.Repeat("░", levelBarWidth-filled))
	return fmt.Sprintf("%s%s", on, off)
}

func (t *Terminal) tone(tone view.Tone) lipgloss.Style {
	if tone == view.ToneNone {
		return t.body
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.toneColor(tone)))
}

func (t *Terminal) toneColor(tone view.Tone) string {
	switch tone {
	case view.ToneSuccess:
		return t.palette.Success
	case view.ToneWarning:
		return t.palette.Warning
	case view.ToneError:
		return t.palette.Error
	case view.ToneInfo:
		return t.palette.Info
	default:
		return t.palette.Text
	}
}
