package render

import (
	"io"
	"os"
	"sln/internal/config"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

type LipglossRenderer struct {
	width int
	now   func() time.Time
	r     *lipgloss.Renderer

	nameStyle       lipgloss.Style
	dirStyle        lipgloss.Style
	kindStyle       lipgloss.Style
	timeStyle       lipgloss.Style
	recentTimeStyle lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:           width,
		now:             time.Now,
		r:               r,
		nameStyle:       r.NewStyle().Bold(true),
		dirStyle:        r.NewStyle().Faint(true),
		kindStyle:       r.NewStyle().Foreground(lipgloss.Color("6")),
		timeStyle:       r.NewStyle().Faint(true),
		recentTimeStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) WithClock(now func() time.Time) *LipglossRenderer {
	r.now = now
	return r
}

func (r *LipglossRenderer) RenderProjectList(view ProjectListView) string {
	if view.IsEmpty() {
		return "No projects in solution.\n"
	}

	now := r.now()
	var sb strings.Builder
	for i, item := range view.Items {
		last := i == len(view.Items)-1
		sb.WriteString(r.renderItem(item, now, last))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item ProjectListItem, now time.Time, last bool) string {
	timeStyle := r.timeStyle
	if now.Sub(item.Timestamp) < 1*time.Hour {
		timeStyle = r.recentTimeStyle
	}

	header := r.nameStyle.Render(item.Name)
	if item.Kind != "" {
		header += " " + r.kindStyle.Render("["+item.Kind+"]")
	}
	timeEl := timeStyle.Render(r.formatTime(item.Timestamp, now))

	padding := max(1, r.width-lipgloss.Width(header)-lipgloss.Width(timeEl))
	headerLine := header + strings.Repeat(" ", padding) + timeEl

	lines := []string{
		headerLine,
		r.dirStyle.Render("  " + config.ShortenPath(item.Dir)),
	}
	if !last {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n") + "\n"
}

func (r *LipglossRenderer) formatTime(t, now time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}

	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	target := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	days := int(today.Sub(target).Hours() / 24)

	timeStr := t.Format("15:04")

	switch {
	case days == 0:
		return timeStr
	case days == 1:
		return "Yesterday " + timeStr
	case days < 7:
		return t.Format("Mon") + " " + timeStr
	case t.Year() == now.Year():
		return t.Format("Jan 2") + " " + timeStr
	default:
		return t.Format("Jan 2 '06") + " " + timeStr
	}
}
