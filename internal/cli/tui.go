package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/daygrid/pkg/calendar"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/layout"
	"github.com/matzehuels/daygrid/pkg/render/daygrid/styles"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

const (
	defaultViewRows = 12
	minViewRows     = 3
	// viewChrome is the number of terminal lines used around the list.
	viewChrome = 12
)

// viewCommand creates the view command, an interactive terminal preview.
func (c *CLI) viewCommand() *cobra.Command {
	var flags dayFlags

	cmd := &cobra.Command{
		Use:   "view [day-file|url]",
		Short: "Browse a day's layout in the terminal",
		Long: `Browse a day's layout in the terminal.

Visible events are listed in layout order next to a strip of the day's
columns. Move with ↑/↓ (or j/k) to see an event's column span and pixel
rectangle. Press q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := c.dayOptions(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			day, res, _, err := c.loadAndLayout(cmd.Context(), cfg.Cache, opts, flags.noCache)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newDayModel(day, res), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

// =============================================================================
// dayModel - Interactive day browser
// =============================================================================

// dayModel is the bubbletea model for browsing one laid-out day.
type dayModel struct {
	day    calendar.Day
	res    *layout.Result
	colors []string // per visible event
	cursor int
	offset int
	height int
}

func newDayModel(day calendar.Day, res *layout.Result) dayModel {
	palette := styles.Simple{}.Palette()
	colors := make([]string, len(res.EventIndex))
	for k, orig := range res.EventIndex {
		colors[k] = palette.EventFill(k)
		if c := day.Events[orig].Color; c != "" {
			colors[k] = c
		}
	}
	return dayModel{day: day, res: res, colors: colors, height: defaultViewRows}
}

func (m dayModel) Init() tea.Cmd {
	return nil
}

func (m dayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := len(m.res.EventIndex)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < n-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(n-1, 0)
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-viewChrome, minViewRows)
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	return m, nil
}

func (m dayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(dayHeading(m.day, m.res)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	n := len(m.res.EventIndex)
	if n == 0 {
		b.WriteString(listDimStyle.Render("  No events between " + windowLabel(m.res.Config)))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.offset+m.height, n)
	for k := m.offset; k < end; k++ {
		b.WriteString(m.row(k))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(detailBoxStyle.Render(m.detail(m.cursor)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, n)))
	return b.String()
}

// row renders the k-th visible event as "▸ 09:00-10:00 █·· Standup".
func (m dayModel) row(k int) string {
	ev := m.day.Events[m.res.EventIndex[k]]
	span := m.res.Spans[k]

	cursor := "  "
	style := listNormalStyle
	if k == m.cursor {
		cursor = "▸ "
		style = listSelectedStyle
	}

	strip := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.colors[k])).
		Render(columnBar(span.Start, span.End, m.res.ColumnCount))

	return cursor + listDimStyle.Render(ev.Range.String()) + " " + strip + " " + style.Render(ev.Title)
}

// detail describes the k-th visible event.
func (m dayModel) detail(k int) string {
	ev := m.day.Events[m.res.EventIndex[k]]
	span := m.res.Spans[k]
	r := m.res.Events[k]

	lines := []string{
		StyleValue.Bold(true).Render(ev.Title),
		fmt.Sprintf("time      %s (%d min)", ev.Range, ev.Range.Duration()),
		fmt.Sprintf("columns   %d–%d of %d", span.Start, span.End, m.res.ColumnCount),
		fmt.Sprintf("rect      (%d,%d) → (%d,%d)", r.Left, r.Top, r.Right, r.Bottom),
	}
	if ev.Location != "" {
		lines = append(lines, "location  "+ev.Location)
	}
	return strings.Join(lines, "\n")
}
