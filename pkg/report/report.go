// Package report renders scoring results for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dd0wney/cluso-surprise/pkg/scoring"
	"github.com/dd0wney/cluso-surprise/pkg/surprise"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	bestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Padding(0, 1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// Columns of the partition table, in order.
var Columns = []string{"Partition", "Communities", "F", "M", "n", "p", "Surprise", "Modularity"}

// Options control rendering.
type Options struct {
	Plain     bool // Tab-separated text without styling
	Precision int  // Digits after the decimal point for scores, default 6
}

func (o Options) precision() int {
	if o.Precision <= 0 {
		return 6
	}
	return o.Precision
}

// Rows formats scores as table cells. Failed candidates carry their error in
// the Surprise column.
func Rows(scores []scoring.PartitionScore, opts Options) [][]string {
	rows := make([][]string, 0, len(scores))
	for _, s := range scores {
		if s.Err != nil {
			rows = append(rows, []string{s.Name, "-", "-", "-", "-", "-", "error: " + s.Err.Error(), "-"})
			continue
		}
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(s.Communities),
			strconv.FormatInt(s.Stats.F, 10),
			strconv.FormatInt(s.Stats.M, 10),
			strconv.FormatInt(s.Stats.N, 10),
			strconv.FormatInt(s.Stats.P, 10),
			strconv.FormatFloat(s.Surprise(), 'f', opts.precision(), 64),
			strconv.FormatFloat(s.Modularity, 'f', opts.precision(), 64),
		})
	}
	return rows
}

// Run writes a scoring run as a table.
func Run(w io.Writer, title string, run *scoring.Run, opts Options) error {
	if opts.Plain {
		return plainTable(w, run.Scores, opts)
	}

	best, ok := run.Best()
	if !ok {
		best = -1
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))).
		Headers(Columns...).
		Rows(Rows(run.Scores, opts)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row < 0 || row >= len(run.Scores):
				return cellStyle
			case run.Scores[row].Err != nil:
				return errorStyle
			case row == best:
				return bestStyle
			default:
				return cellStyle
			}
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("run %s • %d partitions • %d failed • %s",
		run.ID, len(run.Scores), run.Failed(), run.Duration.Round(time.Microsecond))))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func plainTable(w io.Writer, scores []scoring.PartitionScore, opts Options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(Columns, "\t"))
	for _, row := range Rows(scores, opts) {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// Result writes a single evaluation. Plain output is the score alone.
func Result(w io.Writer, r *surprise.Result, opts Options) error {
	score := strconv.FormatFloat(r.Score, 'f', opts.precision(), 64)
	if opts.Plain {
		_, err := fmt.Fprintln(w, score)
		return err
	}

	content := fmt.Sprintf(`Surprise   %s
log10 P    %s
State      %s
Terms      %d
Last j     %d

F=%d  M=%d  n=%d  p=%d`,
		score,
		strconv.FormatFloat(r.LogTail, 'g', 12, 64),
		r.State,
		r.Iterations,
		r.LastJ,
		r.Stats.F, r.Stats.M, r.Stats.N, r.Stats.P,
	)
	if r.Degenerate {
		content += "\n" + helpStyle.Render("tail sum reached zero; score reported as 0")
	}

	_, err := fmt.Fprintln(w, statsBoxStyle.Render(content))
	return err
}
