package markdown

import (
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/rogersnm/shotdoc/internal/model"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

func PageTable(pages *model.PageSet) string {
	if pages == nil || pages.Len() == 0 {
		return "No pages found."
	}
	entries := pages.Entries()
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.ID, e.Page.Title, e.Page.Screenshot, strconv.Itoa(len(e.Page.Links))}
	}
	return renderTable([]string{"ID", "Title", "Screenshot", "Links"}, rows)
}

func StepTable(steps []model.Step) string {
	if len(steps) == 0 {
		return "No steps found."
	}
	rows := make([][]string, len(steps))
	for i, s := range steps {
		rows[i] = []string{strconv.Itoa(i + 1), s.Caption, s.Rect.String(), s.RelativeProcessed, fileSize(s.Processed)}
	}
	return renderTable([]string{"#", "Caption", "Rect", "Image", "Size"}, rows)
}

func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "missing"
	}
	return humanize.Bytes(uint64(info.Size()))
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}
