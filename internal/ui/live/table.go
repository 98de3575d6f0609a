package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "Structure", Width: 14},
		{Title: "Folder", Width: 32},
		{Title: "Status", Width: 12},
	}
}

func rowsForState(state State) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{row.Key, row.Folder, row.Status})
	}
	return rows
}

func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Header = styles.Header.UnsetForeground()
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("33")).Bold(true)
	styles.Selected = lipgloss.NewStyle()
	return styles
}
