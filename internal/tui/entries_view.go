package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-pass-vault/models"
)

const timeLayout = "2006-01-02 15:04"

// RenderEntries draws entries as a table. Secrets are never part of it.
func RenderEntries(entries []models.Entry) string {
	if len(entries) == 0 {
		return helpStyle.Render("The vault is empty.") + "\n"
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.ID, e.Title, e.Username, valueOrDash(e.URL), e.UpdatedAt.Local().Format(timeLayout)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "USERNAME", "URL", "UPDATED").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.String() + "\n"
}

// RenderEntry draws a single entry. The password is shown only when the
// caller passes one.
func RenderEntry(entry models.Entry, password string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(entry.Title))
	b.WriteString("\n\n")
	writeField(&b, "ID", entry.ID)
	writeField(&b, "Username", entry.Username)
	if password != "" {
		writeField(&b, "Password", password)
	}
	writeField(&b, "URL", valueOrDash(entry.URL))
	writeField(&b, "Notes", valueOrDash(entry.Notes))
	writeField(&b, "Created", entry.CreatedAt.Local().Format(timeLayout))
	writeField(&b, "Updated", entry.UpdatedAt.Local().Format(timeLayout))

	return boxStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

// RenderError formats an error for the terminal.
func RenderError(err error) string {
	return errorStyle.Render("error: "+HumanizeError(err)) + "\n"
}

func writeField(b *strings.Builder, name, value string) {
	b.WriteString(helpStyle.Render(name + ":"))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}

func valueOrDash(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "-"
	}
	return *v
}
