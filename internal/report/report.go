package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/studworks/brixel/internal/chroma"
	"github.com/studworks/brixel/internal/palette"
)

// Row is one palette color with its rendered stud count.
type Row struct {
	ID    int    `json:"id"`
	Hex   string `json:"hex"`
	Count int    `json:"count"`
	Name  string `json:"name"`
}

// Rows flattens quantizer usage into report rows, preserving the usage
// order (count descending, palette order on ties).
func Rows(usage []palette.Usage) []Row {
	rows := make([]Row, 0, len(usage))
	for _, u := range usage {
		rows = append(rows, Row{
			ID:    u.ID,
			Hex:   u.Color.Hex(),
			Count: u.Count,
			Name:  u.Name,
		})
	}
	return rows
}

// WriteText writes one tab-separated line per row: catalog id, hex code,
// stud count, display name.
func WriteText(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", r.ID, r.Hex, r.Count, r.Name); err != nil {
			return fmt.Errorf("report: write text: %w", err)
		}
	}
	return nil
}

// WriteJSON writes the rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("report: write json: %w", err)
	}
	return nil
}

// WriteTerminal writes the rows as an aligned table with a color swatch
// per line. Styling degrades to plain text on terminals without color
// support.
func WriteTerminal(w io.Writer, rows []Row) error {
	idWidth, countWidth, nameWidth := 2, 4, 4
	for _, r := range rows {
		if n := len(strconv.Itoa(r.ID)); n > idWidth {
			idWidth = n
		}
		if n := len(strconv.Itoa(r.Count)); n > countWidth {
			countWidth = n
		}
		if n := len(r.Name); n > nameWidth {
			nameWidth = n
		}
	}

	header := lipgloss.NewStyle().Bold(true)
	if _, err := fmt.Fprintf(w, "   %s\n", header.Render(fmt.Sprintf(
		"%*s  %-7s  %*s  %-*s", idWidth, "id", "hex", countWidth, "uses", nameWidth, "name"))); err != nil {
		return fmt.Errorf("report: write terminal: %w", err)
	}

	for _, r := range rows {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(r.Hex)).Render("  ")
		line := fmt.Sprintf("%s %*d  %-7s  %*d  %-*s", swatch, idWidth, r.ID, r.Hex, countWidth, r.Count, nameWidth, r.Name)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("report: write terminal: %w", err)
		}
	}
	return nil
}

// WriteColorList writes distinct source colors one per line as 8-digit
// hex, alpha included.
func WriteColorList(w io.Writer, colors []chroma.Color) error {
	for _, c := range colors {
		if _, err := fmt.Fprintln(w, c.HexAlpha()); err != nil {
			return fmt.Errorf("report: write color list: %w", err)
		}
	}
	return nil
}
