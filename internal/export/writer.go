package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	publicationsSheet = "Publications"
	repositoriesSheet = "Repositories"
)

// WriteJSON writes v as indented JSON, creating parent directories
func WriteJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// WriteWorkbook writes one sheet per snapshot. A nil snapshot leaves its
// sheet with headers only.
func WriteWorkbook(path string, scholar *ScholarSnapshot, gh *GitHubSnapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", publicationsSheet); err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", publicationsSheet, err)
	}
	if _, err := f.NewSheet(repositoriesSheet); err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", repositoriesSheet, err)
	}

	rows := [][]interface{}{{"Title", "Authors", "Venue", "Year", "Citations", "URL"}}
	if scholar != nil {
		for _, p := range scholar.Publications {
			rows = append(rows, []interface{}{p.Title, p.Authors, p.Venue, p.Year, p.Citations, p.URL})
		}
	}
	if err := writeRows(f, publicationsSheet, rows); err != nil {
		return err
	}

	rows = [][]interface{}{{"Name", "Description", "Language", "Stars", "Forks", "Topics", "URL"}}
	if gh != nil {
		for _, r := range gh.Repositories {
			rows = append(rows, []interface{}{
				r.Name, r.Description, r.Language, r.Stars, r.Forks, strings.Join(r.Topics, ", "), r.HTMLURL,
			})
		}
	}
	if err := writeRows(f, repositoriesSheet, rows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
