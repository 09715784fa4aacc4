// =============================================================================
// MAVLink Dialect Converter - XLSX Report
// =============================================================================
//
// Renders a human-facing summary workbook for a dialect: one sheet listing
// message definitions, one listing enums. Useful for reviewing what an
// upstream dialect change actually touched without reading XML.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mavforge/dialect2json/internal/dialect"
)

const (
	messagesSheet = "Messages"
	enumsSheet    = "Enums"
)

// Write renders the workbook for a dialect and saves it to path.
func Write(d *dialect.Dialect, path string) error {
	f, err := Build(d)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Build renders the workbook in memory.
func Build(d *dialect.Dialect) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeMessagesSheet(f, d); err != nil {
		return nil, err
	}
	if err := writeEnumsSheet(f, d); err != nil {
		return nil, err
	}

	// Drop the default sheet and land on the messages listing.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}
	idx, err := f.GetSheetIndex(messagesSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	return f, nil
}

func writeMessagesSheet(f *excelize.File, d *dialect.Dialect) error {
	if _, err := f.NewSheet(messagesSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	header := []interface{}{"ID", "Name", "Fields", "Description"}
	if err := f.SetSheetRow(messagesSheet, "A1", &header); err != nil {
		return err
	}

	for i, m := range d.Messages {
		row := []interface{}{m.ID, m.Name, len(m.Fields), deref(m.Description)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(messagesSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(messagesSheet, "B", "B", 40)
}

func writeEnumsSheet(f *excelize.File, d *dialect.Dialect) error {
	if _, err := f.NewSheet(enumsSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	header := []interface{}{"Name", "Entries", "Description"}
	if err := f.SetSheetRow(enumsSheet, "A1", &header); err != nil {
		return err
	}

	for i, e := range d.Enums {
		row := []interface{}{e.Name, len(e.Entries), deref(e.Description)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(enumsSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(enumsSheet, "A", "A", 40)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
