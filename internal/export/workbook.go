package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/RMahshie/rfmatch/internal/rf"
)

// ContentType is the MIME type of the generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SweepWorkbook renders a reflection sweep as an .xlsx workbook with a
// "Summary" sheet describing the load and a "Sweep" sheet with one row per sample.
// Values are stored in display units: GHz and ohms.
func SweepWorkbook(load rf.Load, z0, nominalHz float64, samples []rf.SweepSample) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summary := "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Parameter", "Value"},
		{"Frequency [GHz]", nominalHz / 1e9},
		{"R [Ω]", load.Resistance},
		{"X [Ω]", load.Reactance},
		{"Z0 [Ω]", z0},
		{"Points", len(samples)},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write summary: %w", err)
		}
	}

	sweep := "Sweep"
	if _, err := f.NewSheet(sweep); err != nil {
		return nil, fmt.Errorf("failed to create sweep sheet: %w", err)
	}
	if err := f.SetSheetRow(sweep, "A1", &[]interface{}{"No", "Frequency [GHz]", "|Γ|"}); err != nil {
		return nil, fmt.Errorf("failed to write sweep header: %w", err)
	}
	for i, s := range samples {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{i + 1, s.FrequencyHz / 1e9, s.GammaMagnitude}
		if err := f.SetSheetRow(sweep, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write sweep row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
