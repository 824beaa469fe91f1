package activity

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Activity"

var exportHeader = []string{"Date", "Type", "SubType", "Value", "Duration", "Notes"}

// Export arma un .xlsx con el historial filtrado (mismo criterio que List).
func (s *Service) Export(ctx context.Context, userID string, f Filter) ([]byte, error) {
	logs, err := s.List(ctx, userID, f)
	if err != nil {
		return nil, err
	}
	return s.workbook(logs)
}

func (s *Service) workbook(logs []Log) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, errors.Wrap(err, "new sheet")
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "delete default sheet")
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "header style")
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, errors.Wrap(err, "header row")
	}
	if err := f.SetCellStyle(exportSheet, "A1", "F1", headerStyle); err != nil {
		return nil, errors.Wrap(err, "header style")
	}
	if err := f.SetColWidth(exportSheet, "A", "A", 20); err != nil {
		return nil, errors.Wrap(err, "col width")
	}
	if err := f.SetColWidth(exportSheet, "F", "F", 40); err != nil {
		return nil, errors.Wrap(err, "col width")
	}

	for i, l := range logs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "cell name")
		}
		row := []any{
			l.Date.In(s.loc).Format("2006-01-02 15:04"),
			string(l.Type),
			l.SubType,
			l.Value,
			l.Duration,
			l.Notes,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "row %d", i+2)
		}
	}

	// header fijo
	if err := f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, errors.Wrap(err, "freeze panes")
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}
	return buf.Bytes(), nil
}
