package export

import (
	"fmt"
	"io"
	"strings"

	"quiz-dump/internal/domain"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Questions"

var headers = []interface{}{"ID", "Topic", "Question", "Options", "Correct", "Suggested", "Link", "Multiselect", "Expected"}

// WriteXLSX writes one row per question record to w as an .xlsx workbook.
func WriteXLSX(w io.Writer, questions []domain.Question) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}
	if err := sw.SetRow("A1", headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range questions {
		q := &questions[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			q.ID,
			q.Topic,
			sanitize(q.Question),
			sanitize(strings.Join(q.Options, "\n")),
			deref(q.CorrectAnswer),
			sanitize(deref(q.SuggestedAnswerText)),
			sanitize(deref(q.DiscussionLink)),
			q.IsMultiselect,
			q.ExpectedCount,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row for question %s: %w", q.ID, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// sanitize prefixes cells that spreadsheet apps would read as a formula.
func sanitize(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
