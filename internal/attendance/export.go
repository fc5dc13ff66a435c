package attendance

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const (
	sheetRecords = "勤怠記録"
	sheetStats   = "統計情報"
)

var recordHeader = []string{"日付", "時刻", "区分", "コメント", "タイムスタンプ"}

// ExportExcel: 記録と統計の2シート構成のxlsxを生成する。
// 途中で失敗した場合は何も返さない（部分出力なし）。
func ExportExcel(records []AttendanceRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := buildRecordsSheet(f, records); err != nil {
		return nil, ErrExport(fmt.Sprintf("記録シートの生成に失敗しました: %v", err))
	}
	if err := buildStatsSheet(f, records); err != nil {
		return nil, ErrExport(fmt.Sprintf("統計シートの生成に失敗しました: %v", err))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, ErrExport(fmt.Sprintf("ブックの書き出しに失敗しました: %v", err))
	}
	return buf.Bytes(), nil
}

func buildRecordsSheet(f *excelize.File, records []AttendanceRecord) error {
	// 既定の Sheet1 を記録シートに改名
	if err := f.SetSheetName("Sheet1", sheetRecords); err != nil {
		return err
	}

	widths := []float64{12, 10, 12, 24, 26}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetRecords, col, col, w); err != nil {
			return err
		}
	}

	if err := writeRow(f, sheetRecords, 1, toAnys(recordHeader)); err != nil {
		return err
	}
	for i, r := range records {
		ts := parseTimestamp(r.Timestamp)
		row := []any{FormatDate(ts), FormatTime(ts), string(r.Type), r.Comment, r.Timestamp}
		if err := writeRow(f, sheetRecords, i+2, row); err != nil {
			return err
		}
	}

	return styleHeader(f, sheetRecords, len(recordHeader))
}

func buildStatsSheet(f *excelize.File, records []AttendanceRecord) error {
	if _, err := f.NewSheet(sheetStats); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetStats, "A", "A", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetStats, "B", "B", 10); err != nil {
		return err
	}

	if err := writeRow(f, sheetStats, 1, []any{"項目", "値"}); err != nil {
		return err
	}
	for i, row := range StatRows(records) {
		if err := writeRow(f, sheetStats, i+2, []any{row.Label, row.Value}); err != nil {
			return err
		}
	}

	return styleHeader(f, sheetStats, 2)
}

// styleHeader: ヘッダー行を太字 + 灰色背景に
func styleHeader(f *excelize.File, sheet string, cols int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last+"1", style)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toAnys(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// ExportCSV: 記録シート相当をShift_JIS(cp932)のCSVで生成する。
// 旧来のExcel環境へそのまま取り込むための形式。
func ExportCSV(records []AttendanceRecord) ([]byte, error) {
	var b bytes.Buffer
	enc := japanese.ShiftJIS.NewEncoder()
	w := csv.NewWriter(transform.NewWriter(&b, enc))

	if err := w.Write(recordHeader); err != nil {
		return nil, ErrExport(fmt.Sprintf("CSVの書き出しに失敗しました: %v", err))
	}
	for _, r := range records {
		ts := parseTimestamp(r.Timestamp)
		rec := []string{FormatDate(ts), FormatTime(ts), string(r.Type), r.Comment, r.Timestamp}
		if err := w.Write(rec); err != nil {
			return nil, ErrExport(fmt.Sprintf("CSVの書き出しに失敗しました: %v", err))
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, ErrExport(fmt.Sprintf("CSVの書き出しに失敗しました: %v", err))
	}
	return b.Bytes(), nil
}
