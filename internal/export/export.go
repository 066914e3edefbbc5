// Package export serializes the session record for download and reads a
// previously downloaded record back in.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/Inphy521/Home-Economics/internal/models"
)

// Sentinels backfilled when an imported record predates the class and seat
// fields.
const (
	UnknownClass = "未知班級"
	UnknownSeat  = "未知座號"
)

// ErrBadFormat is surfaced to the user as the wrong-file-format message.
var ErrBadFormat = fmt.Errorf("檔案格式錯誤，請選擇正確的報告檔案。")

// Snapshot deep-copies the record so exports never alias live session state.
func Snapshot(record *models.Record) (*models.Record, error) {
	var snapshot models.Record
	if err := copier.CopyWithOption(&snapshot, record, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("failed to snapshot record: %w", err)
	}
	return &snapshot, nil
}

// MarshalRecord serializes a snapshot of the record as indented JSON.
func MarshalRecord(record *models.Record) ([]byte, error) {
	snapshot, err := Snapshot(record)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	return data, nil
}

// ImportRecord parses a downloaded record. Malformed input returns
// ErrBadFormat and no record; the caller keeps its current one. Missing
// class or seat fields are backfilled with the unknown sentinels.
func ImportRecord(data []byte) (*models.Record, error) {
	var record models.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrBadFormat
	}
	// A record without a student name is not one of ours.
	if record.BasicInfo.StudentName == "" {
		return nil, ErrBadFormat
	}

	if record.BasicInfo.ClassName == "" {
		record.BasicInfo.ClassName = UnknownClass
	}
	if record.BasicInfo.SeatNumber == "" {
		record.BasicInfo.SeatNumber = UnknownSeat
	}
	return &record, nil
}

// JSONFileName names the record download after the student.
func JSONFileName(record *models.Record) string {
	return fmt.Sprintf("膚質分析報告_%s.json", record.BasicInfo.StudentName)
}

// ReportFileName names the HTML report download. The final report carries a
// different prefix so students keep both files apart.
func ReportFileName(record *models.Record, final bool) string {
	if final {
		return fmt.Sprintf("最終學習報告_%s.html", record.BasicInfo.StudentName)
	}
	return fmt.Sprintf("膚質分析報告_%s.html", record.BasicInfo.StudentName)
}
