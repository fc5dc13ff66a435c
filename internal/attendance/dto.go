package attendance

const (
	MaxCommentLength = 200

	storageTimeLayout = "2006-01-02T15:04:05.000Z07:00"
	exportMIME        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportCSVMIME     = "text/csv; charset=Shift_JIS"
	exportBaseName    = "勤怠記録"
	queryDateToday    = "today"
)

// PunchRequest: POST /attendance
type PunchRequest struct {
	Type    string `json:"type" binding:"required"`
	Comment string `json:"comment,omitempty"`
}

// PunchResponse: 打刻結果。Timestamp はJSTの表示用文字列。
type PunchResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Timestamp string           `json:"timestamp"`
	Record    AttendanceRecord `json:"record"`
}

// DeleteResponse: DELETE /attendance/:id
type DeleteResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// ExportResult: ダウンロード1件分
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}
