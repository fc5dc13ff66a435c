package attendance

import "strings"

// PunchType: 打刻区分。保存値は画面表示と同じ日本語ラベル。
type PunchType string

const (
	TypeClockIn    PunchType = "出勤"
	TypeClockOut   PunchType = "退勤"
	TypeBreakStart PunchType = "休憩開始"
	TypeBreakEnd   PunchType = "休憩終了"
	TypeComment    PunchType = "コメント"
)

// punchTypes: 全区分。統計・検証の走査順もこの順。
var punchTypes = []PunchType{TypeClockIn, TypeClockOut, TypeBreakStart, TypeBreakEnd, TypeComment}

// 旧API・英語クライアントからの別名。正規化は NormalizePunchType の1箇所だけで行う。
var typeAliases = map[string]PunchType{
	"clock_in":    TypeClockIn,
	"clock_out":   TypeClockOut,
	"break_start": TypeBreakStart,
	"break_end":   TypeBreakEnd,
	"afk":         TypeBreakStart,
	"back":        TypeBreakEnd,
	"comment":     TypeComment,
}

// isCanonicalType: 保存済み記録に許される正規値かどうか
func isCanonicalType(t PunchType) bool {
	for _, v := range punchTypes {
		if t == v {
			return true
		}
	}
	return false
}

// NormalizePunchType: 入力文字列を正規の区分へ。不明な値は ok=false。
func NormalizePunchType(s string) (PunchType, bool) {
	v := strings.TrimSpace(s)
	for _, t := range punchTypes {
		if v == string(t) {
			return t, true
		}
	}
	if t, ok := typeAliases[strings.ToLower(v)]; ok {
		return t, true
	}
	return "", false
}

// AttendanceRecord: 打刻またはコメント1件。
// Timestamp はUTCのRFC3339文字列。Date は Timestamp からJSTで導出した
// YYYY-MM-DD で、独立に設定してはならない。
type AttendanceRecord struct {
	ID        string    `json:"id"`
	Type      PunchType `json:"type"`
	Timestamp string    `json:"timestamp"`
	Date      string    `json:"date"`
	Comment   string    `json:"comment,omitempty"`
}
