package attendance

import "time"

// 事業所は1拠点（日本）のみ。ホストのタイムゾーン設定に依存しないよう
// 固定オフセットで扱う。tzdata不要。
var locJST = time.FixedZone("JST", 9*60*60)

const (
	DateLayout      = "2006-01-02"
	dispDateLayout  = "2006/01/02"
	dispTimeLayout  = "15:04:05"
	dispStampLayout = "2006/01/02 15:04:05"
)

// NowDateKey: JSTでの今日の日付キー（YYYY-MM-DD）
func NowDateKey() string {
	return DateKeyOf(time.Now())
}

// DateKeyOf: 時刻をJSTの日付キーへ
func DateKeyOf(t time.Time) string {
	return t.In(locJST).Format(DateLayout)
}

// FormatDate: JSTでの表示用日付（YYYY/MM/DD）
func FormatDate(t time.Time) string {
	return t.In(locJST).Format(dispDateLayout)
}

// FormatTime: JSTでの表示用時刻（HH:MM:SS、ゼロ埋め）
func FormatTime(t time.Time) string {
	return t.In(locJST).Format(dispTimeLayout)
}

// FormatDateTime: JSTでの表示用日時
func FormatDateTime(t time.Time) string {
	return t.In(locJST).Format(dispStampLayout)
}

// parseTimestamp: 保存形式（RFC3339）のパース。ソート用。
// 不正値はゼロ時刻として先頭に寄せる（保存経路上は発生しない）。
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
