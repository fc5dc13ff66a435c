package attendance

// 集計はすべて純関数。呼び出し側が取得済みのスナップショットを渡す。

// StatRow: 統計シートの1行（ラベル, 値）。出力順＝このスライスの順。
type StatRow struct {
	Label string
	Value int
}

// CountsByType: 区分別の総数
func CountsByType(records []AttendanceRecord) map[PunchType]int {
	counts := make(map[PunchType]int, len(punchTypes))
	for _, r := range records {
		counts[r.Type]++
	}
	return counts
}

// CountsByDate: 日付別・区分別の内訳。
// dates は初出順（レコードはタイムスタンプ昇順なので実質日付昇順）。
func CountsByDate(records []AttendanceRecord) (map[string]map[PunchType]int, []string) {
	byDate := make(map[string]map[PunchType]int)
	var dates []string
	for _, r := range records {
		m, ok := byDate[r.Date]
		if !ok {
			m = make(map[PunchType]int, len(punchTypes))
			byDate[r.Date] = m
			dates = append(dates, r.Date)
		}
		m[r.Type]++
	}
	return byDate, dates
}

// StatRows: 統計シートの行を出力順で組み立てる。
// 総記録数 → 打刻4区分の総数（コメントは含めない）→ 日付ごとの出勤/退勤。
// 日別内訳が出勤・退勤のみなのは元仕様どおり（休憩・コメントは全体数のみ）。
func StatRows(records []AttendanceRecord) []StatRow {
	totals := CountsByType(records)
	rows := []StatRow{
		{Label: "総記録数", Value: len(records)},
		{Label: "出勤回数", Value: totals[TypeClockIn]},
		{Label: "退勤回数", Value: totals[TypeClockOut]},
		{Label: "休憩開始回数", Value: totals[TypeBreakStart]},
		{Label: "休憩終了回数", Value: totals[TypeBreakEnd]},
	}

	byDate, dates := CountsByDate(records)
	for _, d := range dates {
		rows = append(rows,
			StatRow{Label: d + " 出勤", Value: byDate[d][TypeClockIn]},
			StatRow{Label: d + " 退勤", Value: byDate[d][TypeClockOut]},
		)
	}
	return rows
}
