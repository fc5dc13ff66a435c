package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"kintai-backend/internal/platform/storage"
)

// Store: 勤怠コレクションの唯一の持ち主。
// バックエンドはコレクション全体を1ドキュメントとして読み書きするため、
// read-modify-write サイクル全体を mu で直列化する。
type Store struct {
	mu   sync.Mutex
	blob storage.Blob
}

func NewStore(blob storage.Blob) *Store {
	return &Store{blob: blob}
}

// Append: 1件追加して全体を書き戻す。
// 呼び出し側で検証済みでも、ディスク上の不変条件を守るためここで再検証する。
func (s *Store) Append(ctx context.Context, rec AttendanceRecord) error {
	if err := validateRecord(rec); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return err
	}
	records = append(records, rec)
	sortRecords(records)

	if err := s.save(ctx, records); err != nil {
		log.Printf("[ERROR] append: save failed (id=%s): %v", rec.ID, err)
		return err
	}
	return nil
}

// ListAll: 全件をタイムスタンプ昇順で返す。未作成時は空。
func (s *Store) ListAll(ctx context.Context) ([]AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	sortRecords(records)
	return records, nil
}

// ListByDate: 導出日付（JST）が一致する記録のみ。並び順は ListAll と同じ。
func (s *Store) ListByDate(ctx context.Context, dateKey string) ([]AttendanceRecord, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AttendanceRecord, 0, len(all))
	for _, r := range all {
		if r.Date == dateKey {
			out = append(out, r)
		}
	}
	return out, nil
}

// DeleteByID: 一致した記録を1件削除。見つからない場合は false（エラーではない）。
func (s *Store) DeleteByID(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	kept := records[:0]
	found := false
	for _, r := range records {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return false, nil
	}

	if err := s.save(ctx, kept); err != nil {
		log.Printf("[ERROR] delete: save failed (id=%s): %v", id, err)
		return false, err
	}
	return true, nil
}

// ===== persistence helpers =====

func (s *Store) load(ctx context.Context) ([]AttendanceRecord, error) {
	data, err := s.blob.Load(ctx)
	if err != nil {
		return nil, ErrStorage(fmt.Sprintf("記録の読み込みに失敗しました: %v", err))
	}
	if len(data) == 0 {
		return nil, nil
	}
	var records []AttendanceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, ErrStorage(fmt.Sprintf("記録データが壊れています: %v", err))
	}
	return records, nil
}

func (s *Store) save(ctx context.Context, records []AttendanceRecord) error {
	if records == nil {
		records = []AttendanceRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return ErrStorage(fmt.Sprintf("記録の変換に失敗しました: %v", err))
	}
	if err := s.blob.Store(ctx, data); err != nil {
		return ErrStorage(fmt.Sprintf("記録の保存に失敗しました: %v", err))
	}
	return nil
}

// sortRecords: タイムスタンプ昇順・同時刻は挿入順維持（安定ソート）
func sortRecords(records []AttendanceRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return parseTimestamp(records[i].Timestamp).Before(parseTimestamp(records[j].Timestamp))
	})
}

// validateRecord: 書き込み直前の再検証
func validateRecord(rec AttendanceRecord) error {
	if rec.ID == "" {
		return ErrInvalid("idが空です")
	}
	if !isCanonicalType(rec.Type) {
		return ErrInvalid("無効な打刻タイプです")
	}
	if rec.Type == TypeComment && strings.TrimSpace(rec.Comment) == "" {
		return ErrInvalid("コメントが入力されていません")
	}
	ts := parseTimestamp(rec.Timestamp)
	if ts.IsZero() {
		return ErrInvalid("タイムスタンプが不正です")
	}
	if rec.Date != DateKeyOf(ts) {
		return ErrInvalid("日付がタイムスタンプと一致しません")
	}
	return nil
}
