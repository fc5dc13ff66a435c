package attendance

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// ===== Error model (LIMSの各ドメインと同型) =====
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeStorageFailure  Code = "STORAGE_FAILURE"
	CodeExportFailure   Code = "EXPORT_FAILURE"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string      { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrInvalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrStorage(msg string) *APIError  { return &APIError{Code: CodeStorageFailure, Message: msg} }
func ErrExport(msg string) *APIError   { return &APIError{Code: CodeExportFailure, Message: msg} }
func ErrInternal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return 400
		case CodeNotFound:
			return 404
		default:
			return 500
		}
	}
	return 500
}

// ===== Service =====

type Service struct {
	store *Store
	now   func() time.Time // テストで固定するため
}

func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Punch: 打刻・コメントの受付。POST /attendance
func (s *Service) Punch(ctx context.Context, in PunchRequest) (PunchResponse, error) {
	t, ok := NormalizePunchType(in.Type)
	if !ok {
		if strings.TrimSpace(in.Type) == "" {
			return PunchResponse{}, ErrInvalid("打刻タイプが指定されていません")
		}
		return PunchResponse{}, ErrInvalid("無効な打刻タイプです")
	}

	comment := strings.TrimSpace(in.Comment)
	if t == TypeComment {
		if comment == "" {
			return PunchResponse{}, ErrInvalid("コメントが入力されていません")
		}
		if len([]rune(comment)) > MaxCommentLength {
			return PunchResponse{}, ErrInvalid(fmt.Sprintf("コメントは%d文字以内で入力してください", MaxCommentLength))
		}
	} else {
		// 打刻にはコメントを持たせない
		comment = ""
	}

	now := s.now().UTC()
	rec := AttendanceRecord{
		ID:        newRecordID(now),
		Type:      t,
		Timestamp: now.Format(storageTimeLayout),
		Date:      DateKeyOf(now),
		Comment:   comment,
	}

	if err := s.store.Append(ctx, rec); err != nil {
		return PunchResponse{}, err
	}

	return PunchResponse{
		Success:   true,
		Message:   fmt.Sprintf("%sを記録しました", t),
		Timestamp: FormatDateTime(now),
		Record:    rec,
	}, nil
}

// List: 全記録、または date 指定（YYYY-MM-DD / "today"）の絞り込み
func (s *Service) List(ctx context.Context, date string) ([]AttendanceRecord, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return s.listAll(ctx)
	}
	if strings.EqualFold(date, queryDateToday) {
		date = DateKeyOf(s.now())
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalid("dateはYYYY-MM-DD形式で指定してください")
	}
	records, err := s.store.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return nonNil(records), nil
}

// Today: JSTでの今日の記録のみ
func (s *Service) Today(ctx context.Context) ([]AttendanceRecord, error) {
	records, err := s.store.ListByDate(ctx, DateKeyOf(s.now()))
	if err != nil {
		return nil, err
	}
	return nonNil(records), nil
}

// Export: 全記録をxlsxに変換。ファイル名に当日（JST）を含める。
func (s *Service) Export(ctx context.Context) (ExportResult, error) {
	records, err := s.listAll(ctx)
	if err != nil {
		return ExportResult{}, err
	}
	content, err := ExportExcel(records)
	if err != nil {
		log.Printf("[ERROR] export: %v", err)
		return ExportResult{}, err
	}
	return ExportResult{
		Filename:    fmt.Sprintf("%s_%s.xlsx", exportBaseName, DateKeyOf(s.now())),
		ContentType: exportMIME,
		Content:     content,
	}, nil
}

// ExportCSV: 全記録をcp932のCSVに変換
func (s *Service) ExportCSV(ctx context.Context) (ExportResult, error) {
	records, err := s.listAll(ctx)
	if err != nil {
		return ExportResult{}, err
	}
	content, err := ExportCSV(records)
	if err != nil {
		log.Printf("[ERROR] export csv: %v", err)
		return ExportResult{}, err
	}
	return ExportResult{
		Filename:    fmt.Sprintf("%s_%s.csv", exportBaseName, DateKeyOf(s.now())),
		ContentType: exportCSVMIME,
		Content:     content,
	}, nil
}

// Delete: 管理者用の記録削除。未存在はエラーではなく deleted=false。
func (s *Service) Delete(ctx context.Context, id string) (DeleteResponse, error) {
	if strings.TrimSpace(id) == "" {
		return DeleteResponse{}, ErrInvalid("idが指定されていません")
	}
	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return DeleteResponse{}, err
	}
	if !deleted {
		log.Printf("[WARN] delete: record not found (id=%s)", id)
	}
	return DeleteResponse{Deleted: deleted, ID: id}, nil
}

func (s *Service) listAll(ctx context.Context) ([]AttendanceRecord, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(records), nil
}

// newRecordID: 時刻順に並ぶID（時刻 + ランダム）。lends系と同じ生成方法。
func newRecordID(t time.Time) string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// nonNil: JSONで null ではなく [] を返すため
func nonNil(records []AttendanceRecord) []AttendanceRecord {
	if records == nil {
		return []AttendanceRecord{}
	}
	return records
}
