// 勤怠記録の永続化バックエンド。
// コレクション全体をひとつのドキュメントとして読み書きする。
package storage

import "context"

// Blob: 単一ドキュメントの読み書き。
// Load はドキュメント未作成（初回起動）のとき nil, nil を返す。
// Store は全置換で、成功するか元の内容が残るかのどちらかでなければならない。
type Blob interface {
	Load(ctx context.Context) ([]byte, error)
	Store(ctx context.Context, data []byte) error
}
