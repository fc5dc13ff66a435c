package media

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// Service: 打刻ページに表示する画像の一覧を返すだけの薄い層
type Service struct {
	dir string
}

func NewService(dir string) *Service { return &Service{dir: dir} }

// ListImages: メディアディレクトリ内の画像を /media/<name> のパスで返す。
// ディレクトリが無ければ作成して空リストを返す。
func (s *Service) ListImages() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(s.dir, 0o755); err != nil {
				return nil, fmt.Errorf("メディアディレクトリの作成に失敗: %w", err)
			}
			return []string{}, nil
		}
		return nil, fmt.Errorf("メディアディレクトリの読み込みに失敗: %w", err)
	}

	paths := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if imageExtensions[ext] {
			paths = append(paths, "/media/"+e.Name())
		}
	}
	sort.Strings(paths)
	return paths, nil
}
