package media

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestListImages_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "media")
	svc := NewService(dir)

	paths, err := svc.ListImages()
	if err != nil {
		t.Fatalf("ListImages() error = %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("ListImages() = %v, want empty", paths)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("media dir not created: %v", err)
	}
}

func TestListImages_FiltersNonImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.JPG", "notes.txt", "c.webp", "d.svg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	svc := NewService(dir)
	got, err := svc.ListImages()
	if err != nil {
		t.Fatalf("ListImages() error = %v", err)
	}
	want := []string{"/media/a.png", "/media/b.JPG", "/media/c.webp", "/media/d.svg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListImages() = %v, want %v", got, want)
	}
}
