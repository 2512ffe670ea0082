package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage writes uploaded files under a root directory and hands back the
// opaque relative path that gets persisted on the product row.
type Storage struct {
	root    string
	urlPath string
}

func NewStorage(root, urlPath string) *Storage {
	return &Storage{
		root:    root,
		urlPath: strings.Trim(urlPath, "/"),
	}
}

// Root returns the directory uploads are written to.
func (s *Storage) Root() string {
	return s.root
}

// URLPath returns the path prefix the server exposes uploads under.
func (s *Storage) URLPath() string {
	return "/" + s.urlPath
}

// SaveProductImage stores the file under products/ with a generated name so
// uploads can never collide or traverse outside the media root.
func (s *Storage) SaveProductImage(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := strings.ReplaceAll(uuid.New().String(), "-", "") + ext

	dir := filepath.Join(s.root, "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return s.urlPath + "/products/" + name, nil
}

// Remove deletes a previously stored file. Missing files are not an error,
// a replaced image may already be gone.
func (s *Storage) Remove(storedPath string) error {
	rel := strings.TrimPrefix(storedPath, s.urlPath+"/")
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || strings.Contains(rel, "..") {
		return nil
	}

	err := os.Remove(filepath.Join(s.root, rel))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
