package site

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// EmbeddedFilesDir returns the directory Word saves pictures and other
// embedded files into for the given HTML file: report.htm -> report_files.
func EmbeddedFilesDir(htmlPath string) string {
	base := filepath.Base(htmlPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(htmlPath), stem+"_files")
}

// copyEmbeddedFiles copies the input's embedded-files directory into
// outDir, replacing any previous copy. It returns the destination, or ""
// when the input has no embedded-files directory.
func copyEmbeddedFiles(htmlPath, outDir string) (string, error) {
	src := EmbeddedFilesDir(htmlPath)
	info, err := os.Stat(src)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("accessing embedded files: %w", err)
	}
	if !info.IsDir() {
		return "", nil
	}

	dst := filepath.Join(outDir, filepath.Base(src))
	if filepath.Clean(src) == filepath.Clean(dst) {
		return dst, nil
	}
	if err := os.RemoveAll(dst); err != nil {
		return "", fmt.Errorf("removing previous embedded files: %w", err)
	}
	if err := copyDir(src, dst); err != nil {
		return "", fmt.Errorf("copying embedded files: %w", err)
	}
	return dst, nil
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
