package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type FileInfo struct {
	Path  string
	Name  string // file name without extension
	Mtime int64
	Size  int64
}

// ScanRoot walks root for plain-text chat exports (*.txt), newest first.
// A missing root yields no files and no error.
func ScanRoot(root string) ([]FileInfo, error) {
	var files []FileInfo
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil // skip unreadable dirs
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".txt") {
			return nil
		}
		files = append(files, FileInfo{
			Path:  path,
			Name:  strings.TrimSuffix(info.Name(), filepath.Ext(path)),
			Mtime: info.ModTime().Unix(),
			Size:  info.Size(),
		})
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Mtime > files[j].Mtime
	})
	return files, nil
}

// Resolve maps a transcript argument to a file. An existing path is used
// as is; otherwise arg is looked up under root by file name, with or
// without the .txt extension.
func Resolve(arg, root string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	files, err := ScanRoot(root)
	if err != nil {
		return "", err
	}
	for _, f := range files {
		if f.Name == arg || filepath.Base(f.Path) == arg {
			return f.Path, nil
		}
	}
	return "", &os.PathError{Op: "resolve", Path: arg, Err: os.ErrNotExist}
}
