package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/realitycheck/realitycheck/internal/domain"
)

var skipDirs = map[string]bool{
	"vendor":        true,
	"node_modules":  true,
	".git":          true,
	".realitycheck": true,
}

// mediaExtensions are the file extensions worth sniffing. The analyzer still
// decides from content whether a file is accepted.
var mediaExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	".bmp": true, ".tif": true, ".tiff": true,
	".mp4": true, ".m4v": true, ".mov": true, ".webm": true,
}

// FileScanner implements domain.MediaScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

func (s *FileScanner) Scan(root string, excludeDirs ...string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	// Merge extra excludes with built-in skip dirs.
	extraSkip := make(map[string]bool, len(excludeDirs))
	for _, p := range excludeDirs {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	result := &domain.ScanResult{
		RootPath: absPath,
	}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != absPath && (skipDirs[d.Name()] || extraSkip[d.Name()]) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		relPath, _ := filepath.Rel(absPath, path)
		if mediaExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			result.MediaFiles = append(result.MediaFiles, relPath)
		} else {
			result.Skipped++
		}
		return nil
	})

	return result, err
}
