package filesource

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/realitycheck/realitycheck/internal/domain"
)

// Describe builds a FileDescriptor for a file on disk. The MIME type is
// sniffed from content unless mimeOverride is non-empty.
func Describe(path, mimeOverride string) (domain.FileDescriptor, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.FileDescriptor{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return domain.FileDescriptor{}, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}

	mimeType := strings.TrimSpace(mimeOverride)
	if mimeType == "" {
		detected, err := mimetype.DetectFile(path)
		if err != nil {
			return domain.FileDescriptor{}, fmt.Errorf("detecting type of %s: %w", path, err)
		}
		mimeType = Sniffed(detected)
	}

	return domain.FileDescriptor{
		Name:     filepath.Base(path),
		MIMEType: mimeType,
		Size:     info.Size(),
		Source:   fileSource(path),
	}, nil
}

// DescribeBytes builds a FileDescriptor for in-memory content.
func DescribeBytes(name, mimeOverride string, data []byte) domain.FileDescriptor {
	mimeType := strings.TrimSpace(mimeOverride)
	if mimeType == "" {
		mimeType = Sniffed(mimetype.Detect(data))
	}
	return domain.FileDescriptor{
		Name:     name,
		MIMEType: mimeType,
		Size:     int64(len(data)),
		Source:   FromBytes(data),
	}
}

// Sniffed returns a detected type without parameters such as charset.
func Sniffed(m *mimetype.MIME) string {
	base, _, _ := strings.Cut(m.String(), ";")
	return strings.TrimSpace(base)
}

type fileSource string

func (p fileSource) Open() (io.ReadCloser, error) { return os.Open(string(p)) }

type byteSource []byte

func (b byteSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b)), nil
}

// FromBytes wraps in-memory content as a ContentSource.
func FromBytes(data []byte) domain.ContentSource { return byteSource(data) }

// Describer implements domain.FileDescriber with content sniffing.
type Describer struct{}

func (Describer) Describe(path string) (domain.FileDescriptor, error) { return Describe(path, "") }
