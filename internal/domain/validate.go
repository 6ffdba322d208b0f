package domain

import (
	"fmt"
	"strings"
)

// CheckFile rejects descriptors the analyzer cannot accept. Every returned
// error wraps ErrInvalidInput.
func (c AnalyzerConfig) CheckFile(f FileDescriptor) error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: file name is empty", ErrInvalidInput)
	}
	if f.Size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidInput, f.Size)
	}
	if f.Kind() == "" {
		return fmt.Errorf("%w: unsupported MIME type %q (want image/* or video/*)", ErrInvalidInput, f.MIMEType)
	}
	if _, sub, _ := strings.Cut(baseMIME(f.MIMEType), "/"); sub == "" {
		return fmt.Errorf("%w: MIME type %q has no subtype", ErrInvalidInput, f.MIMEType)
	}
	if !c.IsAllowedType(f.MIMEType) {
		return fmt.Errorf("%w: MIME type %q is not allowed (allowed: %s)",
			ErrInvalidInput, f.MIMEType, strings.Join(c.AllowedTypes, ", "))
	}
	if c.MaxFileSize > 0 && f.Size > c.MaxFileSize {
		return fmt.Errorf("%w: file size %d exceeds maximum %d", ErrInvalidInput, f.Size, c.MaxFileSize)
	}
	return nil
}
