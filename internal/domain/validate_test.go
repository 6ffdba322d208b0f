package domain_test

import (
	"testing"

	"github.com/realitycheck/realitycheck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCheckFile_Accepts(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.NoError(t, cfg.CheckFile(domain.FileDescriptor{Name: "a.png", MIMEType: "image/png", Size: 0}))
	assert.NoError(t, cfg.CheckFile(domain.FileDescriptor{Name: "b.mov", MIMEType: "video/quicktime", Size: 1024}))
}

func TestCheckFile_Rejects(t *testing.T) {
	cfg := domain.DefaultConfig()
	tests := []struct {
		name string
		file domain.FileDescriptor
	}{
		{"empty name", domain.FileDescriptor{Name: " ", MIMEType: "image/png"}},
		{"negative size", domain.FileDescriptor{Name: "a.png", MIMEType: "image/png", Size: -1}},
		{"audio", domain.FileDescriptor{Name: "a.mp3", MIMEType: "audio/mpeg"}},
		{"no subtype", domain.FileDescriptor{Name: "a", MIMEType: "image/"}},
		{"not allowed", domain.FileDescriptor{Name: "a.tiff", MIMEType: "image/tiff"}},
		{"too large", domain.FileDescriptor{Name: "a.mp4", MIMEType: "video/mp4", Size: 51 * 1024 * 1024}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, cfg.CheckFile(tt.file), domain.ErrInvalidInput)
		})
	}
}

func TestCheckFile_LimitsDisabled(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.AllowedTypes = nil
	cfg.MaxFileSize = 0
	assert.NoError(t, cfg.CheckFile(domain.FileDescriptor{Name: "a.tiff", MIMEType: "image/tiff", Size: 1 << 40}))
}
