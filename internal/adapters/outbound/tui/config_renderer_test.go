package tui_test

import (
	"strings"
	"testing"

	"github.com/realitycheck/realitycheck/internal/adapters/outbound/tui"
	"github.com/realitycheck/realitycheck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderConfig_Defaults(t *testing.T) {
	output := tui.RenderConfig("built-in defaults", domain.DefaultConfig())
	assert.Contains(t, output, "built-in defaults")
	assert.Contains(t, output, "fake ≥ 70")
	assert.Contains(t, output, "medium ≥ 30")
	assert.Contains(t, output, "[5, 98]")
	assert.Contains(t, output, "midjourney")
	assert.Contains(t, output, "authentic")
	assert.Contains(t, output, "Image")
	assert.Contains(t, output, ".webp")
	assert.Contains(t, output, "size > 5242880")
	assert.Contains(t, output, "size < 102400")
	assert.Contains(t, output, "video/quicktime")
}

func TestRenderConfig_ExtensionsSorted(t *testing.T) {
	output := tui.RenderConfig("x", domain.DefaultConfig())
	assert.Less(t, strings.Index(output, ".jpeg"), strings.Index(output, ".png"))
	assert.Less(t, strings.Index(output, ".png"), strings.Index(output, ".webp"))
}

func TestRenderConfig_Unlimited(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.MaxFileSize = 0
	cfg.AllowedTypes = nil

	output := tui.RenderConfig("x", cfg)
	assert.Contains(t, output, "unlimited")
	assert.Contains(t, output, "any image/* or video/*")
}
