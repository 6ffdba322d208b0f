package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/realitycheck/realitycheck/internal/adapters/outbound/clock"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/config"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/decoder"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/eventbus"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/filesource"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/history"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/random"
	"github.com/realitycheck/realitycheck/internal/adapters/outbound/scanner"
	"github.com/realitycheck/realitycheck/internal/application"
	"github.com/realitycheck/realitycheck/internal/domain"
	"github.com/realitycheck/realitycheck/internal/domain/scoring"
)

// registerTools registers all RealityCheck MCP tools on the given server.
func registerTools(s *server.MCPServer, configDir string, logger *slog.Logger) {
	// 1. realitycheck_analyze
	s.AddTool(
		mcplib.NewTool("realitycheck_analyze",
			mcplib.WithDescription("Analyze an image or video file and return the authenticity report as JSON. Sends progress notifications when the request carries a progress token."),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path to the media file"),
			),
			mcplib.WithString("mime", mcplib.Description("MIME type override (default: sniffed from content)")),
			mcplib.WithNumber("seed", mcplib.Description("Random seed for a reproducible report")),
			mcplib.WithBoolean("instant", mcplib.Description("Skip the pacing delays between phases")),
		),
		handleAnalyze(configDir, logger),
	)

	// 2. realitycheck_scan
	s.AddTool(
		mcplib.NewTool("realitycheck_scan",
			mcplib.WithDescription("Analyze every image and video under a directory and return a summary as JSON"),
			mcplib.WithString("dir",
				mcplib.Required(),
				mcplib.Description("Directory to scan"),
			),
			mcplib.WithNumber("workers", mcplib.Description("Concurrent analyses (default: 4)")),
			mcplib.WithBoolean("instant", mcplib.Description("Skip the pacing delays between phases")),
		),
		handleScan(configDir, logger),
	)

	// 3. realitycheck_phases
	s.AddTool(
		mcplib.NewTool("realitycheck_phases",
			mcplib.WithDescription("Returns the progress phase sequence for a media kind"),
			mcplib.WithString("kind", mcplib.Description("Media kind: image or video (default: image)")),
		),
		handlePhases(),
	)

	// 4. realitycheck_history
	s.AddTool(
		mcplib.NewTool("realitycheck_history",
			mcplib.WithDescription("Returns the most recent completed analyses"),
			mcplib.WithNumber("limit", mcplib.Description("Maximum number of entries (default: 20)")),
		),
		handleHistory(configDir),
	)
}

func handleAnalyze(configDir string, logger *slog.Logger) server.ToolHandlerFunc {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := config.New().Load(configDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		file, err := filesource.Describe(path, request.GetString("mime", ""))
		if err != nil {
			return errorResult(fmt.Sprintf("reading %s: %v", path, err)), nil
		}

		newRand := random.Entropy()
		if _, ok := request.GetArguments()["seed"]; ok {
			newRand = random.Seeded(uint64(request.GetInt("seed", 0)))
		}
		var sleeper domain.Sleeper = clock.New()
		if request.GetBool("instant", false) {
			sleeper = clock.Instant{}
		}

		svc := application.NewAnalyzeService(cfg, decoder.New(), sleeper, newRand, eventbus.Factory(logger), logger)

		var observers []domain.ProgressObserver
		if o := progressNotifier(ctx, request, logger); o != nil {
			observers = append(observers, o)
		}

		analysis := svc.Start(ctx, file, observers...)
		report, err := analysis.Wait()
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}

		entry := domain.HistoryEntry{
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			AnalysisID: analysis.ID,
			Filename:   report.Metadata.Filename,
			Format:     report.Metadata.Format,
			Score:      report.Score,
			IsFake:     report.IsFake,
			Verdict:    domain.VerdictFor(report.Score, cfg),
		}
		if err := history.New().Save(configDir, entry); err != nil {
			logger.Warn("saving history", "error", err)
		}

		return jsonResult(report)
	}
}

// progressNotifier forwards phase events as MCP progress notifications when
// the client asked for them.
func progressNotifier(ctx context.Context, request mcplib.CallToolRequest, logger *slog.Logger) domain.ProgressObserver {
	if request.Params.Meta == nil || request.Params.Meta.ProgressToken == nil {
		return nil
	}
	srv := server.ServerFromContext(ctx)
	if srv == nil {
		return nil
	}
	token := request.Params.Meta.ProgressToken
	return func(e domain.ProgressEvent) {
		err := srv.SendNotificationToClient(ctx, "notifications/progress", map[string]any{
			"progressToken": token,
			"progress":      e.Percentage,
			"total":         100,
			"message":       e.Status,
		})
		if err != nil {
			logger.Debug("progress notification dropped", "error", err)
		}
	}
}

func handleScan(configDir string, logger *slog.Logger) server.ToolHandlerFunc {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dir, err := request.RequireString("dir")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := config.New().Load(configDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		var sleeper domain.Sleeper = clock.New()
		if request.GetBool("instant", false) {
			sleeper = clock.Instant{}
		}
		analyzer := application.NewAnalyzeService(cfg, decoder.New(), sleeper, random.Entropy(), eventbus.Factory(logger), logger)
		batch := application.NewBatchService(analyzer, scanner.New(), filesource.Describer{}, logger)

		report, err := batch.AnalyzeDir(ctx, dir, request.GetInt("workers", 4))
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handlePhases() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		kind, err := parseKind(request.GetString("kind", string(domain.MediaImage)))
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(scoring.Phases(kind))
	}
}

func handleHistory(configDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		entries, err := history.New().Load(configDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history: %v", err)), nil
		}
		if len(entries) == 0 {
			return textResult("No analysis history found."), nil
		}
		if limit := request.GetInt("limit", 20); limit > 0 && len(entries) > limit {
			entries = entries[len(entries)-limit:]
		}
		return jsonResult(entries)
	}
}

func parseKind(s string) (domain.MediaKind, error) {
	switch kind := domain.MediaKind(s); kind {
	case domain.MediaImage, domain.MediaVideo:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown media kind %q (valid: image, video)", s)
	}
}

// jsonResult marshals v to indented JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
