package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"lineup-advisor-mcp/internal/config"
	"lineup-advisor-mcp/internal/projcache"
)

type ServerConfig struct {
	RawRoot string
	Cache   *projcache.Cache
	Redis   *projcache.RedisCache
	Log     zerolog.Logger
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	var (
		addr        = flag.String("addr", ":8080", "HTTP listen address")
		mcpPath     = flag.String("path", "/mcp", "HTTP path for MCP endpoint")
		rawRoot     = flag.String("raw-root", "data/raw", "root directory for raw JSON snapshots")
		configPath  = flag.String("config", "league.yaml", "league configuration file")
		redisURL    = flag.String("redis-url", "", "optional Redis URL for a shared projection cache")
		requireAuth = flag.Bool("require-auth", true, "require API key auth via LINEUP_MCP_API_KEY")
		authHeader  = flag.String("auth-header", "X-API-Key", "HTTP header to read API key from")
		debug       = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	league, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *configPath).Msg("invalid league config")
	}

	ttl := time.Duration(league.CacheTTLMinutes) * time.Minute
	cfg := ServerConfig{
		RawRoot: *rawRoot,
		Cache:   projcache.New(ttl),
		Log:     logger,
	}
	if *redisURL != "" {
		rc, err := projcache.NewRedis(*redisURL, ttl)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis connect failed")
		}
		defer rc.Close()
		cfg.Redis = rc
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "lineup-advisor-mcp",
			Version: "0.1.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 8)

	addTool(server, &registry, &mcp.Tool{
		Name:        "optimize_lineup",
		Description: "Best projected lineup for the roster under the league's slot rules",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args OptimizeLineupArgs) (*mcp.CallToolResult, any, error) {
		return toolReport(buildOptimizeLineup(cfg, league, args, time.Now()))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "lineup_recommendations",
		Description: "Start/sit moves with displaced players, cascades, and an ordered action plan",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LineupRecommendationsArgs) (*mcp.CallToolResult, any, error) {
		return toolReport(buildLineupRecommendations(cfg, league, args, time.Now()))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "waiver_upgrades",
		Description: "Free agents projected to beat the weakest starter at each slot",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args WaiverUpgradesArgs) (*mcp.CallToolResult, any, error) {
		return toolReport(buildWaiverUpgrades(cfg, league, args, time.Now()))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "empty_slot_fills",
		Description: "Ranked candidates for currently-empty starting slots",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args EmptySlotFillsArgs) (*mcp.CallToolResult, any, error) {
		return toolReport(buildEmptySlotFills(cfg, league, args, time.Now()))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "auto_subs",
		Description: "Contingency bench covers for questionable starters",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args AutoSubsArgs) (*mcp.CallToolResult, any, error) {
		return toolReport(buildAutoSubs(cfg, league, args, time.Now()))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "roster_health",
		Description: "Positional surplus/shortage report with trade and add/drop ideas",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args RosterHealthArgs) (*mcp.CallToolResult, any, error) {
		return toolReport(buildRosterHealth(cfg, league, args, time.Now()))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "lock_status",
		Description: "Which starters are locked by kickoff or game state right now",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LockStatusArgs) (*mcp.CallToolResult, any, error) {
		return toolReport(buildLockStatus(cfg, league, args, time.Now()))
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(os.Getenv("LINEUP_MCP_API_KEY"))
	if *requireAuth && apiKey == "" {
		logger.Fatal().Msg("LINEUP_MCP_API_KEY is required (set env var or run with --require-auth=false)")
	}

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(*authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	http.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	http.HandleFunc(*mcpPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	logger.Info().Str("addr", *addr).Str("path", *mcpPath).Msg("MCP HTTP server listening")
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

// toolReport marshals any build result, folding build errors into tool
// errors so the MCP client sees them inline.
func toolReport[T any](report T, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSONBytes(b), nil, nil
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
