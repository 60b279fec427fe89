package mcp

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/tokensmith/pkg/catalog"
	"github.com/gnana997/tokensmith/pkg/contrast"
	"github.com/gnana997/tokensmith/pkg/match"
	"github.com/gnana997/tokensmith/pkg/mcplog"
)

const serverVersion = "0.1.0-dev"

// suggestionCacheSize bounds the memoized suggest_migration responses.
// Agents tend to re-query the same handful of literals while migrating a
// file, so a small cache covers most repeats.
const suggestionCacheSize = 256

// Server implements the MCP server for tokensmith, exposing catalog query,
// matching, contrast, and theme tools.
type Server struct {
	mcpServer *server.MCPServer
	logger    *mcplog.Logger // may be nil when tool-call logging is disabled

	// mu guards the serving catalog: the watcher swaps in a fresh
	// QueryService on reload. The catalog itself is immutable; only the
	// reference rotates.
	mu    sync.RWMutex
	query *catalog.QueryService
	eval  *contrast.Evaluator

	// suggestions memoizes suggest_migration results keyed by
	// value+category. Purged on catalog reload. The matching core itself
	// stays cache-free.
	suggestions *lru.Cache[string, []match.Result]
}

// NewServer creates a new MCP server backed by the given QueryService and
// optional JSONL tool-call logger.
func NewServer(qs *catalog.QueryService, logger *mcplog.Logger) *Server {
	cache, err := lru.New[string, []match.Result](suggestionCacheSize)
	if err != nil {
		// Only possible with a non-positive size.
		panic(err)
	}

	s := &Server{
		logger:      logger,
		query:       qs,
		eval:        contrast.NewEvaluator(qs.Catalog, qs.Index),
		suggestions: cache,
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if logger != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("tokensmith", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: getTokenTool(), Handler: s.handleGetToken},
		server.ServerTool{Tool: listTokensTool(), Handler: s.handleListTokens},
		server.ServerTool{Tool: searchTokensTool(), Handler: s.handleSearchTokens},
		server.ServerTool{Tool: listComponentsTool(), Handler: s.handleListComponents},
		server.ServerTool{Tool: getComponentTool(), Handler: s.handleGetComponent},
		server.ServerTool{Tool: extractValuesTool(), Handler: s.handleExtractValues},
		server.ServerTool{Tool: validateStylesTool(), Handler: s.handleValidateStyles},
		server.ServerTool{Tool: suggestMigrationTool(), Handler: s.handleSuggestMigration},
		server.ServerTool{Tool: checkContrastTool(), Handler: s.handleCheckContrast},
		server.ServerTool{Tool: rankContrastTool(), Handler: s.handleRankContrast},
		server.ServerTool{Tool: generateThemeTool(), Handler: s.handleGenerateTheme},
	)

	return s
}

// SetQuery swaps the serving catalog, e.g. after a watcher reload.
// Memoized suggestions are dropped since they were scored against the old
// catalog.
func (s *Server) SetQuery(qs *catalog.QueryService) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = qs
	s.eval = contrast.NewEvaluator(qs.Catalog, qs.Index)
	s.suggestions.Purge()
}

// services returns the current QueryService and Evaluator pair.
func (s *Server) services() (*catalog.QueryService, *contrast.Evaluator) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query, s.eval
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
