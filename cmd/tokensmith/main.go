package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gnana997/tokensmith/catalogs"
	"github.com/gnana997/tokensmith/pkg/catalog"
	mcpserver "github.com/gnana997/tokensmith/pkg/mcp"
	"github.com/gnana997/tokensmith/pkg/mcplog"
	"github.com/gnana997/tokensmith/pkg/util"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "serve":
		if err := runServe(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "serve: %v\n", err)
			os.Exit(1)
		}
	case "inspect":
		if err := runInspect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("tokensmith %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// runServe loads a catalog and serves MCP over stdio until the client
// disconnects. When the catalog came from a file, edits to it are picked
// up live.
func runServe(args []string) error {
	var catalogFlag, logFile string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--catalog":
			if i+1 >= len(args) {
				return fmt.Errorf("--catalog requires a path")
			}
			i++
			catalogFlag = args[i]
		case "--log-file":
			if i+1 >= len(args) {
				return fmt.Errorf("--log-file requires a path")
			}
			i++
			logFile = args[i]
		default:
			return fmt.Errorf("unknown flag: %s", args[i])
		}
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("read project config: %w", err)
	}

	logger := util.NewLogger(util.DefaultLoggerConfig())

	catalogPath, qs, err := openCatalog(resolveCatalogPath(catalogFlag, cfg))
	if err != nil {
		return err
	}
	logger.Info("catalog loaded",
		"name", qs.Catalog.Name,
		"version", qs.Catalog.Version,
		"tokens", len(qs.Catalog.Tokens),
		"components", len(qs.Catalog.Components))

	if logFile == "" && cfg != nil {
		logFile = cfg.LogFile
	}
	toolLogger, err := mcplog.NewLogger(logFile)
	if err != nil {
		return fmt.Errorf("open tool log: %w", err)
	}
	if toolLogger != nil {
		defer toolLogger.Close()
	}

	srv := mcpserver.NewServer(qs, toolLogger)

	// The embedded catalog has no file to watch.
	if catalogPath != "" {
		w, err := catalog.NewWatcher(catalogPath, 200*time.Millisecond, logger, srv.SetQuery)
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()
	}

	return srv.ServeStdio()
}

// openCatalog loads the catalog at path, falling back to auto-discovery in
// the working directory and then to the embedded default. The returned path
// is "" when the embedded catalog was used.
func openCatalog(path string) (string, *catalog.QueryService, error) {
	if path != "" {
		qs, err := catalog.LoadAndQuery(path)
		if err != nil {
			return "", nil, err
		}
		return path, qs, nil
	}

	if found, err := catalog.DiscoverFirst("."); err == nil {
		qs, err := catalog.LoadAndQuery(found)
		if err != nil {
			return "", nil, err
		}
		return found, qs, nil
	}

	qs, err := catalog.LoadAndQueryBytes(catalogs.DefaultJSON)
	if err != nil {
		return "", nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return "", qs, nil
}

func printUsage() {
	fmt.Println("Usage: tokensmith <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve      Start the MCP server on stdio")
	fmt.Println("             --catalog <path>   catalog file (default: auto-discover, then built-in)")
	fmt.Println("             --log-file <path>  JSONL tool-call log")
	fmt.Println("  inspect    Print a token, component, or catalog summary")
	fmt.Println("             [--catalog <path>] [name]")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
}
