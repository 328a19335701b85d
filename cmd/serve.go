package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/sahayak/internal/lessonplan"
	"github.com/abhisek/sahayak/internal/llm"
	"github.com/abhisek/sahayak/internal/platform/logger"
	"github.com/abhisek/sahayak/internal/render"
	"github.com/abhisek/sahayak/internal/server"
	"github.com/abhisek/sahayak/internal/store"
	"github.com/abhisek/sahayak/internal/studymaterial"
	"github.com/abhisek/sahayak/internal/worksheet"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides SAHAYAK_ADDR)")
}

// runServe opens the audit store, builds the model provider and agents,
// and serves until interrupted.
func runServe(cmd *cobra.Command) error {
	log, err := logger.New(os.Getenv("SAHAYAK_LOG_MODE"))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The audit store is best-effort: the service still runs without it.
	var eventRepo store.EventRepo
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		log.Warn("resolve database path failed, audit log disabled", "error", err)
	} else if st, err := store.Open(dbPath); err != nil {
		log.Warn("open audit store failed, audit log disabled", "db", dbPath, "error", err)
	} else {
		defer st.Close()
		eventRepo = st.EventRepo()
		log.Info("audit store ready", "db", dbPath)
	}

	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no model provider configured: %w", err)
		}
		llmCfg = discovered
	}

	provider, err := llm.NewProvider(ctx, llmCfg, eventRepo)
	if err != nil {
		return fmt.Errorf("build model provider: %w", err)
	}
	log.Info("model provider ready", "provider", llmCfg.Provider, "model", provider.ModelID())

	srvCfg := server.ConfigFromEnv()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		srvCfg.Addr = addr
	}
	srvCfg.ModelTimeout = llmCfg.Timeout

	handlers := server.NewHandlers(
		worksheet.NewService(provider, worksheet.DefaultConfig()),
		lessonplan.NewService(provider, lessonplan.DefaultConfig()),
		studymaterial.NewService(provider, studymaterial.DefaultConfig()),
		render.NewPDFRenderer(render.DefaultPDFConfig()),
		render.NewTextRenderer(),
		log,
		srvCfg.ModelTimeout,
	)

	return server.New(srvCfg, handlers, log).Run(ctx)
}
