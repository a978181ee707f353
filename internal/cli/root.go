package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"device-compare/internal/app"
	"device-compare/internal/client"
	"device-compare/internal/config"
	"device-compare/internal/interfaces"
	"device-compare/internal/schema"
	"device-compare/internal/service"
)

var (
	version = "dev"
	commit  = "unknown"
)

// ServiceFactory builds the comparison service used by compare and chat.
// The returned cleanup func is always non-nil.
type ServiceFactory func(ctx context.Context, opts *Options) (interfaces.ComparisonService, func(), error)

// Options holds the persistent flags shared by every command.
type Options struct {
	Verbose   bool
	ServerURL string
	Timeout   time.Duration

	newService ServiceFactory
}

// NewRootCommand builds the devicecompare command tree. A nil factory uses
// the in-process Gemini service, or the remote client when --server is set.
func NewRootCommand(factory ServiceFactory) *cobra.Command {
	opts := &Options{newService: factory}
	if opts.newService == nil {
		opts.newService = defaultService
	}

	rootCmd := &cobra.Command{
		Use:   "devicecompare",
		Short: "Compare two devices and ask follow-up questions",
		Long: `Ask Gemini for a side-by-side comparison of two devices, then keep
asking questions grounded in that comparison.

Quick Start:
  devicecompare compare "iPhone 15 Pro" "Pixel 8 Pro"
  devicecompare chat "iPhone 15 Pro" "Pixel 8 Pro"
  devicecompare serve`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "WARN"
			if opts.Verbose {
				level = "DEBUG"
			}
			app.SetupLogger(level, cmd.ErrOrStderr(), false)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&opts.ServerURL, "server", "", "Base URL of a running device-compare server (default: call Gemini directly)")
	rootCmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 90*time.Second, "Timeout for each request")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.AddCommand(
		newServeCommand(),
		newCompareCommand(opts),
		newChatCommand(opts),
	)
	return rootCmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signalContext()
	defer stop()

	rootCmd := NewRootCommand(nil)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func defaultService(ctx context.Context, opts *Options) (interfaces.ComparisonService, func(), error) {
	if opts.ServerURL != "" {
		slog.Debug("Using remote server", "url", opts.ServerURL)
		return client.New(opts.ServerURL, nil, opts.Timeout), func() {}, nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	outputSchema, err := schema.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load comparison schema: %w", err)
	}

	provider, err := app.NewProvider(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	cleanup := func() {
		if err := provider.Close(); err != nil {
			slog.Warn("Failed to close Gemini client", "error", err)
		}
	}

	slog.Debug("Using Gemini directly", "model", cfg.GeminiModel)
	return service.NewComparisonService(provider, outputSchema), cleanup, nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+err.Error()))
}

// requestContext bounds a single backend call by --timeout.
func (o *Options) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.Timeout)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
