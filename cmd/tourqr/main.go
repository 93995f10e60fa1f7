package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"paepcke.de/tourqr"
	"paepcke.de/tourqr/internal/config"
	"paepcke.de/tourqr/internal/logging"
	"paepcke.de/tourqr/internal/server"
	"paepcke.de/tourqr/render"
)

var (
	gFlags struct {
		logLevel string
	}

	generateFlags struct {
		level      string
		layout     string
		format     string
		output     string
		margin     int
		minVersion int
	}

	serveFlags struct {
		configFile    string
		listenAddress string
	}

	rootCmd = &cobra.Command{
		Use:           "tourqr",
		Short:         "QR codes for virtual tour share links",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	generateCmd = &cobra.Command{
		Use:   "generate [text]",
		Short: "print a QR code for text or piped input",
		Args:  cobra.MaximumNArgs(1),
		RunE:  generateExec,
		Example: `# Print a link as a QR code:
tourqr generate https://example.com/projects/house/panoramas/kitchen

# Encode a file at level H as SVG:
cat /etc/ssh/key.pub | tourqr generate --level H --format svg --output key.svg`,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "serve QR codes over HTTP",
		Args:  cobra.NoArgs,
		RunE:  serveExec,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&gFlags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	f := generateCmd.Flags()
	f.StringVarP(&generateFlags.level, "level", "l", tourqr.DefaultLevel.String(), "error correction level (L, M, Q, H)")
	f.StringVar(&generateFlags.layout, "layout", tourqr.LayoutInterleaved.String(), "block layout (interleaved, sequential)")
	f.StringVarP(&generateFlags.format, "format", "f", "auto", "output format (auto, terminal, compact, svg)")
	f.StringVarP(&generateFlags.output, "output", "o", "", "output file, stdout when empty")
	f.IntVar(&generateFlags.margin, "margin", render.DefaultMargin, "quiet zone in modules")
	f.IntVar(&generateFlags.minVersion, "min-version", 0, "smallest symbol version to use (1-40)")

	serveCmd.Flags().StringVarP(&serveFlags.configFile, "config", "c", "", "YAML configuration file")
	serveCmd.Flags().StringVar(&serveFlags.listenAddress, "listen", "", "listen address, overrides the configuration")

	rootCmd.AddCommand(generateCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		out("[tourqr] [error] " + err.Error())
		os.Exit(1)
	}
}

func generateExec(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(gFlags.logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var payload string
	switch {
	case len(args) == 1:
		payload = args[0]
	case isPipe():
		if payload, err = getPipe(); err != nil {
			return errors.Wrap(err, "reading data from pipe")
		}
	default:
		return errors.New("no pipe or input parameter found, example: cat /etc/ssh/key | tourqr generate")
	}

	level, err := tourqr.ParseLevel(generateFlags.level)
	if err != nil {
		return err
	}
	layout, err := tourqr.ParseLayout(generateFlags.layout)
	if err != nil {
		return err
	}

	sym, err := tourqr.Generate([]byte(payload), tourqr.Options{
		Level:      level,
		Layout:     layout,
		MinVersion: generateFlags.minVersion,
	})
	if errors.Is(err, tourqr.ErrCapacityExceeded) {
		logger.Warn("payload too long, retry with a lower level or less data",
			zap.Int("bytes", len(payload)), zap.Stringer("level", level))
	}
	if err != nil {
		return errors.Wrap(err, "unable to encode input to qr code")
	}
	logger.Debug("generated symbol",
		zap.Int("version", sym.Version()),
		zap.Stringer("level", sym.Level()),
		zap.Int("mask", sym.Mask()))

	var text string
	switch generateFlags.format {
	case "auto":
		text = render.Text(sym, generateFlags.margin)
	case "terminal":
		text = render.Terminal(sym, generateFlags.margin)
	case "compact":
		text = render.TerminalCompact(sym, generateFlags.margin)
	case "svg":
		text = render.SVG(sym, render.SVGOptions{Margin: generateFlags.margin}) + "\n"
	default:
		return errors.Errorf("unknown format %q", generateFlags.format)
	}

	if generateFlags.output == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	return os.WriteFile(generateFlags.output, []byte(text), 0o644)
}

func serveExec(_ *cobra.Command, _ []string) error {
	cfg := config.Default()
	if serveFlags.configFile != "" {
		if err := config.LoadFile(&cfg, serveFlags.configFile); err != nil {
			return err
		}
	}
	if serveFlags.listenAddress != "" {
		cfg.ListenAddress = serveFlags.listenAddress
	}

	logLevel := cfg.Logging.Level
	if gFlags.logLevel != "" && rootCmd.PersistentFlags().Changed("log-level") {
		logLevel = gFlags.logLevel
	}
	logger, err := logging.New(logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting tourqr service",
		zap.String("baseURL", cfg.BaseURL),
		zap.String("level", cfg.QR.Level),
		zap.String("layout", cfg.QR.Layout))
	return srv.ListenAndServe(ctx)
}

//
// LITTLE GENERIC HELPER SECTION
//

// out ...
func out(msg string) {
	os.Stderr.Write([]byte(msg + "\n"))
}

// isPipe ...
func isPipe() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// getPipe ...
func getPipe() (string, error) {
	pipe, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(pipe), nil
}
