// Command strokeviz draws steno strokes as ASCII key diagrams.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/strokeviz/internal/config"
	"github.com/katalvlaran/strokeviz/stroke"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	verbose    bool
	trigger    string
	forceFull  bool
	forceInit  bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "strokeviz",
	Short: "Draw steno strokes as ASCII key diagrams",
	Long: `strokeviz renders chorded-keyboard strokes (e.g. KPWR-FPL) as small
diagrams of the engaged keys on the left hand, the right hand and the star.

Strokes are read from the arguments, or one per line from stdin.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if trigger != "" {
			cfg.Trigger = trigger
		}
		if forceFull {
			cfg.AlwaysFullForm = true
		}

		level, err := cfg.Level()
		if err != nil {
			return err
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// renderCmd draws each stroke
var renderCmd = &cobra.Command{
	Use:   "render [STROKE...]",
	Short: "Draw the diagram of each stroke",
	RunE:  runRender,
}

// explainCmd prints the form and keys of each stroke
var explainCmd = &cobra.Command{
	Use:   "explain [STROKE...]",
	Short: "Print the diagram form and engaged keys of each stroke",
	RunE:  runExplain,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the strokeviz configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to --config",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "strokeviz.yaml", "Configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&trigger, "trigger", "", "Override the trigger stroke")
	rootCmd.PersistentFlags().BoolVar(&forceFull, "full", false, "Always draw the three-row diagram")

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// errMissed is returned when at least one stroke could not be drawn.
var errMissed = errors.New("some strokes were not found")

func runRender(cmd *cobra.Command, args []string) error {
	tr := stroke.New(cfg.Options()...)
	out := cmd.OutOrStdout()

	return eachStroke(cmd.InOrStdin(), args, func(s string) error {
		diagram, err := tr.Lookup([]string{tr.Trigger(), s})
		if err != nil {
			return err
		}
		logger.Debug("Rendered stroke", zap.String("stroke", s), zap.Int("bytes", len(diagram)))
		_, err = fmt.Fprintf(out, "%s%s", s, diagram)
		return err
	})
}

func runExplain(cmd *cobra.Command, args []string) error {
	tr := stroke.New(cfg.Options()...)
	out := cmd.OutOrStdout()

	return eachStroke(cmd.InOrStdin(), args, func(s string) error {
		form, parts, err := tr.Explain([]string{tr.Trigger(), s})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\t%s\t%s\n", s, form, strings.Join(parts.Keys(), " "))
		return err
	})
}

// eachStroke applies fn to args, or to stdin lines when args is empty.
// Misses are logged and counted; other errors abort.
func eachStroke(in io.Reader, args []string, fn func(string) error) error {
	missed := 0
	handle := func(s string) error {
		err := fn(s)
		if errors.Is(err, stroke.ErrNotFound) {
			logger.Warn("Stroke not found", zap.String("stroke", s))
			missed++
			return nil
		}
		return err
	}

	if len(args) > 0 {
		for _, s := range args {
			if err := handle(s); err != nil {
				return err
			}
		}
	} else {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			s := strings.TrimSpace(scanner.Text())
			if s == "" {
				continue
			}
			if err := handle(s); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read strokes: %w", err)
		}
	}

	if missed > 0 {
		return fmt.Errorf("%w: %d", errMissed, missed)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil && !forceInit {
		return fmt.Errorf("%s already exists (use --force)", configPath)
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}
	logger.Info("Wrote configuration", zap.String("path", configPath))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
	return nil
}
