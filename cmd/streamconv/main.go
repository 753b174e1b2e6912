// Command streamconv simulates the streaming 3x3 convolution accelerator.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/streamconv/config"
	"github.com/sarchlab/streamconv/conv"
	"github.com/sarchlab/streamconv/core"
)

var (
	configPath string
	logLevel   string

	width, height int
	kernelName    string
	shift         uint
)

var rootCmd = &cobra.Command{
	Use:   "streamconv",
	Short: "Cycle-level simulator of a streaming 3x3 convolution pipeline",
	Long: `streamconv feeds 8-bit grayscale frames, one pixel per cycle, through a
line-buffered 3x3 convolution datapath and checks the output stream
against a reference convolution.

The pipeline is read from --config (YAML) and can be overridden with
--width, --height, --kernel and --shift.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLevel(logLevel)
		if err != nil {
			return err
		}

		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Pipeline configuration file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: trace, debug, info, warn or error")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "Frame width in pixels")
	rootCmd.PersistentFlags().IntVar(&height, "height", 0, "Frame height in pixels")
	rootCmd.PersistentFlags().StringVarP(&kernelName, "kernel", "k", "", "Kernel name: "+strings.Join(kernelNames(), ", "))
	rootCmd.PersistentFlags().UintVar(&shift, "shift", 0, "Right shift applied to the accumulator")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(traceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func parseLevel(s string) (slog.Level, error) {
	if strings.EqualFold(s, "trace") {
		return core.LevelTrace, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}

	return level, nil
}

// loadPipeline reads the configuration file, if any, applies the flags the
// user set on top of it and validates the result.
func loadPipeline(cmd *cobra.Command) (*config.File, conv.Config, error) {
	f := config.Default()
	if configPath != "" {
		var err error
		if f, err = config.LoadFile(configPath); err != nil {
			return nil, conv.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		f.Width = width
	}
	if flags.Changed("height") {
		f.Height = height
	}
	if flags.Changed("shift") {
		f.Shift = shift
	}
	if flags.Changed("kernel") {
		name := strings.ToLower(kernelName)
		k, ok := conv.NamedKernels[name]
		if !ok {
			return nil, conv.Config{}, fmt.Errorf("unknown kernel %q: %w", kernelName, config.ErrBadKernel)
		}
		f.Kernel = config.KernelSpec{Name: name, Kernel: k}
	}

	cfg, err := f.Pipeline()
	if err != nil {
		return nil, conv.Config{}, err
	}

	return f, cfg, nil
}

func kernelNames() []string {
	names := make([]string, 0, len(conv.NamedKernels))
	for name := range conv.NamedKernels {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
