package cli

import (
	"github.com/spf13/cobra"

	"subtext/internal/config"
	"subtext/internal/extract"
	ffmpegbin "subtext/internal/ffmpeg"
	"subtext/internal/logging"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subtext <in_file>",
	Short: "Extract subtitle text from a media container",
	Long: `Subtext demuxes a media container, decodes its subtitle packets with a
text-subtitle decoder, and prints one line per decoded subtitle
rectangle to standard output:

  type: <int> text:<text>

The run is single-shot: the first fatal condition aborts it with a
diagnostic on standard error and a non-zero exit status.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// arguments are validated by now; runtime failures should
		// print the diagnostic alone, not the usage text
		cmd.SilenceUsage = true
		logger = logging.NewLogger(verbose)
	},
	RunE: runRoot,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "",
			"Path to a TOML config file naming the decoder and its options")
}

func runRoot(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	defer logger.Close()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	paths, err := ffmpegbin.Ensure()
	if err != nil {
		return err
	}

	logger.Debugw("starting extraction",
		"input", inputPath,
		"decoder", cfg.Decoder.Name,
		"ffprobe", paths.FFprobe,
	)

	pipeline := extract.New(cfg, cmd.OutOrStdout(), logger)
	return pipeline.Run(inputPath)
}
