package commands

import (
	"planchart/internal/config"
	"planchart/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "planchart",
	Short: "planchart renders weekly asset planning charts into spreadsheets",
	Long: `Renders a calendar-aligned planning chart into an xlsx workbook: a header of
months and ISO week numbers, one row per asset coloured by its weekly status
(planned, ongoing, completed) and a legend sheet.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(verbose); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Str("timezone", cfg.Location.String()).
			Msg("planchart starting")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(newRenderCmd(), newPreviewCmd(), newNextWeekCmd())
}
