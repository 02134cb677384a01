package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// recip is a scratch tool for poking at the reciprocals behind fast modular
// multiplication and division by a constant. It has been kept with the
// repository in case it comes in handy, but it is not meant for anything
// serious.

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:           "recip",
	Short:         "Reciprocal finder",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}
		if debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		return nil
	}
	rootCmd.AddCommand(barrettCmd, magicCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("recip failed")
	}
}
