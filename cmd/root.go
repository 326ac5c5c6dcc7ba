// Package cmd assembles the command line interface.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voyago/voyago/cmd/recommend"
	"github.com/voyago/voyago/cmd/serve"
	"github.com/voyago/voyago/internal/conf"
)

// RootCommand creates and returns the root command.
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "voyago",
		Short: "Voyago travel recommendation service",
	}

	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d",
		viper.GetBool("debug"), "Enable debug output")
	_ = viper.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		serve.Command(settings),
		recommend.Command(settings),
	)

	return rootCmd
}
