package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "midipiece",
	Short: "Piano MIDI performances as tabular note data",
	Long:  `Load, slice and export symbolic piano MIDI performances as note tables.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
