package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tune-transformer",
	Short: "Retunes melodies to fit chord symbols",
	Long:  `Retunes melodic notes to fit the harmonic context given by jazz-style chord symbols.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
