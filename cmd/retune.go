package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/yeojunjie/tune-transformer/constants"
	"github.com/yeojunjie/tune-transformer/midiscore"
	"github.com/yeojunjie/tune-transformer/snap"
)

var retuneOutPath string

func init() {
	retuneCmd.Flags().StringVarP(&retuneOutPath, "out", "o", "", "output .mid path")
	rootCmd.AddCommand(retuneCmd)
}

var retuneCmd = &cobra.Command{
	Use:   "retune <file.mid>",
	Short: "Retunes a midi file",
	Long:  `Retunes every note of a midi file against its chord-symbol markers and writes the result.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		Retune(args[0], retuneOutPath)
	},
}

// Retune runs one full pass over a midi file and writes the result.
func Retune(inPath, outPath string) {
	sc, err := midiscore.Load(inPath)
	if err != nil {
		panic("Could not load midi file: " + err.Error())
	}

	stats := snap.Retune(sc)
	for _, w := range stats.Warnings {
		fmt.Printf("Warning: %v\n", w)
	}
	fmt.Printf("notes: %v, snapped: %v, passed through: %v\n",
		stats.Notes, stats.Snapped, stats.Passed)

	if outPath == "" {
		dir := constants.GetOutDir()
		if err := os.MkdirAll(dir, 0777); err != nil {
			panic("Could not create output dir: " + err.Error())
		}
		outPath = filepath.Join(dir, uuid.New().String()+".mid")
	}
	if err := midiscore.Save(sc, outPath); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("wrote %v\n", outPath)
}
