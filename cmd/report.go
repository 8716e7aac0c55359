package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yeojunjie/tune-transformer/midiscore"
	"github.com/yeojunjie/tune-transformer/snap"
	"github.com/yeojunjie/tune-transformer/symbol"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <file.mid>",
	Short: "Reports on a midi file's harmony",
	Long:  `Lists a midi file's chord-symbol markers and what each one governs, without retuning anything.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		report(args[0])
	},
}

func report(path string) {
	sc, err := midiscore.Load(path)
	if err != nil {
		panic("Could not load midi file: " + err.Error())
	}

	var numSymbols, numUnparsed, governedNotes, orphanNotes int
	governed := false
	for _, seg := range sc.Segments() {
		for _, text := range seg.ChordSymbols() {
			if snap.IsNoChord(text) {
				governed = false
				fmt.Printf("%6d  (no chord)\n", seg.Position())
				continue
			}
			numSymbols++
			governed = true
			_, leftover := symbol.Parse(text)
			if leftover != "" {
				numUnparsed++
				fmt.Printf("%6d  %v  (ignored %q)\n", seg.Position(), text, leftover)
			} else {
				fmt.Printf("%6d  %v\n", seg.Position(), text)
			}
		}
		if governed {
			governedNotes += len(seg.Notes())
		} else {
			orphanNotes += len(seg.Notes())
		}
	}

	fmt.Printf("chord symbols: %v\n", numSymbols)
	fmt.Printf("symbols with unparseable text: %v\n", numUnparsed)
	fmt.Printf("notes under a chord: %v\n", governedNotes)
	fmt.Printf("notes under no chord: %v\n", orphanNotes)
}
