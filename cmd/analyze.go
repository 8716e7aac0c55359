package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yeojunjie/tune-transformer/harmony"
	"github.com/yeojunjie/tune-transformer/model"
	"github.com/yeojunjie/tune-transformer/pitch"
	"github.com/yeojunjie/tune-transformer/render"
	"github.com/yeojunjie/tune-transformer/symbol"
	"github.com/yeojunjie/tune-transformer/util"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <chord symbol>",
	Short: "Shows what a chord symbol expands to",
	Long:  `Parses one chord symbol and prints its chord tones, derived scale and rendered pitches.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		printAnalysis(analyze(args[0]))
	},
}

func degreeTones(m model.PitchClassMap) []model.DegreeTone {
	tones := make([]model.DegreeTone, 0, len(m))
	for _, d := range util.SortedKeys(m) {
		tones = append(tones, model.DegreeTone{Degree: d, Alteration: m[d]})
	}
	return tones
}

// analyze runs the whole pipeline on one symbol. Shared by this
// command and the HTTP handler.
func analyze(text string) model.AnalyzeResponse {
	spec, leftover := symbol.Parse(text)
	chord := harmony.Expand(spec)
	scale := harmony.Scale(spec)

	r := render.New()
	pitches := r.AddBass(spec, r.Render(chord, spec))

	res := model.AnalyzeResponse{
		Symbol:     text,
		Leftover:   leftover,
		ChordTones: degreeTones(chord),
		ScaleTones: degreeTones(scale),
		Pitches:    pitches,
	}
	if len(pitches) > 0 {
		res.Bass = pitches[0]
	}
	return res
}

func alterationString(alt int) string {
	switch alt {
	case -2:
		return "bb"
	case -1:
		return "b"
	case 1:
		return "#"
	}
	return ""
}

func printAnalysis(res model.AnalyzeResponse) {
	if res.Leftover != "" {
		fmt.Printf("Warning: ignored unparseable text %q\n", res.Leftover)
	}
	fmt.Printf("chord tones:")
	for _, tone := range res.ChordTones {
		fmt.Printf(" %v%v", alterationString(tone.Alteration), tone.Degree)
	}
	fmt.Println()
	fmt.Printf("scale tones:")
	for _, tone := range res.ScaleTones {
		fmt.Printf(" %v%v", alterationString(tone.Alteration), tone.Degree)
	}
	fmt.Println()
	fmt.Printf("pitches:")
	for _, p := range res.Pitches {
		fmt.Printf(" %v(%v)", p, pitch.Name(pitch.Spell(p)))
	}
	fmt.Println()
}
