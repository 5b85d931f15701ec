package cmd

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/pianoforge/midipiece/midi"
	"github.com/pianoforge/midipiece/piece"
	"github.com/spf13/cobra"
)

var trimMode string
var trimNoShift bool
var trimOut string

func init() {
	trimCmd.Flags().StringVar(&trimMode, "mode", "standard", "slice mode: standard, by_end or index")
	trimCmd.Flags().BoolVar(&trimNoShift, "no-shift", false, "keep original timestamps instead of rebasing to 0")
	trimCmd.Flags().StringVar(&trimOut, "out", "", "output path (default: a generated .mid name)")
	rootCmd.AddCommand(trimCmd)
}

var trimCmd = &cobra.Command{
	Use:   "trim <file.mid> <start> <finish>",
	Short: "Slices a MIDI file and writes the result",
	Long:  `Slices a MIDI file between two bounds and writes the result as a new MIDI file`,
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		trim(args[0], args[1], args[2])
	},
}

func trim(path, startArg, finishArg string) {
	start, err := strconv.ParseFloat(startArg, 64)
	cobra.CheckErr(err)
	finish, err := strconv.ParseFloat(finishArg, 64)
	cobra.CheckErr(err)

	mode, err := piece.ParseSliceMode(trimMode)
	cobra.CheckErr(err)

	p, err := midi.Load(path)
	cobra.CheckErr(err)

	out, err := p.Trim(start, finish, mode, !trimNoShift)
	cobra.CheckErr(err)

	outPath := trimOut
	if outPath == "" {
		outPath = uuid.New().String() + ".mid"
	}
	cobra.CheckErr(midi.WriteFile(midi.Export(out, "piano"), outPath))
	fmt.Printf("wrote %v notes to %v\n", out.Size(), outPath)
}
