package cmd

import (
	"fmt"

	"github.com/pianoforge/midipiece/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Prints the note table of a MIDI file",
	Long:  `Prints the note table of a MIDI file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inspect(args[0])
	},
}

const inspectHeadSize = 10

func inspect(path string) {
	p, err := midi.Load(path)
	cobra.CheckErr(err)

	lo, hi := p.PitchSpan()
	fmt.Printf("notes: %v\n", p.Size())
	fmt.Printf("sustain events: %v\n", len(p.Sustain))
	fmt.Printf("duration: %.3fs\n", p.Duration())
	fmt.Printf("pitch span: %v-%v\n", lo, hi)

	fmt.Printf("%10s %10s %6s %9s %5s\n", "start", "end", "pitch", "velocity", "name")
	for i, n := range p.Notes {
		if i == inspectHeadSize {
			fmt.Printf("... %v more\n", p.Size()-inspectHeadSize)
			break
		}
		fmt.Printf("%10.3f %10.3f %6d %9d %5s\n", n.Start, n.End, n.Pitch, n.Velocity, n.Name())
	}
}
