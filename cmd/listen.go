package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/pianoforge/midipiece/midi"
	"github.com/pianoforge/midipiece/model"
	"github.com/pianoforge/midipiece/piece"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenOut string

func init() {
	listenCmd.Flags().StringVar(&listenOut, "out", "", "where to save the take (default: a generated .mid name)")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Records live MIDI input into a note table",
	Long:  `Records live MIDI input into a note table and saves the take as a MIDI file on exit`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

type pressedNote struct {
	start    float64
	velocity uint8
}

func listen() {
	defer gomidi.CloseDriver()

	in, err := gomidi.InPort(0)
	if err != nil {
		fmt.Println("no MIDI input port found")
		return
	}

	pressed := make(map[uint8]pressedNote)
	var notes []model.Note

	// events arrive per keypress; only print a snapshot once the player pauses
	debounced := debounce.New(500 * time.Millisecond)
	printSnapshot := func() {
		p := piece.New(notes, nil, model.Source{Kind: "live"})
		fmt.Printf("take so far: %v notes, %.1fs\n", p.Size(), p.Duration())
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		seconds := float64(timestampms) / 1000
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			pressed[key] = pressedNote{start: seconds, velocity: vel}
			debounced(printSnapshot)
		case msg.GetNoteEnd(&ch, &key):
			if on, ok := pressed[key]; ok {
				notes = append(notes, model.Note{
					Start:    on.start,
					End:      seconds,
					Pitch:    key,
					Velocity: on.velocity,
				})
				delete(pressed, key)
			}
			debounced(printSnapshot)
		default:
			// ignore
		}
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()

	if len(notes) == 0 {
		fmt.Println("nothing played, nothing saved")
		return
	}

	take := piece.New(notes, nil, model.Source{Kind: "live"})
	outPath := listenOut
	if outPath == "" {
		outPath = uuid.New().String() + ".mid"
	}
	cobra.CheckErr(midi.WriteFile(midi.Export(take, "live take"), outPath))
	fmt.Printf("saved %v notes to %v\n", take.Size(), outPath)
}
