package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/pianoforge/midipiece/constants"
	"github.com/pianoforge/midipiece/db"
	"github.com/pianoforge/midipiece/midi"
	"github.com/pianoforge/midipiece/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var reportWithMetadata bool

func init() {
	reportCmd.Flags().BoolVar(&reportWithMetadata, "metadata", false, "look up composer/title metadata for the first files")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarizes every MIDI file in the media dir",
	Long:  `Summarizes every MIDI file in the media dir`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type mediaReport struct {
	numFiles      int64
	numFailed     int64
	numNotes      int64
	totalDuration float64
	pitchLo       uint8
	pitchHi       uint8
}

func analyzeMedia(logger *zap.Logger) mediaReport {
	report := mediaReport{pitchLo: 127}

	paths := util.GatherAllMidiPaths(constants.GetMediaDir(), 0)
	for _, path := range paths {
		p, err := midi.Load(path)
		if err != nil {
			logger.Warn("skipping midi file",
				zap.String("path", path),
				zap.Error(err))
			report.numFailed += 1
			continue
		}

		report.numFiles += 1
		report.numNotes += int64(p.Size())
		report.totalDuration += p.Duration()
		if p.Size() > 0 {
			lo, hi := p.PitchSpan()
			report.pitchLo = util.Min(report.pitchLo, lo)
			report.pitchHi = util.Max(report.pitchHi, hi)
		}
	}
	return report
}

func report() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	r := analyzeMedia(logger)
	fmt.Printf("files parsed: %v\n", r.numFiles)
	fmt.Printf("files skipped: %v\n", r.numFailed)
	fmt.Printf("total notes: %v\n", r.numNotes)
	fmt.Printf("total duration: %.1f minutes\n", r.totalDuration/60)
	fmt.Printf("pitch span: %v-%v\n", r.pitchLo, r.pitchHi)

	if reportWithMetadata {
		paths := util.GatherAllMidiPaths(constants.GetMediaDir(), 10)
		var names []string
		for _, p := range paths {
			names = append(names, filepath.Base(p))
		}
		for name, m := range db.GetPieceMetadatas(names) {
			fmt.Printf("%v: %v - %v (%v)\n", name, m.Composer, m.Title, m.Year)
		}
	}
}
