package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pianoforge/midipiece/midi"
	"github.com/pianoforge/midipiece/model"
	"github.com/pianoforge/midipiece/piece"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func writeSampleMidi(t *testing.T, path string, pitches []uint8) {
	t.Helper()
	var notes []model.Note
	for i, pitch := range pitches {
		notes = append(notes, model.Note{
			Start:    float64(i),
			End:      float64(i) + 1,
			Pitch:    pitch,
			Velocity: 80,
		})
	}
	p := piece.FromNotes(notes)
	assert.NoError(t, midi.WriteFile(midi.Export(p, "piano"), path))
}

func writeGarbage(path string) error {
	return os.WriteFile(path, []byte("not a midi file"), 0666)
}

func TestBuildAll(t *testing.T) {
	mediaDir := t.TempDir()
	outDir := t.TempDir()
	writeSampleMidi(t, filepath.Join(mediaDir, "a.mid"), []uint8{60, 62, 64})
	writeSampleMidi(t, filepath.Join(mediaDir, "b.mid"), []uint8{65, 67})

	entries := BuildAll(mediaDir, outDir, 0, zap.NewNop())

	assert := assert.New(t)
	assert.Len(entries, 2)
	assert.Equal(3, entries[0].NumNotes)
	assert.Equal(2, entries[1].NumNotes)

	manifest := ReadManifest(outDir)
	assert.Equal(entries, manifest)

	notes := ReadNotes(outDir, entries[0])
	assert.Len(notes, 3)
	assert.Equal(uint8(60), notes[0].Pitch)
}

func TestBuildAllSkipsBrokenFiles(t *testing.T) {
	mediaDir := t.TempDir()
	outDir := t.TempDir()
	writeSampleMidi(t, filepath.Join(mediaDir, "good.mid"), []uint8{60})
	assert.NoError(t, writeGarbage(filepath.Join(mediaDir, "bad.mid")))

	entries := BuildAll(mediaDir, outDir, 0, zap.NewNop())

	assert.Len(t, entries, 1)
}

func TestBuildAllHonorsMaxNum(t *testing.T) {
	mediaDir := t.TempDir()
	outDir := t.TempDir()
	writeSampleMidi(t, filepath.Join(mediaDir, "a.mid"), []uint8{60})
	writeSampleMidi(t, filepath.Join(mediaDir, "b.mid"), []uint8{62})
	writeSampleMidi(t, filepath.Join(mediaDir, "c.mid"), []uint8{64})

	entries := BuildAll(mediaDir, outDir, 2, zap.NewNop())

	assert.Len(t, entries, 2)
}
