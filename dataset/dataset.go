// Package dataset turns a directory of MIDI files into gob-encoded note
// tables plus a manifest that maps them back to their sources.
package dataset

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pianoforge/midipiece/file"
	"github.com/pianoforge/midipiece/midi"
	"github.com/pianoforge/midipiece/model"
	"github.com/pianoforge/midipiece/util"
	"go.uber.org/zap"
)

const ManifestName = "manifest.dat"

type ManifestEntry struct {
	FileNum  uint32
	Path     string
	DatFile  string
	NumNotes int
	Duration float64
}

// BuildAll loads every MIDI file under mediaDir (up to maxNum, 0 for all)
// and writes one note-table binary per file into outDir, followed by the
// manifest. Files that fail to parse are logged and skipped.
func BuildAll(mediaDir, outDir string, maxNum int, logger *zap.Logger) []ManifestEntry {
	paths := util.GatherAllMidiPaths(mediaDir, maxNum)
	fileNumMap := file.CreateFileNumMap(paths)

	var entries []ManifestEntry
	nums := util.GetKeysSorted(fileNumMap)
	for i, num := range nums {
		path := fileNumMap[num]
		logger.Info("processing midi file",
			zap.Int("current", i+1),
			zap.Int("total", len(nums)),
			zap.String("path", path))

		p, err := midi.Load(path)
		if err != nil {
			logger.Warn("skipping midi file",
				zap.String("path", path),
				zap.Error(err))
			continue
		}

		datName := uuid.New().String() + ".dat"
		util.CreateBinary(filepath.Join(outDir, datName), p.Notes)
		entries = append(entries, ManifestEntry{
			FileNum:  num,
			Path:     path,
			DatFile:  datName,
			NumNotes: p.Size(),
			Duration: p.Duration(),
		})
	}

	util.CreateBinary(filepath.Join(outDir, ManifestName), entries)
	return entries
}

// ReadManifest loads the manifest written by BuildAll.
func ReadManifest(outDir string) []ManifestEntry {
	return util.ReadBinaryOrPanic[[]ManifestEntry](filepath.Join(outDir, ManifestName))
}

// ReadNotes loads one note-table binary back into memory.
func ReadNotes(outDir string, entry ManifestEntry) []model.Note {
	return util.ReadBinaryOrPanic[[]model.Note](filepath.Join(outDir, entry.DatFile))
}
