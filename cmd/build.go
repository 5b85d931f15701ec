package cmd

import (
	"strconv"

	"github.com/pianoforge/midipiece/constants"
	"github.com/pianoforge/midipiece/dataset"
	"github.com/pianoforge/midipiece/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build [maxFiles]",
	Short: "Builds note-table binaries from the media dir",
	Long:  `Builds note-table binaries from the media dir`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			maxNum = arg1
		}

		runBuild(maxNum)
	},
}

func runBuild(maxNum int) {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	outDir := constants.GetIndexDir()
	util.RecreateOutputDir(outDir)
	entries := dataset.BuildAll(constants.GetMediaDir(), outDir, maxNum, logger)
	logger.Info("build finished",
		zap.Int("files", len(entries)),
		zap.String("outDir", outDir))
}
