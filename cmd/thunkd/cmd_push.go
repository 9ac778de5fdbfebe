package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"thunkd/internal/modfs"
	"thunkd/internal/project"
)

var pushModular bool

// pushCmd uploads a local project back to the backend
var pushCmd = &cobra.Command{
	Use:   "push [project-id] [path]",
	Short: "Upload a local project directory to Thunkable",
	Long: `Reads the project under the given path and uploads it as the new
content of the project. With --modular (the default) the directory is the
file-per-screen layout and is merged back into a single document first;
with --modular=false only meta.json is read.`,
	Args: cobra.ExactArgs(2),
	RunE: runPush,
}

func init() {
	pushCmd.Flags().BoolVar(&pushModular, "modular", true, "Read the per-screen file layout")
}

func runPush(cmd *cobra.Command, args []string) error {
	projectID, path := args[0], args[1]
	logger.Debug("pushing",
		zap.String("project_id", projectID),
		zap.String("path", path),
		zap.Bool("modular", pushModular))

	ctx, cancel := operationContext()
	defer cancel()

	client, err := newClient()
	if err != nil {
		return err
	}

	var doc project.Document
	if pushModular {
		fs, skipped, err := modfs.ReadDir(path)
		if err != nil {
			return err
		}
		for _, name := range skipped {
			logger.Warn("ignoring file in modular project", zap.String("name", name))
		}
		doc, err = project.Merge(fs)
		if err != nil {
			return err
		}
		logger.Debug("merged project", zap.Int("files", len(fs)))
	} else {
		doc, err = modfs.ReadMeta(path)
		if err != nil {
			return err
		}
	}

	if err := client.Push(ctx, projectID, doc); err != nil {
		return err
	}

	logger.Info("pushed project", zap.String("project_id", projectID))
	return nil
}
