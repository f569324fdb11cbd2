package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/annoindex/pkg/annoindex"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <index>...",
		Short: "Report format version, size and class count of index files",
		Long: `The info command decodes each index file and reports its format version,
compression, stored size, content digest and number of classes.

Example:
  annoctl info jandex.idx
  annoctl info lib/*.idx --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

type fileInfo struct {
	Path    string `json:"path"`
	Version int    `json:"version"`
	Codec   string `json:"codec"`
	Size    int64  `json:"size"`
	Digest  string `json:"digest"`
	Classes int    `json:"classes"`
}

func runInfo(ctx context.Context, w io.Writer, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	files, err := annoindex.OpenAll(ctx, paths, openOptions()...)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}

	infos := make([]fileInfo, 0, len(files))
	for _, f := range files {
		infos = append(infos, fileInfo{
			Path:    f.Path,
			Version: f.Index.Version(),
			Codec:   f.Codec,
			Size:    f.Size,
			Digest:  f.Digest.String(),
			Classes: f.Index.Len(),
		})
	}
	if structured() {
		return printStructured(w, infos)
	}

	for _, fi := range infos {
		printInfo(w, "%s\n", fi.Path)
		printInfo(w, "  Version: %d\n", fi.Version)
		printInfo(w, "  Codec:   %s\n", fi.Codec)
		printInfo(w, "  Size:    %s\n", formatSize(fi.Size))
		printInfo(w, "  Digest:  %s\n", fi.Digest)
		printInfo(w, "  Classes: %d\n", fi.Classes)
	}
	return nil
}

func formatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
