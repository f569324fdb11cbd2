package main

import (
	"io"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newAnnotatedCmd())
}

func newAnnotatedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "annotated <index> <annotation>",
		Short: "List classes carrying a class-level annotation",
		Long: `The annotated command lists the classes whose class-level annotations
include the given annotation type.

Example:
  annoctl annotated jandex.idx javax.inject.Singleton`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnnotated(cmd.OutOrStdout(), args)
		},
	}
}

func runAnnotated(w io.Writer, args []string) error {
	f, err := openIndex(args[0])
	if err != nil {
		return err
	}
	return printClassNames(w, f.Index.AnnotatedWith(args[1]))
}
