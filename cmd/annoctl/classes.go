package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/annoindex/pkg/annoindex"
)

var (
	classesExtends    string
	classesImplements string
)

func init() {
	cmd := newClassesCmd()
	cmd.Flags().StringVar(&classesExtends, "extends", "", "Only classes whose direct superclass is this class")
	cmd.Flags().StringVar(&classesImplements, "implements", "", "Only classes that directly implement this interface")
	cmd.MarkFlagsMutuallyExclusive("extends", "implements")
	rootCmd.AddCommand(cmd)
}

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes <index>",
		Short: "List the classes in an index",
		Long: `The classes command lists every class recorded in an index, in name order.

Example:
  annoctl classes jandex.idx
  annoctl classes jandex.idx --extends com.example.Base
  annoctl classes jandex.idx --implements java.io.Serializable --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses(cmd.OutOrStdout(), args)
		},
	}
}

func runClasses(w io.Writer, args []string) error {
	f, err := openIndex(args[0])
	if err != nil {
		return err
	}

	var recs []*annoindex.ClassRecord
	switch {
	case classesExtends != "":
		recs = f.Index.Subclasses(classesExtends)
	case classesImplements != "":
		recs = f.Index.Implementors(classesImplements)
	default:
		recs = f.Index.Classes()
	}
	return printClassNames(w, recs)
}

func printClassNames(w io.Writer, recs []*annoindex.ClassRecord) error {
	names := make([]string, 0, len(recs))
	for _, rec := range recs {
		names = append(names, rec.Name().String())
	}
	if structured() {
		return printStructured(w, map[string]any{
			"classes": names,
			"count":   len(names),
		})
	}
	for _, n := range names {
		printInfo(w, "%s\n", n)
	}
	return nil
}
