package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/annoindex/pkg/types"
)

func init() {
	rootCmd.AddCommand(newShowCmd())
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <index> <class>",
		Short: "Show the annotation summary of one class",
		Long: `The show command prints the superclass, interfaces, access flags and the
class, field and method annotations recorded for a class.

Example:
  annoctl show jandex.idx com.example.Service
  annoctl show jandex.idx com.example.Service --yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), args)
		},
	}
}

func runShow(w io.Writer, args []string) error {
	f, err := openIndex(args[0])
	if err != nil {
		return err
	}
	rec, ok := f.Index.Get(args[1])
	if !ok {
		return fmt.Errorf("class %q not found in %s", args[1], args[0])
	}
	if structured() {
		return printStructured(w, rec)
	}

	v := rec.View()
	printInfo(w, "%s\n", v.Name)
	if v.SuperName != "" {
		printInfo(w, "  Extends:    %s\n", v.SuperName)
	}
	printInfo(w, "  Flags:      0x%04x %s\n", v.Flags, flagWords(rec))
	printList(w, "Implements", v.Interfaces)
	printList(w, "Class", v.ClassAnnotations)
	printList(w, "Field", v.FieldAnnotations)
	printList(w, "Method", v.MethodAnnotations)
	return nil
}

func printList(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	printInfo(w, "  %-11s %s\n", label+":", strings.Join(items, ", "))
}

func flagWords(rec *types.ClassRecord) string {
	var words []string
	if rec.IsAnnotation() {
		words = append(words, "annotation")
	} else if rec.IsInterface() {
		words = append(words, "interface")
	}
	if rec.IsEnum() {
		words = append(words, "enum")
	}
	if rec.IsAbstract() && !rec.IsInterface() {
		words = append(words, "abstract")
	}
	if len(words) == 0 {
		return ""
	}
	return "(" + strings.Join(words, " ") + ")"
}
