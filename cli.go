package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/sukinote/internal/archive"
	"github.com/llehouerou/sukinote/internal/errmsg"
	"github.com/llehouerou/sukinote/internal/notes"
)

// newRootCmd builds the command tree. Without a subcommand the notes UI
// starts.
func newRootCmd() *cobra.Command {
	var storePath string

	root := &cobra.Command{
		Use:           "sukinote",
		Short:         "Remember what matters about the people around you",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(storePath)
			if err != nil {
				return err
			}
			defer e.close()
			return runUI(e)
		},
	}
	root.PersistentFlags().StringVar(&storePath, "store", "", "note database (default: from config)")

	root.AddCommand(
		newListCmd(&storePath),
		newExportCmd(&storePath),
		newImportCmd(&storePath),
	)
	return root
}

func categoryFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "category", "c", "", "only notes of this category")
}

func parseFilter(name string) (notes.Category, error) {
	if name == "" {
		return notes.All, nil
	}
	return notes.ParseCategory(name)
}

func newListCmd(storePath *string) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilter(category)
			if err != nil {
				return err
			}
			e, err := openEnv(*storePath)
			if err != nil {
				return err
			}
			defer e.close()

			list, err := e.store.Fetch()
			if err != nil {
				return errmsg.Wrap(errmsg.OpNoteLoad, err)
			}
			printNotes(cmd.OutOrStdout(), notes.Filter(list, filter), time.Now())
			return nil
		},
	}
	categoryFlag(cmd, &category)
	return cmd
}

func printNotes(w io.Writer, list []notes.Note, now time.Time) {
	for _, n := range list {
		fmt.Fprintf(w, "%s %-12s %s (%s)\n", n.Category.Icon(), n.Category.Label(), n.Title,
			humanize.RelTime(n.CreatedAt, now, "ago", "from now"))
	}
}

func newExportCmd(storePath *string) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write notes as YAML to a file or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilter(category)
			if err != nil {
				return err
			}
			e, err := openEnv(*storePath)
			if err != nil {
				return err
			}
			defer e.close()

			list, err := e.store.Fetch()
			if err != nil {
				return errmsg.Wrap(errmsg.OpNoteLoad, err)
			}
			list = notes.Filter(list, filter)

			out := cmd.OutOrStdout()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Create(args[0])
				if err != nil {
					return errmsg.Wrap(errmsg.OpNoteExport, err)
				}
				defer f.Close()
				out = f
			}
			if err := archive.Write(out, list); err != nil {
				return errmsg.Wrap(errmsg.OpNoteExport, err)
			}
			e.logger.Info("exported notes", "count", len(list))
			return nil
		},
	}
	categoryFlag(cmd, &category)
	return cmd
}

func newImportCmd(storePath *string) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add or update notes from a YAML export",
		Long: `Import reads a file written by export. Notes whose id already exists
are updated in place; the rest are added. "-" reads stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errmsg.Wrap(errmsg.OpNoteImport, err)
				}
				defer f.Close()
				in = f
			}
			list, err := archive.Read(in, time.Now())
			if err != nil {
				return errmsg.Wrap(errmsg.OpNoteImport, err)
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d notes would be imported\n", len(list))
				return nil
			}

			e, err := openEnv(*storePath)
			if err != nil {
				return err
			}
			defer e.close()
			if err := e.store.SaveAll(list); err != nil {
				return errmsg.Wrap(errmsg.OpNoteImport, err)
			}
			e.logger.Info("imported notes", "count", len(list))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d notes\n", len(list))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing")
	return cmd
}
