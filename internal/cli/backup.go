package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/primalhq/primal/internal/backup"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a full backup document",
		Long: `Export the whole store to a JSON backup document.

The document includes the master password in plaintext - treat the file
as a secret. Without --out, a dated file name is used in the current
directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openAuthedSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			doc, err := s.handler.Export(cmd.Context())
			if err != nil {
				return out.Fail(err)
			}
			data, err := backup.Marshal(doc)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to encode backup", err)
			}
			if outPath == "" {
				outPath = backup.FileName(time.Now())
			}
			if err := os.WriteFile(outPath, data, 0o600); err != nil {
				return WrapExitError(ExitCommandError, "failed to write backup", err)
			}
			return out.SuccessText(fmt.Sprintf("exported backup to %s", outPath), map[string]string{"path": outPath})
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "backup file path")
	return cmd
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore a backup document",
		Long: `Restore the store from a JSON backup document.

Products and categories are required and replace the current
collections. Logs, profile, settings, and password are optional and keep
their current values when absent from the document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			data, err := os.ReadFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read backup", err)
			}

			s, err := openAuthedSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.handler.Import(cmd.Context(), data); err != nil {
				return out.Fail(err)
			}
			return out.SuccessText("data restored from "+args[0], map[string]string{"path": args[0]})
		},
	}
}
