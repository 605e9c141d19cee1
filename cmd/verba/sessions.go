package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/verba/internal/export"
	"github.com/nguyentantai21042004/verba/internal/models"
	"github.com/nguyentantai21042004/verba/internal/session"
)

func newSessionsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Browse and manage saved sessions",
	}
	cmd.AddCommand(newSessionsListCmd(opts))
	cmd.AddCommand(newSessionsShowCmd(opts))
	cmd.AddCommand(newSessionsExportCmd(opts))
	cmd.AddCommand(newSessionsDeleteCmd(opts))
	return cmd
}

func newSessionsListCmd(opts *rootOptions) *cobra.Command {
	var (
		limit      int
		formatFlag string
		noHeader   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return errors.New("--limit must be positive")
			}

			ctx := cmd.Context()
			a, err := newApp(ctx, cmd, opts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			previews, err := a.store.List(ctx, limit)
			if err != nil {
				return err
			}

			return writePreviews(cmd.OutOrStdout(), previews, !noHeader, strings.ToLower(formatFlag))
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&limit, "limit", session.DefaultListLimit, "maximum number of sessions to list")
	flags.StringVar(&formatFlag, "format", "table", "output format: table or json")
	flags.BoolVar(&noHeader, "no-header", false, "omit the header row in table output")

	return cmd
}

func newSessionsShowCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, cmd, opts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			sess, err := a.store.Get(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(sess)
			}
			_, err = io.WriteString(out, export.Markdown(sess))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the session as JSON")
	return cmd
}

func newSessionsExportCmd(opts *rootOptions) *cobra.Command {
	var (
		formatFlag string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a saved session as markdown or docx",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatFlag)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := newApp(ctx, cmd, opts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			doc, err := a.proc.Export(ctx, args[0], format)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err = cmd.OutOrStdout().Write(doc.Body)
				return err
			}
			if output == "" {
				output = doc.Name
			}
			if err := os.WriteFile(output, doc.Body, 0644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&formatFlag, "format", "markdown", "export format: markdown or docx")
	flags.StringVarP(&output, "output", "o", "", "destination file, - for stdout (default verba-session-<id>.<ext>)")

	return cmd
}

func newSessionsDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, cmd, opts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			deleted, err := a.store.Delete(ctx, args[0])
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("%w: %s", session.ErrNotFound, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func writePreviews(w io.Writer, items []models.Preview, includeHeader bool, format string) error {
	switch format {
	case "table":
		return writePreviewsTable(w, items, includeHeader)
	case "json":
		if items == nil {
			items = []models.Preview{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writePreviewsTable(w io.Writer, items []models.Preview, includeHeader bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if includeHeader {
		fmt.Fprintln(tw, "CREATED\tID\tPREVIEW")
	}
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			item.CreatedAt.Local().Format(time.DateTime),
			item.ID,
			strings.ReplaceAll(item.TranscriptPreview, "\n", " "),
		)
	}
	return tw.Flush()
}
