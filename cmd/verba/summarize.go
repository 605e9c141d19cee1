package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/verba/internal/models"
)

func newSummarizeCmd(opts *rootOptions) *cobra.Command {
	var (
		asJSON bool
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "summarize [file|-]",
		Short: "Summarize a transcript read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			transcript, err := readTranscript(cmd, args)
			if err != nil {
				return err
			}
			if strings.TrimSpace(transcript) == "" {
				return fmt.Errorf("no transcript provided")
			}

			a, err := newApp(ctx, cmd, opts, save)
			if err != nil {
				return err
			}
			defer a.Close()

			res := a.proc.Summarize(ctx, transcript, save)
			if res.SaveErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: session not saved: %v\n", res.SaveErr)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				payload := struct {
					Summary   models.Summary `json:"summary"`
					SessionID string         `json:"session_id,omitempty"`
				}{res.Summary, res.SessionID}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			}

			if res.Saved() {
				fmt.Fprintf(out, "Session: %s\n\n", res.SessionID)
			}
			return writeSummaryText(out, res.Summary)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&asJSON, "json", false, "print the summary as JSON")
	flags.BoolVar(&save, "save", false, "store the transcript and summary as a session")

	return cmd
}

func readTranscript(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), nil
}

func writeSummaryText(w io.Writer, s models.Summary) error {
	sections := []struct {
		title string
		items []string
	}{
		{"Key Points", s.KeyPoints},
		{"Decisions", s.Decisions},
		{"Action Items", s.ActionItems},
	}

	for i, sec := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s:\n", sec.title); err != nil {
			return err
		}
		if len(sec.items) == 0 {
			if _, err := fmt.Fprintln(w, "  (none)"); err != nil {
				return err
			}
			continue
		}
		for n, item := range sec.items {
			if _, err := fmt.Fprintf(w, "  %d. %s\n", n+1, item); err != nil {
				return err
			}
		}
	}
	return nil
}
