package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTranscribeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "transcribe <audio>",
		Short: "Transcribe an audio file with the configured backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, cmd, opts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			transcript, err := a.proc.Transcribe(ctx, args[0])
			if err != nil {
				return err
			}
			if strings.TrimSpace(transcript) == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: no speech detected in audio")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), transcript)
			return nil
		},
	}
}
