package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studyforge/pdfchapters/internal/chapters"
)

func detectCmd() *cobra.Command {
	var scanPages int

	cmd := &cobra.Command{
		Use:   "detect <pdf>",
		Short: "Detect chapter page ranges from the outline or a printed table of contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			log := newLogger()
			defer log.Sync()

			res, err := chapters.Detect(data, chapters.DetectOptions{
				MaxScanPages: scanPages,
				Logger:       log,
			})
			if err != nil {
				return err
			}
			if len(res.Chapters) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(),
					"couldn't detect chapters automatically — supply ranges manually (see `pdfchapters extract --chapters`)")
			}
			b, _ := json.MarshalIndent(res, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().IntVar(&scanPages, "scan-pages", 0, "scan up to N front pages for a printed table of contents (default 24)")
	return cmd
}
