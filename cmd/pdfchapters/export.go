package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studyforge/pdfchapters/internal/chapters"
	"github.com/studyforge/pdfchapters/internal/export"
	"github.com/studyforge/pdfchapters/internal/extract"
	"github.com/studyforge/pdfchapters/internal/pdfdoc"
)

func exportCmd() *cobra.Command {
	var out string
	var slugPrefix string
	var chaptersArg string
	var maxLength int
	var scanPages int
	var ocrf ocrFlags

	cmd := &cobra.Command{
		Use:   "export <pdf>",
		Short: "Detect chapters, extract their text, and write a Markdown tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			log := newLogger()
			defer log.Sync()

			doc, err := pdfdoc.Open(data)
			if err != nil {
				return err
			}
			defer doc.Close()

			var ranges []chapters.ChapterRange
			if chaptersArg != "" {
				sels, err := chapters.ParseRangeInput(chaptersArg, doc.TotalPages())
				if err != nil {
					return err
				}
				ranges = chapters.RangesFromSelections(sels)
			} else {
				det := chapters.DetectFromDocument(doc, chapters.DetectOptions{MaxScanPages: scanPages, Logger: log})
				if len(det.Chapters) == 0 {
					return errors.New("couldn't detect chapters automatically — pass --chapters")
				}
				ranges = det.Chapters
			}

			rec, err := ocrf.recognizer(cmd)
			if err != nil {
				return err
			}
			results, err := extract.ForRanges(cmd.Context(), doc, ranges, extract.Options{
				MaxLength: maxLength,
				OCR:       rec,
				OCRLang:   ocrf.lang,
				OCRScale:  ocrf.scale,
				Logger:    log,
				OnOCRProgress: func(page, done, total int) {
					log.Info("ocr progress", zap.Int("page", page), zap.Int("done", done), zap.Int("total", total))
				},
			})
			if err != nil {
				return err
			}

			paths, err := export.WriteMarkdown(extract.RangesResult{
				TotalPages: doc.TotalPages(),
				Chapters:   results,
			}, export.Options{OutDir: out, SlugPrefix: slugPrefix})
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(map[string]any{
				"out_dir": out,
				"files":   paths,
			}, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory for the Markdown tree")
	cmd.Flags().StringVar(&slugPrefix, "slug-prefix", "", "optional slug prefix for chapter files")
	cmd.Flags().StringVar(&chaptersArg, "chapters", "", "manual chapter ranges instead of auto-detection")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "character budget per chapter")
	cmd.Flags().IntVar(&scanPages, "scan-pages", 0, "front pages to scan when auto-detecting chapters")
	ocrf.register(cmd)
	return cmd
}
