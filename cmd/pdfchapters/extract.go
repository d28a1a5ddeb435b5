package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studyforge/pdfchapters/internal/chapters"
	"github.com/studyforge/pdfchapters/internal/extract"
	"github.com/studyforge/pdfchapters/internal/ocr"
	"github.com/studyforge/pdfchapters/internal/pdfdoc"
)

type ocrFlags struct {
	enabled bool
	lang    string
	scale   float64
	model   string
}

func (f *ocrFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.enabled, "ocr", false, "OCR pages that expose no extractable text (needs GOOGLE_API_KEY)")
	cmd.Flags().StringVar(&f.lang, "ocr-lang", "", "language hint for OCR (e.g. en, ko)")
	cmd.Flags().Float64Var(&f.scale, "ocr-scale", extract.DefaultOCRScale, "raster scale for OCR, in multiples of 72 DPI")
	cmd.Flags().StringVar(&f.model, "ocr-model", "", "Gemini model for OCR (default gemini-2.5-flash)")
}

func (f *ocrFlags) recognizer(cmd *cobra.Command) (extract.Recognizer, error) {
	if !f.enabled {
		return nil, nil
	}
	key := os.Getenv("GOOGLE_API_KEY")
	if key == "" {
		return nil, errors.New("--ocr requires GOOGLE_API_KEY")
	}
	return ocr.NewGemini(cmd.Context(), key, f.model)
}

func extractCmd() *cobra.Command {
	var pagesArg string
	var chaptersArg string
	var maxLength int
	var scanPages int
	var ocrf ocrFlags

	cmd := &cobra.Command{
		Use:   "extract <pdf>",
		Short: "Extract text for explicit pages, manual chapter ranges, or auto-detected chapters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pagesArg != "" && chaptersArg != "" {
				return errors.New("--pages and --chapters are mutually exclusive")
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			log := newLogger()
			defer log.Sync()

			rec, err := ocrf.recognizer(cmd)
			if err != nil {
				return err
			}
			opts := extract.Options{
				MaxLength: maxLength,
				OCR:       rec,
				OCRLang:   ocrf.lang,
				OCRScale:  ocrf.scale,
				Logger:    log,
				OnOCRProgress: func(page, done, total int) {
					log.Info("ocr progress", zap.Int("page", page), zap.Int("done", done), zap.Int("total", total))
				},
			}

			doc, err := pdfdoc.Open(data)
			if err != nil {
				return err
			}
			defer doc.Close()

			var out any
			switch {
			case pagesArg != "":
				pages, err := parsePageList(pagesArg)
				if err != nil {
					return err
				}
				res, err := extract.ForPages(cmd.Context(), doc, pages, opts)
				if err != nil {
					return err
				}
				out = res
			case chaptersArg != "":
				sels, err := chapters.ParseRangeInput(chaptersArg, doc.TotalPages())
				if err != nil {
					return err
				}
				ranges := chapters.RangesFromSelections(sels)
				res, err := extract.ForRanges(cmd.Context(), doc, ranges, opts)
				if err != nil {
					return err
				}
				out = extract.RangesResult{TotalPages: doc.TotalPages(), Chapters: res}
			default:
				det := chapters.DetectFromDocument(doc, chapters.DetectOptions{MaxScanPages: scanPages, Logger: log})
				if len(det.Chapters) == 0 {
					return errors.New("couldn't detect chapters automatically — pass --pages or --chapters")
				}
				res, err := extract.ForRanges(cmd.Context(), doc, det.Chapters, opts)
				if err != nil {
					return err
				}
				out = extract.RangesResult{TotalPages: det.TotalPages, Chapters: res}
			}

			b, _ := json.MarshalIndent(out, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().StringVar(&pagesArg, "pages", "", "explicit pages, e.g. \"1,3,5-9\"")
	cmd.Flags().StringVar(&chaptersArg, "chapters", "", "manual chapter ranges, e.g. \"1:1-12, 2:13-30\"")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "character budget per request (per chapter in range mode)")
	cmd.Flags().IntVar(&scanPages, "scan-pages", 0, "front pages to scan when auto-detecting chapters")
	ocrf.register(cmd)
	return cmd
}

// parsePageList expands "1,3,5-9" into a page list. Validation against the
// document's bounds happens in the extractor.
func parsePageList(s string) ([]int, error) {
	var pages []int
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if a, b, found := strings.Cut(tok, "-"); found {
			start, err1 := strconv.Atoi(strings.TrimSpace(a))
			end, err2 := strconv.Atoi(strings.TrimSpace(b))
			if err1 != nil || err2 != nil || end < start {
				return nil, fmt.Errorf("bad page span %q", tok)
			}
			for p := start; p <= end; p++ {
				pages = append(pages, p)
			}
			continue
		}
		p, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("bad page number %q", tok)
		}
		pages = append(pages, p)
	}
	if len(pages) == 0 {
		return nil, errors.New("empty page list")
	}
	return pages, nil
}
