package extract

import "context"

// Recognizer is the OCR capability the fallback pass depends on. The core
// is agnostic to the engine behind it; a test double implements it
// trivially. Implementations receive a PNG-encoded page raster and the
// caller's language hint, and return the recognized text ("" when the page
// carries none).
type Recognizer interface {
	Recognize(ctx context.Context, pngImage []byte, lang string) (string, error)
}

// ProgressFunc receives per-page OCR progress: the page just processed,
// how many pages of the fallback run are done, and the run's page total.
type ProgressFunc func(page, done, total int)

// RecognizerFunc adapts a function to the Recognizer interface.
type RecognizerFunc func(ctx context.Context, pngImage []byte, lang string) (string, error)

func (f RecognizerFunc) Recognize(ctx context.Context, pngImage []byte, lang string) (string, error) {
	return f(ctx, pngImage, lang)
}
