// Package extract turns raw document bytes into plain text. PDFs yield
// their native text layer per page plus OCR text for every embedded raster
// image; standalone images are OCR'd whole.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/sync/errgroup"

	"sahayai/internal/domain"
	"sahayai/internal/port"
)

const defaultOCRConcurrency = 4

// Extractor implements port.TextExtractor.
type Extractor struct {
	ocr         port.TextRecognizer
	concurrency int
}

// New creates an Extractor that OCRs embedded images through the given
// recognizer, at most concurrency images in flight per document.
func New(ocr port.TextRecognizer, concurrency int) *Extractor {
	if concurrency <= 0 {
		concurrency = defaultOCRConcurrency
	}
	return &Extractor{ocr: ocr, concurrency: concurrency}
}

// Extract produces the document's text for the declared extension.
func (e *Extractor) Extract(ctx context.Context, data []byte, ext string) (string, error) {
	fileType, ok := domain.AllowedExtensions[strings.ToLower(ext)]
	if !ok {
		return "", fmt.Errorf("%w: .%s", domain.ErrUnsupportedFileType, ext)
	}
	if fileType.IsImage() {
		return e.ocr.Recognize(ctx, data)
	}
	return e.extractPDF(ctx, data)
}

func (e *Extractor) extractPDF(ctx context.Context, data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer doc.Close()

	var parts []string
	for page := 0; page < doc.NumPage(); page++ {
		text, err := doc.Text(page)
		if err != nil {
			return "", fmt.Errorf("extracting text from page %d: %w", page+1, err)
		}
		parts = append(parts, text)
	}

	images, err := embeddedImages(data)
	if err != nil {
		// The native text layer is still usable; image enumeration failure
		// degrades to text-only extraction, mirroring per-image isolation.
		log.Printf("extract: enumerating embedded images failed: %v", err)
		return strings.Join(parts, "\n"), nil
	}

	ocrTexts := e.recognizeAll(ctx, images)
	for i, img := range images {
		if ocrTexts[i] == "" {
			continue
		}
		parts = append(parts,
			fmt.Sprintf("\n--- OCR Text from Image on Page %d ---\n", img.pageNr),
			ocrTexts[i],
		)
	}

	return strings.Join(parts, "\n"), nil
}

// pageImage is one embedded raster image in page order.
type pageImage struct {
	pageNr int
	data   []byte
}

// embeddedImages collects the raw bytes of every embedded raster image,
// ordered by page, then by object number within the page.
func embeddedImages(data []byte) ([]pageImage, error) {
	pages, err := api.ExtractImagesRaw(bytes.NewReader(data), nil, model.NewDefaultConfiguration())
	if err != nil {
		return nil, err
	}

	var images []pageImage
	for _, byObjNr := range pages {
		objNrs := make([]int, 0, len(byObjNr))
		for objNr := range byObjNr {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for _, objNr := range objNrs {
			img := byObjNr[objNr]
			raw, err := io.ReadAll(img)
			if err != nil {
				log.Printf("extract: reading image obj %d on page %d: %v", objNr, img.PageNr, err)
				continue
			}
			images = append(images, pageImage{pageNr: img.PageNr, data: raw})
		}
	}
	return images, nil
}

// recognizeAll OCRs the images concurrently, preserving input order in the
// result slice. A failed image is logged and left empty; it never aborts
// the batch.
func (e *Extractor) recognizeAll(ctx context.Context, images []pageImage) []string {
	texts := make([]string, len(images))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, img := range images {
		g.Go(func() error {
			text, err := e.ocr.Recognize(gctx, img.data)
			if err != nil {
				log.Printf("extract: could not process image on page %d: %v", img.pageNr, err)
				return nil
			}
			texts[i] = text
			return nil
		})
	}
	_ = g.Wait()

	return texts
}
