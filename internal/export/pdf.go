// Package export derives downloadable artifacts from highlighted resume documents.
package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultPDFTimeout bounds a single headless-browser render.
const DefaultPDFTimeout = 30 * time.Second

// RenderPDF renders an assembled HTML document to PDF in a headless browser.
// Requires Chrome/Chromium to be installed on the system.
func RenderPDF(ctx context.Context, html string, timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	// The document is self-contained, so a data URL is enough; nothing needs
	// to resolve over the network.
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("PDF rendering failed: %w", err)
	}

	return pdf, nil
}

// BuildPDF is the PDF counterpart of Build. It assembles the highlighted
// document and renders it through the headless browser.
func BuildPDF(ctx context.Context, name, role, content string, evidence []string) (Artifact, error) {
	htmlArtifact := Build(name, role, content, evidence)

	pdf, err := RenderPDF(ctx, string(htmlArtifact.Data), DefaultPDFTimeout)
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		Filename: FilenameStem(name) + ExtensionPDF,
		MIMEType: MIMETypePDF,
		Data:     pdf,
	}, nil
}
