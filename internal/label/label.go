// Package label composes printable barcode label layouts.
//
// The barcode glyph renderer is a black box behind the Renderer
// interface: the package decides what goes on each card (title, subtitle,
// payload, geometry) and the renderer decides how bars get drawn.
package label

import (
	"fmt"
	"io"

	"github.com/primalhq/primal/internal/model"
)

// RenderOptions are the layout parameters handed to the glyph renderer.
type RenderOptions struct {
	Width        float64
	Height       int
	DisplayValue bool
}

// Renderer draws a barcode for payload onto the surface named by target.
type Renderer interface {
	Render(target, payload string, opts RenderOptions) error
}

// Card is one label: a product header above a barcode glyph.
type Card struct {
	Target   string
	Title    string
	Subtitle string
	Payload  string
	Opts     RenderOptions
}

// Sheet is an ordered set of cards composed for a single print job.
type Sheet struct {
	Cards []Card
}

// ComposeSingle lays out one full-size label for a product.
func ComposeSingle(p model.Product) Sheet {
	return Sheet{Cards: []Card{{
		Target:   "single-svg",
		Title:    p.Name,
		Subtitle: p.Brand,
		Payload:  p.Barcode,
		Opts:     RenderOptions{Width: 3, Height: 100, DisplayValue: true},
	}}}
}

// ComposeSheet lays out a compact grid card for each product, in the
// given order. Used by bulk print over the current selection.
func ComposeSheet(products []model.Product) Sheet {
	sheet := Sheet{Cards: make([]Card, 0, len(products))}
	for i, p := range products {
		sheet.Cards = append(sheet.Cards, Card{
			Target:   fmt.Sprintf("bulk-s-%d", i),
			Title:    p.Name,
			Subtitle: p.Brand,
			Payload:  p.Barcode,
			Opts:     RenderOptions{Width: 1.5, Height: 40, DisplayValue: true},
		})
	}
	return sheet
}

// Render draws every card on the sheet through the given renderer,
// stopping at the first failure.
func (s Sheet) Render(r Renderer) error {
	for _, c := range s.Cards {
		if err := r.Render(c.Target, c.Payload, c.Opts); err != nil {
			return fmt.Errorf("render %s: %w", c.Target, err)
		}
	}
	return nil
}

// TextRenderer is the renderer the CLI ships: it prints each barcode as a
// text placeholder line, glyphs being the job of a real print surface.
type TextRenderer struct {
	W io.Writer
}

// Render writes one placeholder line for the barcode.
func (t TextRenderer) Render(target, payload string, opts RenderOptions) error {
	if _, err := fmt.Fprintf(t.W, "[%s] ||%s||\n", target, payload); err != nil {
		return err
	}
	if opts.DisplayValue {
		if _, err := fmt.Fprintf(t.W, "[%s] %s\n", target, payload); err != nil {
			return err
		}
	}
	return nil
}
