// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package render turns a magazine structure into a standalone HTML document.

Each page is dispatched on its layout tag. Prose is Markdown and goes through
goldmark with raw HTML disabled, so generated text can never inject markup.
The contents page is rebuilt from its JSON entries.
*/
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"

	"github.com/taibuivan/kiosk/internal/core/magazine"
)

var markdown = goldmark.New()

// pageView is what the templates see for one page.
type pageView struct {
	Number   int
	Type     string
	Layout   string
	Title    string
	Image    string
	Body     template.HTML
	Contents []magazine.ContentsEntry
}

/*
Page renders a single slot.

Returns:
  - template.HTML: The page fragment
  - error: Markdown, contents decoding or template failures
*/
func Page(slot magazine.PageSlot) (template.HTML, error) {
	view := pageView{
		Number: slot.PageNumber,
		Type:   string(slot.Type),
		Layout: string(slot.Layout),
		Title:  slot.Title,
		Image:  slot.Image,
	}

	if slot.Type == magazine.PageContents {
		entries, err := magazine.ParseContents(slot.Content)
		if err != nil {
			return "", fmt.Errorf("render: page %d: %w", slot.PageNumber, err)
		}
		view.Contents = entries
	} else {
		var body bytes.Buffer
		if err := markdown.Convert([]byte(slot.Content), &body); err != nil {
			return "", fmt.Errorf("render: page %d markdown: %w", slot.PageNumber, err)
		}
		// goldmark escapes raw HTML by default
		view.Body = template.HTML(body.String())
	}

	name := layoutTemplate(slot.Layout)
	if slot.Type == magazine.PageContents {
		name = "contents"
	}

	var out bytes.Buffer
	if err := templates.ExecuteTemplate(&out, name, view); err != nil {
		return "", fmt.Errorf("render: page %d template: %w", slot.PageNumber, err)
	}

	return template.HTML(out.String()), nil
}

// Magazine renders every page in order inside one HTML document.
func Magazine(structure magazine.Structure) ([]byte, error) {
	pages := make([]template.HTML, 0, len(structure.Pages))
	for _, slot := range structure.Pages {
		page, err := Page(slot)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	var out bytes.Buffer
	err := templates.ExecuteTemplate(&out, "document", struct {
		Title string
		Pages []template.HTML
	}{Title: structure.Title, Pages: pages})
	if err != nil {
		return nil, fmt.Errorf("render: document template: %w", err)
	}

	return out.Bytes(), nil
}

// layoutTemplate maps a layout tag onto its template name.
func layoutTemplate(layout magazine.Layout) string {
	switch layout {
	case magazine.LayoutImageLeft, magazine.LayoutImageRight:
		return "image-side"
	case magazine.LayoutImageTop:
		return "image-top"
	case magazine.LayoutImageBottom:
		return "image-bottom"
	case magazine.LayoutFullImage:
		return "full-image"
	case magazine.LayoutQuoteBreak:
		return "quote-break"
	default:
		return "simple-text"
	}
}
