package main

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"sync"
)

// ---------------------------------------------------------------------------
// HTML Print View
// ---------------------------------------------------------------------------

// Each page is an inline SVG with a 210x297 viewBox, so op coordinates are
// used as they are and match the PDF to the millimetre.
const printTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: 0; }
html, body { margin: 0; padding: 0; background: #777; }
.page { width: 210mm; height: 297mm; margin: 10mm auto; background: #fff; overflow: hidden; }
.page svg { display: block; width: 210mm; height: 297mm; }
.page text { font-family: Helvetica, Arial, sans-serif; white-space: pre; }
@media print {
  body { background: none; }
  .page { margin: 0; page-break-after: always; break-after: page; }
  .page:last-child { page-break-after: auto; break-after: auto; }
}
</style>
</head>
<body>
{{- range .Pages}}
<section class="page" id="page-{{.Number}}">
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 210 297">
{{- range .Elements}}
{{- if eq .Kind "rect"}}
<rect x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" fill="{{.Color}}"/>
{{- else if eq .Kind "line"}}
<line x1="{{.X}}" y1="{{.Y}}" x2="{{.X2}}" y2="{{.Y2}}" stroke="{{.Color}}" stroke-width="{{.W}}"/>
{{- else if eq .Kind "image"}}
<image href="{{.Href}}" x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" preserveAspectRatio="none"/>
{{- else}}
<text x="{{.X}}" y="{{.Y}}" font-size="{{.Size}}" font-weight="{{.Weight}}" font-style="{{.Style}}" fill="{{.Color}}">{{.Text}}</text>
{{- end}}
{{- end}}
</svg>
</section>
{{- end}}
{{- if .AutoPrint}}
<script>window.addEventListener("load", function () { window.print(); });</script>
{{- end}}
</body>
</html>
`

var (
	printOnce sync.Once
	printTmpl *template.Template
	printErr  error
)

// printView parses the print template once per process.
func printView() (*template.Template, error) {
	printOnce.Do(func() {
		printTmpl, printErr = template.New("print").Parse(printTemplate)
	})
	return printTmpl, printErr
}

type htmlDocument struct {
	Lang      string
	Title     string
	AutoPrint bool
	Pages     []htmlPage
}

type htmlPage struct {
	Number   int
	Elements []htmlElement
}

// htmlElement is one op with its numbers already formatted for SVG.
type htmlElement struct {
	Kind          string
	X, Y, X2, Y2  string
	W, H          string
	Color         string
	Href          template.URL
	Text          string
	Size          string
	Weight, Style string
}

// renderHTML serializes the document as a print-ready HTML page.
func renderHTML(doc *Document, lang string, autoPrint bool) ([]byte, error) {
	tmpl, err := printView()
	if err != nil {
		return nil, fmt.Errorf("failed to parse print template: %w", err)
	}

	view := htmlDocument{Lang: lang, Title: doc.Title, AutoPrint: autoPrint}
	if view.Lang == "" {
		view.Lang = "en"
	}
	for _, page := range doc.Pages {
		hp := htmlPage{Number: page.Number, Elements: make([]htmlElement, 0, len(page.Ops))}
		for _, op := range page.Ops {
			hp.Elements = append(hp.Elements, svgElement(op, doc.Logo))
		}
		view.Pages = append(view.Pages, hp)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render print view: %w", err)
	}
	return buf.Bytes(), nil
}

func svgElement(op Op, logo *Logo) htmlElement {
	switch op := op.(type) {
	case RectOp:
		return htmlElement{Kind: "rect", X: mm(op.X), Y: mm(op.Y), W: mm(op.W), H: mm(op.H), Color: rgb(op.Fill)}
	case LineOp:
		return htmlElement{Kind: "line", X: mm(op.X1), Y: mm(op.Y1), X2: mm(op.X2), Y2: mm(op.Y2), W: mm(op.Width), Color: rgb(op.Color)}
	case ImageOp:
		e := htmlElement{Kind: "image", X: mm(op.X), Y: mm(op.Y), W: mm(op.W), H: mm(op.H)}
		if logo != nil {
			// data URIs are dropped by the URL sanitizer unless marked safe
			e.Href = template.URL(logo.DataURI())
		}
		return e
	case TextOp:
		e := htmlElement{
			Kind:   "text",
			X:      mm(op.X),
			Y:      mm(op.Y),
			Text:   op.Text,
			Size:   mm(pointsToMM(op.Font.Size)),
			Weight: "normal",
			Style:  "normal",
			Color:  rgb(op.Color),
		}
		switch op.Font.Style {
		case "B":
			e.Weight = "bold"
		case "I":
			e.Style = "italic"
		case "BI":
			e.Weight, e.Style = "bold", "italic"
		}
		return e
	}
	return htmlElement{}
}

func pointsToMM(pt float64) float64 {
	return pt * 25.4 / 72
}

func mm(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func rgb(c RGB) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
