package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// markdownToPDF converts the bulletin Markdown into PDF bytes by walking the
// goldmark AST and emitting fpdf primitives. Only the node kinds the bulletin
// document actually produces are handled (headings, paragraphs, emphasis,
// lists); everything else renders as plain text.
func markdownToPDF(markdown string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 11)

	md := goldmark.New()
	source := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(source))

	renderer := &pdfRenderer{
		pdf:    pdf,
		tr:     turkishTranslator(),
		source: source,
		font:   "Arial",
		size:   11,
	}

	if err := ast.Walk(doc, renderer.walk); err != nil {
		return nil, fmt.Errorf("render PDF: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write PDF output: %w", err)
	}
	return buf.Bytes(), nil
}

// turkishTranslator maps UTF-8 text to Windows-1254 single-byte form for the
// core fonts. Runes outside the code page degrade to the replacement byte
// instead of failing the export.
func turkishTranslator() func(string) string {
	enc := encoding.ReplaceUnsupported(charmap.Windows1254.NewEncoder())
	return func(s string) string {
		out, err := enc.String(s)
		if err != nil {
			return s
		}
		return out
	}
}

type pdfRenderer struct {
	pdf       *fpdf.Fpdf
	tr        func(string) string
	source    []byte
	font      string
	size      float64
	bold      bool
	italic    bool
	listLevel int
}

func (r *pdfRenderer) updateFont() {
	style := ""
	if r.bold {
		style += "B"
	}
	if r.italic {
		style += "I"
	}
	r.pdf.SetFont(r.font, style, r.size)
}

func (r *pdfRenderer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Heading:
		r.handleHeading(node, entering)
	case *ast.Paragraph:
		if !entering {
			r.pdf.Ln(7)
		}
	case *ast.Text:
		if entering {
			r.pdf.Write(5, r.tr(string(node.Text(r.source))))
		}
	case *ast.Emphasis:
		if node.Level == 2 {
			r.bold = entering
		} else {
			r.italic = entering
		}
		r.updateFont()
	case *ast.List:
		if entering {
			r.listLevel++
		} else {
			r.listLevel--
			if r.listLevel == 0 {
				r.pdf.Ln(2)
			}
		}
	case *ast.ListItem:
		if entering {
			r.pdf.Ln(5)
			r.pdf.SetX(15 + float64(r.listLevel)*5)
			r.pdf.Write(5, "- ")
		}
	case *ast.ThematicBreak:
		if entering {
			r.pdf.Ln(2)
			r.pdf.Line(15, r.pdf.GetY(), 195, r.pdf.GetY())
			r.pdf.Ln(2)
		}
	}
	return ast.WalkContinue, nil
}

func (r *pdfRenderer) handleHeading(n *ast.Heading, entering bool) {
	if entering {
		r.pdf.Ln(4)
		size := 16.0
		switch n.Level {
		case 1:
			size = 16
		case 2:
			size = 13
		default:
			size = 11
		}
		r.pdf.SetFont(r.font, "B", size)
	} else {
		r.pdf.Ln(8)
		r.updateFont()
	}
}
