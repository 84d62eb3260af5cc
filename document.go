package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// Document
// ---------------------------------------------------------------------------

// Page is one rendered page.
type Page struct {
	Number int
	Ops    []Op
}

// Document is the finished page model. The PDF and HTML writers are two
// serializations of it.
type Document struct {
	Title    string
	Author   string
	Lang     string // language of the labels, "en" or "es"
	Filename string
	Issued   time.Time
	Totals   Totals
	Logo     *Logo
	Pages    []Page
}

// DeliveryError reports that a document was built but could not be handed
// to its channel (file, http, email).
type DeliveryError struct {
	Channel string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver document via %s: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// ---------------------------------------------------------------------------
// Generator
// ---------------------------------------------------------------------------

// Generator builds documents. It holds only read-only configuration and a
// concurrency-safe HTTP client, so one Generator can serve many requests.
type Generator struct {
	cfg       *Config
	log       *zap.Logger
	http      *resty.Client
	localLogo bool
}

// GeneratorOption adjusts a Generator at construction.
type GeneratorOption func(*Generator)

// WithLocalLogo lets logo references name files on the local disk. Only the
// CLI sets it: over HTTP the reference comes from the client.
func WithLocalLogo() GeneratorOption {
	return func(g *Generator) { g.localLogo = true }
}

func NewGenerator(cfg *Config, log *zap.Logger, opts ...GeneratorOption) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	client := resty.New().
		SetTimeout(cfg.Logo.Timeout).
		SetHeader("Accept", "image/*")
	g := &Generator{cfg: cfg, log: log, http: client}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Build validates the invoice and lays it out. The logo fetch is the only
// blocking step; everything after it is pure computation.
func (g *Generator) Build(ctx context.Context, inv *Invoice) (*Document, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	issued, err := inv.issueDate()
	if err != nil {
		return nil, err
	}
	due, ok, err := inv.dueDate()
	if err != nil {
		return nil, err
	}
	if !ok && g.cfg.DueDays > 0 {
		due = dueDate(newBusinessCalendar(g.cfg.Province), issued, g.cfg.DueDays)
	}

	locale := inv.Locale
	if blank(locale) {
		locale = g.cfg.Locale
	}
	l, err := newLabels(locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}

	totals := ComputeTotals(inv)

	logo := g.loadLogo(ctx, inv.LogoURL)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m := newMeasurer()
	header := buildHeader(inv, l, m, issued, due, logo)
	footer := buildFooter(inv, totals, l, m)
	rows := measureRows(m, inv.renderableItems())

	plan, err := Plan(rows, PlanConfig{
		Strategy:       g.cfg.Layout.Strategy,
		FirstPageItems: g.cfg.Layout.FirstPageItems,
		PageItems:      g.cfg.Layout.PageItems,
		FirstPageTop:   header.tableTop() + tableHeaderAdvance,
		PageTop:        margin + tableHeaderAdvance,
		FooterHeight:   footer.height,
	})
	if err != nil {
		return nil, err
	}

	pc := newPageContext(inv, l, m, logo, header, footer)
	pages := make([]Page, len(plan))
	for i, p := range plan {
		pages[i] = Page{Number: p.Number, Ops: renderPage(p, pc)}
	}

	// page count is final now
	for i := range pages {
		pages[i].Ops = stampPage(pages[i].Ops, pc, pages[i].Number, len(pages))
	}

	if err := m.err(); err != nil {
		return nil, fmt.Errorf("failed to measure text: %w", err)
	}

	g.log.Info("document built",
		zap.String("id", inv.ID),
		zap.String("strategy", g.cfg.Layout.Strategy),
		zap.Int("items", len(rows)),
		zap.Int("pages", len(pages)),
		zap.Bool("logo", logo != nil),
	)

	return &Document{
		Title:    strings.TrimSpace(inv.Title),
		Author:   documentAuthor(inv.From),
		Lang:     l.lang,
		Filename: downloadFilename(inv),
		Issued:   issued,
		Totals:   totals,
		Logo:     logo,
		Pages:    pages,
	}, nil
}

// measureRows wraps each description to the description column.
func measureRows(m *measurer, items []LineItem) []Row {
	rows := make([]Row, len(items))
	for i, item := range items {
		lines := m.wrap(fontBody, strings.TrimSpace(item.Description), descriptionWidth)
		rows[i] = Row{Item: item, Lines: lines, Height: rowHeight(len(lines))}
	}
	return rows
}

func documentAuthor(c Contact) string {
	if !blank(c.Company) {
		return strings.TrimSpace(c.Company)
	}
	return strings.TrimSpace(c.Name)
}
