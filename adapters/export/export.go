// Package export renders a stored offer package into portable formats:
// raw JSON, an HTML document, or an xlsx workbook. Output is
// deterministic for a given record so exports can be diffed.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"offerforge/internal/errors"
	"offerforge/models"
	"offerforge/ports"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Format identifies an export rendering
type Format string

const (
	FormatJSON     Format = "json"
	FormatDocument Format = "document"
	FormatXLSX     Format = "xlsx"
)

// Result carries rendered bytes plus the content type to serve them with
type Result struct {
	ContentType string
	Filename    string
	Data        []byte
}

// Exporter renders offer records
type Exporter struct{}

// NewExporter builds an Exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// Render produces the requested format for the record
func (e *Exporter) Render(record *ports.OfferRecord, format Format) (*Result, error) {
	switch format {
	case FormatJSON:
		return e.renderJSON(record)
	case FormatDocument:
		return e.renderDocument(record)
	case FormatXLSX:
		return e.renderXLSX(record)
	default:
		return nil, errors.Validation(map[string]string{
			"format": fmt.Sprintf("unsupported export format %q", format),
		})
	}
}

func (e *Exporter) renderJSON(record *ports.OfferRecord) (*Result, error) {
	data, err := json.MarshalIndent(record.Package, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "serialize offer package")
	}
	return &Result{
		ContentType: "application/json",
		Filename:    "offer-" + record.ID.String() + ".json",
		Data:        data,
	}, nil
}

func (e *Exporter) renderDocument(record *ports.OfferRecord) (*Result, error) {
	md := buildMarkdown(&record.Package)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	out := markdown.ToHTML([]byte(md), p, renderer)

	return &Result{
		ContentType: "text/html; charset=utf-8",
		Filename:    "offer-" + record.ID.String() + ".html",
		Data:        out,
	}, nil
}

// buildMarkdown lays the package out as a client-facing document:
// pricing overview, one section per tier, then the comparison matrix.
func buildMarkdown(pkg *models.OfferPackage) string {
	var b strings.Builder

	b.WriteString("# Service Offer\n\n")
	if pkg.Pricing.Narrative != "" {
		b.WriteString(pkg.Pricing.Narrative)
		b.WriteString("\n\n")
	}

	for _, name := range []models.TierName{models.TierStarter, models.TierCore, models.TierPremium} {
		tier := pkg.TierByName(name)
		if tier == nil {
			continue
		}
		writeTierSection(&b, tier)
	}

	if len(pkg.Comparison) > 0 {
		b.WriteString("## Package Comparison\n\n")
		b.WriteString("| Feature | Starter | Core | Premium |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, row := range pkg.Comparison {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				cell(row.Feature), cell(row.Starter), cell(row.Core), cell(row.Premium))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Conversion Outlook\n\nEstimated conversion score: **%d/100**\n", pkg.Assessment.Score)
	return b.String()
}

func writeTierSection(b *strings.Builder, tier *models.Tier) {
	fmt.Fprintf(b, "## %s — $%d/month\n\n", tier.DisplayName, tier.MonthlyPrice)
	fmt.Fprintf(b, "*For %s*\n\n", tier.TargetAudience)
	fmt.Fprintf(b, "**%s**\n\n", tier.Promise)

	if len(tier.Scope) > 0 {
		b.WriteString("### What's included\n\n")
		for _, item := range tier.Scope {
			fmt.Fprintf(b, "- %s\n", item)
		}
		b.WriteString("\n")
	}
	if tier.Timeline != "" {
		fmt.Fprintf(b, "**Timeline:** %s\n\n", tier.Timeline)
	}
	if len(tier.Milestones) > 0 {
		b.WriteString("### Milestones\n\n")
		for i, m := range tier.Milestones {
			fmt.Fprintf(b, "%d. %s\n", i+1, m)
		}
		b.WriteString("\n")
	}
	if tier.Guarantee != "" {
		fmt.Fprintf(b, "**Guarantee:** %s\n\n", tier.Guarantee)
	}
	fmt.Fprintf(b, "**Terms:** %s, ~%d hours/month\n\n", tier.ContractTerm, tier.MonthlyHours)
}

// cell escapes pipes so user text cannot break the markdown table
func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
