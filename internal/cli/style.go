package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yanizio/productform/internal/product"
)

var (
	accent  = lipgloss.Color("#2563EB") // blue
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#16A34A") // green
	danger  = lipgloss.Color("#DC2626") // red
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	priceStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
	fieldStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
)

// ErrorLine renders err for stderr.
func ErrorLine(err error) string {
	return failStyle.Render("error: ") + err.Error()
}

func renderErrors(w io.Writer, label string, errs product.ErrorSet) {
	if errs.Empty() {
		fmt.Fprintf(w, "%s %s\n", passStyle.Render("✓"), label)
		return
	}
	fmt.Fprintf(w, "%s %s\n", failStyle.Render("✗"), label)
	for _, f := range errs.Fields() {
		fmt.Fprintf(w, "    %s %s\n", fieldStyle.Render(string(f)+":"), errs.Message(f))
	}
}

func renderProduct(w io.Writer, p product.Product) {
	fmt.Fprintf(w, "%s  %s\n", titleStyle.Render(p.Name), priceStyle.Render("$"+p.PriceLabel()))
	if p.Description != "" {
		fmt.Fprintf(w, "  %s\n", dimStyle.Render(p.Description))
	}
	meta := []string{string(p.Category)}
	if p.HasSKU() {
		meta = append(meta, p.SKUValue())
	}
	meta = append(meta, fmt.Sprintf("%d in stock", p.StockQuantity))
	if p.HasImage() {
		meta = append(meta, "Has image")
	}
	fmt.Fprintf(w, "  %s\n", dimStyle.Render(strings.Join(meta, " · ")))
}
