package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanizio/productform/internal/product"
)

// bindDraft registers one flag per product field.
func bindDraft(cmd *cobra.Command, d *product.Draft) {
	f := cmd.Flags()
	f.StringVar(&d.Name, "name", "", "product name")
	f.StringVar(&d.Description, "description", "", "product description")
	f.StringVar(&d.Price, "price", "", "price, e.g. 9.99")
	f.StringVar(&d.Category, "category", "", "one of: "+strings.Join(product.CategoryNames(), ", "))
	f.StringVar(&d.SKU, "sku", "", "optional SKU")
	f.StringVar(&d.StockQuantity, "stock", "", "stock quantity")
	f.StringVar(&d.ImageURL, "image-url", "", "optional image URL")
}
