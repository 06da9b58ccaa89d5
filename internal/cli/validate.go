package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanizio/productform/internal/form"
	"github.com/yanizio/productform/internal/product"
)

func newValidateCmd() *cobra.Command {
	var d product.Draft

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a product against both validation strategies",
		Long:  "Run the schema validator and the manual rule table on the given fields and print every error.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := form.NewSchemaValidator(product.Rules)
			if err != nil {
				return fmt.Errorf("building schema: %w", err)
			}

			out := cmd.OutOrStdout()
			schemaErrs := schema.Validate(d)
			manualErrs := product.Rules.Validate(d)
			renderErrors(out, "schema", schemaErrs)
			renderErrors(out, "manual", manualErrs)

			if !manualErrs.Empty() || !schemaErrs.Empty() {
				return fmt.Errorf("validation failed: %d field(s)", len(manualErrs))
			}
			return nil
		},
	}
	bindDraft(cmd, &d)
	return cmd
}
