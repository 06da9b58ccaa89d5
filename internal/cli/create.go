package cli

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/yanizio/productform/internal/product"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newCreateCmd(opts *rootOptions) *cobra.Command {
	var d product.Draft

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Validate a product and create it through the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := product.Build(d)
			if err != nil {
				var errs product.ErrorSet
				if errors.As(err, &errs) {
					renderErrors(cmd.OutOrStdout(), "manual", errs)
				}
				return fmt.Errorf("validation failed")
			}

			client, err := opts.client()
			if err != nil {
				return err
			}
			res := client.CreateProduct(cmd.Context(), p)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}
			if !res.Success {
				return fmt.Errorf("create failed: %s", res.Error)
			}
			return nil
		},
	}
	bindDraft(cmd, &d)
	return cmd
}
