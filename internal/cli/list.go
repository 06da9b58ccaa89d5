package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products held by the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			res := client.FetchProducts(cmd.Context())
			if !res.Success {
				return fmt.Errorf("fetch failed: %s", res.Error)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res.Data)
			}
			if len(res.Data) == 0 {
				fmt.Fprintln(out, dimStyle.Render("No Products Yet"))
				return nil
			}
			for _, p := range res.Data {
				renderProduct(out, p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	return cmd
}
