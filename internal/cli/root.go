// Package cli implements productctl, a command-line client for the product
// rules and the product API.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanizio/productform/internal/config"
	"github.com/yanizio/productform/internal/productapi"
)

var (
	version = "dev"
	commit  = "none"
)

type rootOptions struct {
	baseURL string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "productctl",
		Short:         "Validate and create products from the command line",
		Long:          "productctl runs the product validation rules locally and talks to the product API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "",
		"product API base URL (default: api.base_url from config)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newCreateCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// client resolves the base URL from the flag, then config.
func (o *rootOptions) client() (*productapi.Client, error) {
	base := o.baseURL
	if base == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		base = cfg.API.BaseURL
	}
	if base == "" {
		return nil, fmt.Errorf("no API base URL: pass --base-url or set api.base_url")
	}
	return productapi.New(base)
}
