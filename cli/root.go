package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LovationAdmin/calc-api/services"

	"github.com/kr/text"
	"github.com/spf13/cobra"
)

// Execute is the main entry point called from cmd/calc.
func Execute() {
	if err := NewRootCmd(services.NewRegistry()).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree around a calculator registry.
func NewRootCmd(registry *services.Registry) *cobra.Command {
	root := &cobra.Command{
		Use:          "calc",
		Short:        "Personal finance calculators",
		Long:         "Run the financial aid, budget bucket, savings and spend comparison calculators from the terminal.",
		SilenceUsage: true,
	}

	root.AddCommand(newListCmd(registry), newRunCmd(registry))
	return root
}

func newListCmd(registry *services.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available calculators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newRunCmd(registry *services.Registry) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "run <calculator> [json]",
		Short: "Run a calculator on a JSON payload",
		Long: "Run a calculator on a JSON payload given as an argument or on stdin.\n" +
			"Invalid or missing fields fall back to their defaults, as with the HTTP API.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			calc, ok := registry.Get(name)
			if !ok {
				return fmt.Errorf("unknown calculator %q (available: %s)",
					name, strings.Join(registry.Names(), ", "))
			}

			var body []byte
			if len(args) == 2 {
				body = []byte(args[1])
			} else {
				in, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading payload: %w", err)
				}
				body = in
			}

			out, err := json.MarshalIndent(calc(services.DecodePayload(body)), "", "  ")
			if err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}

			rendered := string(out) + "\n"
			if prefix != "" {
				rendered = text.Indent(rendered, prefix)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Prefix added to every output line")
	return cmd
}
