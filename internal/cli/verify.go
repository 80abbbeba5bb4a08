package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	pipedrive "github.com/mark3labs/pipedrive-go"
	"github.com/mark3labs/pipedrive-go/internal/openapi"
)

// VerifyConfig captures the verify command inputs.
type VerifyConfig struct {
	Input string
}

var verifyRunner = runVerify

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the operation catalog against an OpenAPI document",
		Long: "Cross-check the built-in operation catalog against Pipedrive's published OpenAPI document: " +
			"every cataloged method+path must exist with matching path parameters and known query parameters.",
		Example: strings.TrimSpace(`  pipedrive verify --input ./pipedrive-openapi.yaml
  pipedrive verify --input https://developers.pipedrive.com/docs/api/v1/openapi.yaml`),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := cmd.Flags().GetString("input")
			if err != nil {
				return err
			}
			cfg := &VerifyConfig{Input: strings.TrimSpace(input)}
			if cfg.Input == "" {
				return newUsageError("verify: --input is required (path or URL of the OpenAPI document)")
			}
			return verifyRunner(cmd.Context(), cmd, cfg)
		},
	}

	cmd.Flags().String("input", "", "Path or URL to the OpenAPI/Swagger document")

	return cmd
}

func runVerify(ctx context.Context, cmd *cobra.Command, cfg *VerifyConfig) error {
	doc, err := openapi.Load(ctx, cfg.Input)
	if err != nil {
		var docErr *openapi.DocError
		if errors.As(err, &docErr) {
			msg := docErr.Message
			if docErr.Location != "" {
				msg = fmt.Sprintf("%s\nLocation: %s", msg, docErr.Location)
			}
			return newUsageError("verify: " + msg)
		}
		return err
	}

	mismatches, err := openapi.Verify(ctx, pipedrive.Catalog(), doc)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(mismatches) == 0 {
		fmt.Fprintf(out, "OK: %d operations match the document\n", len(pipedrive.Catalog()))
		return nil
	}
	for _, m := range mismatches {
		fmt.Fprintln(out, m.String())
	}
	return fmt.Errorf("verify: %d mismatches", len(mismatches))
}
