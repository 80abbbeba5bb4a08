package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pipedrive "github.com/mark3labs/pipedrive-go"
)

// CallConfig captures everything one invocation needs after config merging.
type CallConfig struct {
	Settings
	OperationID string
	Params      map[string]any
}

var callRunner = runCall

func newCallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <operation-id>",
		Short: "Invoke a cataloged Pipedrive operation",
		Long: "Invoke a cataloged Pipedrive operation by ID. " +
			"Arguments are passed as repeated --param name=value pairs; values are decoded as JSON when they parse, " +
			"kept as plain strings otherwise, and @path reads a file for upload.",
		Example: strings.TrimSpace(`  pipedrive call deals.get --param id=42
  pipedrive call deals.search --param term=acme --param exact_match=false
  pipedrive call files.add --param deal_id=42 --param file=@./contract.pdf`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			pairs, err := cmd.Flags().GetStringArray("param")
			if err != nil {
				return err
			}
			params := make(map[string]any, len(pairs))
			for _, pair := range pairs {
				name, value, err := parseParam(pair)
				if err != nil {
					return err
				}
				params[name] = value
			}
			cfg := &CallConfig{
				Settings:    *settings,
				OperationID: strings.TrimSpace(args[0]),
				Params:      params,
			}
			return callRunner(cmd.Context(), cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringArray("param", nil, "Operation argument as name=value (repeatable)")
	flags.String("api-token", "", "Pipedrive API token (overrides config and PIPEDRIVE_API_TOKEN)")
	flags.String("base-url", "", "API base URL (defaults to the public Pipedrive endpoint)")
	flags.String("output", "", "Output format (pretty|json); defaults to pretty")

	return cmd
}

// parseParam splits a name=value pair and decodes the value: @path loads a
// file, values that parse as JSON become typed values, everything else stays
// a string.
func parseParam(pair string) (string, any, error) {
	name, raw, found := strings.Cut(pair, "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return "", nil, newUsageError(fmt.Sprintf("call: malformed --param %q (expected name=value)", pair))
	}

	if strings.HasPrefix(raw, "@") {
		path := strings.TrimPrefix(raw, "@")
		content, err := os.ReadFile(path)
		if err != nil {
			return "", nil, newUsageError(fmt.Sprintf("call: read %q for --param %s: %v", path, name, err))
		}
		return name, pipedrive.File{Name: filepath.Base(path), Content: content}, nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		return name, decoded, nil
	}
	return name, raw, nil
}

func runCall(ctx context.Context, cmd *cobra.Command, cfg *CallConfig) error {
	op, ok := pipedrive.LookupOperation(cfg.OperationID)
	if !ok {
		return newUsageError(fmt.Sprintf("call: unknown operation %q (run \"pipedrive ops\" to list the catalog)", cfg.OperationID))
	}

	opts := []pipedrive.Option{pipedrive.WithLogger(newLogger(cfg.Verbose))}
	if cfg.BaseURL != "" {
		opts = append(opts, pipedrive.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIToken != "" {
		opts = append(opts, pipedrive.WithAPIToken(cfg.APIToken))
	}
	client := pipedrive.New(opts...)

	res, err := client.Do(ctx, op, cfg.Params)
	if err != nil {
		var missing *pipedrive.MissingParameterError
		if errors.As(err, &missing) {
			return newUsageError(fmt.Sprintf("call: %v (pass it with --param %s=...)", missing, missing.Param))
		}
		var httpErr *pipedrive.HTTPError
		if errors.As(err, &httpErr) {
			return fmt.Errorf("call: %w", httpErr)
		}
		return err
	}

	return printResult(cmd, cfg.Output, res)
}

func printResult(cmd *cobra.Command, output string, res pipedrive.Result) error {
	if res.Empty() {
		if output == "json" {
			fmt.Fprintln(cmd.OutOrStdout(), "null")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "(no content)")
		}
		return nil
	}

	var data []byte
	var err error
	if output == "json" {
		data, err = json.Marshal(res.Value())
	} else {
		data, err = json.MarshalIndent(res.Value(), "", "  ")
	}
	if err != nil {
		return fmt.Errorf("call: encode response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
