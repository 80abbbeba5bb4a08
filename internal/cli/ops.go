package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	pipedrive "github.com/mark3labs/pipedrive-go"
)

// OpsConfig captures the catalog listing filters.
type OpsConfig struct {
	Methods     []string
	Tags        []string
	PathPattern string
	Format      string
}

var opsRunner = runOps

func newOpsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List the cataloged Pipedrive operations",
		Long:  "List the cataloged Pipedrive operations with their method, path, and summary, optionally filtered by method, tag, or a path regular expression.",
		Example: strings.TrimSpace(`  pipedrive ops
  pipedrive ops --method GET --tag deals
  pipedrive ops --path '^/persons' --format ids`),
		RunE: func(cmd *cobra.Command, args []string) error {
			methods, err := cmd.Flags().GetStringSlice("method")
			if err != nil {
				return err
			}
			tags, err := cmd.Flags().GetStringSlice("tag")
			if err != nil {
				return err
			}
			pathPattern, err := cmd.Flags().GetString("path")
			if err != nil {
				return err
			}
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}
			cfg := &OpsConfig{
				Methods:     methods,
				Tags:        tags,
				PathPattern: strings.TrimSpace(pathPattern),
				Format:      strings.ToLower(strings.TrimSpace(format)),
			}
			return opsRunner(cmd.Context(), cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringSlice("method", nil, "Only list operations using these HTTP methods")
	flags.StringSlice("tag", nil, "Only list operations carrying one of these tags")
	flags.String("path", "", "Only list operations whose path matches this regular expression")
	flags.String("format", "table", "Output format (table|json|ids)")

	return cmd
}

func runOps(ctx context.Context, cmd *cobra.Command, cfg *OpsConfig) error {
	_ = ctx

	var pathRe *regexp.Regexp
	if cfg.PathPattern != "" {
		re, err := regexp.Compile(cfg.PathPattern)
		if err != nil {
			return newUsageError(fmt.Sprintf("ops: invalid --path pattern %q: %v", cfg.PathPattern, err))
		}
		pathRe = re
	}

	methods := make(map[string]struct{}, len(cfg.Methods))
	for _, m := range cfg.Methods {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m != "" {
			methods[m] = struct{}{}
		}
	}
	tags := make(map[string]struct{}, len(cfg.Tags))
	for _, t := range cfg.Tags {
		t = strings.TrimSpace(t)
		if t != "" {
			tags[t] = struct{}{}
		}
	}

	var selected []pipedrive.Operation
	for _, op := range pipedrive.Catalog() {
		if len(methods) > 0 {
			if _, ok := methods[op.Method]; !ok {
				continue
			}
		}
		if pathRe != nil && !pathRe.MatchString(op.Path) {
			continue
		}
		if len(tags) > 0 && !anyTag(op.Tags, tags) {
			continue
		}
		selected = append(selected, op)
	}

	out := cmd.OutOrStdout()
	switch cfg.Format {
	case "", "table":
		w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
		for _, op := range selected {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", op.ID, op.Method, op.Path, op.Summary)
		}
		return w.Flush()
	case "ids":
		for _, op := range selected {
			fmt.Fprintln(out, op.ID)
		}
		return nil
	case "json":
		type entry struct {
			ID      string   `json:"id"`
			Method  string   `json:"method"`
			Path    string   `json:"path"`
			Summary string   `json:"summary,omitempty"`
			Tags    []string `json:"tags,omitempty"`
		}
		entries := make([]entry, 0, len(selected))
		for _, op := range selected {
			entries = append(entries, entry{ID: op.ID, Method: op.Method, Path: op.Path, Summary: op.Summary, Tags: op.Tags})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("ops: encode catalog: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	default:
		return newUsageError(fmt.Sprintf("ops: unsupported --format %q (allowed: table, json, ids)", cfg.Format))
	}
}

func anyTag(have []string, want map[string]struct{}) bool {
	for _, t := range have {
		if _, ok := want[t]; ok {
			return true
		}
	}
	return false
}
