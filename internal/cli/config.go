package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Settings captures the client options shared by the call and verify
// commands after merging defaults, environment, config file values, and CLI
// overrides (in that order; later sources win).
type Settings struct {
	APIToken   string
	BaseURL    string
	Output     string
	ConfigPath string
	Verbose    bool
}

func defaultSettings() Settings {
	return Settings{Output: "pretty"}
}

func resolveSettings(cmd *cobra.Command) (*Settings, error) {
	cfg := defaultSettings()

	if tok := strings.TrimSpace(os.Getenv("PIPEDRIVE_API_TOKEN")); tok != "" {
		cfg.APIToken = tok
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	configPath = strings.TrimSpace(configPath)
	if configPath != "" {
		cfg.ConfigPath = configPath
		if err := applySettingsFromFile(&cfg, configPath); err != nil {
			return nil, err
		}
	}

	if err := applySettingsFlagOverrides(cmd.Flags(), &cfg); err != nil {
		return nil, err
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applySettingsFlagOverrides(flags *pflag.FlagSet, cfg *Settings) error {
	if flags.Changed("api-token") {
		value, err := flags.GetString("api-token")
		if err != nil {
			return err
		}
		cfg.APIToken = strings.TrimSpace(value)
	}
	if flags.Changed("base-url") {
		value, err := flags.GetString("base-url")
		if err != nil {
			return err
		}
		cfg.BaseURL = strings.TrimSpace(value)
	}
	if flags.Lookup("output") != nil && flags.Changed("output") {
		value, err := flags.GetString("output")
		if err != nil {
			return err
		}
		cfg.Output = strings.TrimSpace(value)
	}
	if flags.Changed("verbose") {
		value, err := flags.GetBool("verbose")
		if err != nil {
			return err
		}
		cfg.Verbose = value
	}
	return nil
}

func (c *Settings) normalize() {
	c.APIToken = strings.TrimSpace(c.APIToken)
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
}

func (c *Settings) validate() error {
	switch c.Output {
	case "", "pretty", "json":
		if c.Output == "" {
			c.Output = "pretty"
		}
	default:
		return newUsageError(fmt.Sprintf("unsupported --output %q (allowed: pretty, json)", c.Output))
	}
	return nil
}

func applySettingsFromFile(cfg *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return newUsageError(fmt.Sprintf("read config file %q: %v", path, err))
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return newUsageError(fmt.Sprintf("parse config file %q: %v", path, err))
	}

	for key, value := range raw {
		switch normalizeKey(key) {
		case "apitoken":
			str, err := valueAsString(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.APIToken = str
		case "baseurl":
			str, err := valueAsString(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.BaseURL = str
		case "output":
			str, err := valueAsString(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.Output = str
		case "verbose":
			val, err := valueAsBool(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.Verbose = val
		default:
			return newUsageError(fmt.Sprintf("config file %q: unknown field %q", path, key))
		}
	}
	return nil
}

func normalizeKey(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	lowered = strings.ReplaceAll(lowered, "-", "")
	lowered = strings.ReplaceAll(lowered, "_", "")
	return lowered
}

func valueAsString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("expected string, got %T", v)
	}
}

func valueAsBool(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		trimmed := strings.ToLower(strings.TrimSpace(val))
		switch trimmed {
		case "true", "t", "1", "yes", "y":
			return true, nil
		case "false", "f", "0", "no", "n":
			return false, nil
		case "":
			return false, nil
		default:
			return false, fmt.Errorf("invalid boolean value %q", val)
		}
	case nil:
		return false, nil
	default:
		return false, fmt.Errorf("expected boolean, got %T", v)
	}
}
