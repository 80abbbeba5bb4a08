package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	pipedrive "github.com/mark3labs/pipedrive-go"
)

func TestParseParam(t *testing.T) {
	t.Parallel()
	cases := []struct {
		pair string
		name string
		want any
	}{
		{"term=acme", "term", "acme"},
		{"id=42", "id", float64(42)},
		{"exact_match=false", "exact_match", false},
		{"start=0", "start", float64(0)},
		{"label=", "label", ""},
		{`value={"amount":100,"currency":"EUR"}`, "value", map[string]any{"amount": float64(100), "currency": "EUR"}},
		{"note=it costs $5", "note", "it costs $5"},
	}
	for _, tc := range cases {
		name, value, err := parseParam(tc.pair)
		if err != nil {
			t.Errorf("parseParam(%q): %v", tc.pair, err)
			continue
		}
		if name != tc.name {
			t.Errorf("parseParam(%q): name %q, want %q", tc.pair, name, tc.name)
		}
		switch want := tc.want.(type) {
		case map[string]any:
			got, ok := value.(map[string]any)
			if !ok || len(got) != len(want) {
				t.Errorf("parseParam(%q): got %#v", tc.pair, value)
			}
		default:
			if value != tc.want {
				t.Errorf("parseParam(%q): got %#v, want %#v", tc.pair, value, tc.want)
			}
		}
	}
}

func TestParseParam_File(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "contract.pdf")
	if err := os.WriteFile(path, []byte("pdf bytes"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	name, value, err := parseParam("file=@" + path)
	if err != nil {
		t.Fatalf("parseParam: %v", err)
	}
	if name != "file" {
		t.Errorf("name: %q", name)
	}
	f, ok := value.(pipedrive.File)
	if !ok {
		t.Fatalf("value type: %T", value)
	}
	if f.Name != "contract.pdf" || string(f.Content) != "pdf bytes" {
		t.Errorf("file: %+v", f)
	}
}

func TestParseParam_Malformed(t *testing.T) {
	t.Parallel()
	for _, pair := range []string{"noequals", "=value", "file=@/does/not/exist"} {
		if _, _, err := parseParam(pair); err == nil {
			t.Errorf("parseParam(%q): expected error", pair)
		}
	}
}

func TestCall_ConfigMerging(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "pipedrive.yaml")
	content := "apiToken: from-file\nbaseUrl: https://file.example/v1\noutput: json\n"
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PIPEDRIVE_API_TOKEN", "from-env")

	var got *CallConfig
	restore := callRunner
	callRunner = func(ctx context.Context, cmd *cobra.Command, cfg *CallConfig) error {
		got = cfg
		return nil
	}
	defer func() { callRunner = restore }()

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"call", "users.me", "--config", configPath, "--api-token", "from-flag"})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got == nil {
		t.Fatalf("runner not invoked")
	}
	if got.APIToken != "from-flag" {
		t.Errorf("api token: %q (flag should win over file and env)", got.APIToken)
	}
	if got.BaseURL != "https://file.example/v1" {
		t.Errorf("base url: %q", got.BaseURL)
	}
	if got.Output != "json" {
		t.Errorf("output: %q", got.Output)
	}
	if got.OperationID != "users.me" {
		t.Errorf("operation id: %q", got.OperationID)
	}
}

func TestCall_UnknownOperation(t *testing.T) {
	t.Parallel()
	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"call", "deals.doesNotExist"})

	err := root.Execute()
	if err == nil {
		t.Fatalf("expected error for unknown operation")
	}
	if _, ok := err.(usageError); !ok {
		t.Fatalf("expected usage error, got %T: %v", err, err)
	}
}

func TestCall_MissingPathParam(t *testing.T) {
	t.Parallel()
	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"call", "deals.get"})

	err := root.Execute()
	if err == nil {
		t.Fatalf("expected error for missing id")
	}
	if _, ok := err.(usageError); !ok {
		t.Fatalf("expected usage error, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "id") {
		t.Fatalf("error should name the missing parameter: %v", err)
	}
}

func TestCall_AgainstServer(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/deals/42" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("api_token") != "tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":42,"title":"Big deal"}}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{
		"call", "deals.get",
		"--param", "id=42",
		"--base-url", srv.URL,
		"--api-token", "tok",
		"--output", "json",
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, `"Big deal"`) || !strings.Contains(s, `"success":true`) {
		t.Fatalf("unexpected output: %s", s)
	}
}
