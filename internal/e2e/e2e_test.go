package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/mark3labs/pipedrive-go/internal/cli"
)

// fakePipedrive implements just enough of the Pipedrive v1 surface to push a
// call through the whole stack: CLI parsing, descriptor assembly, transport,
// and response normalization.
func fakePipedrive(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, body string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}

	mux.HandleFunc("/deals", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			q := r.URL.Query()
			if q.Get("api_token") == "" {
				writeJSON(w, http.StatusUnauthorized, `{"success":false,"error":"unauthorized"}`)
				return
			}
			writeJSON(w, http.StatusOK, fmt.Sprintf(
				`{"success":true,"data":[{"id":1,"title":"First"}],"start":%q}`, q.Get("start")))
		case http.MethodPost:
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeJSON(w, http.StatusBadRequest, `{"success":false}`)
				return
			}
			if _, ok := body["title"]; !ok {
				writeJSON(w, http.StatusBadRequest, `{"success":false,"error":"title is required"}`)
				return
			}
			writeJSON(w, http.StatusCreated, `{"success":true,"data":{"id":7,"title":"Created"}}`)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/deals/7", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"id":7,"title":"Created"}}`)
	})

	mux.HandleFunc("/files", func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
			writeJSON(w, http.StatusUnsupportedMediaType, `{"success":false}`)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, `{"success":false}`)
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, `{"success":false,"error":"file missing"}`)
			return
		}
		defer f.Close()
		writeJSON(w, http.StatusCreated, fmt.Sprintf(
			`{"success":true,"data":{"id":3,"name":%q,"deal_id":%s}}`,
			hdr.Filename, r.FormValue("deal_id")))
	})

	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		// Truncated payload: the client reports an empty result, not an error.
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"id":`)
	})

	return httptest.NewServer(mux)
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestE2E_ListAndCreate(t *testing.T) {
	t.Parallel()
	srv := fakePipedrive(t)
	defer srv.Close()

	out, err := runCLI(t,
		"call", "deals.list",
		"--param", "start=0",
		"--base-url", srv.URL,
		"--api-token", "tok",
		"--output", "json",
	)
	if err != nil {
		t.Fatalf("deals.list: %v", err)
	}
	if !strings.Contains(out, `"First"`) {
		t.Fatalf("list output: %s", out)
	}
	// falsy start must survive nil-omission and reach the wire
	if !strings.Contains(out, `"start":"0"`) {
		t.Fatalf("start=0 did not reach the server: %s", out)
	}

	out, err = runCLI(t,
		"call", "deals.add",
		"--param", "title=Created",
		"--base-url", srv.URL,
		"--api-token", "tok",
		"--output", "json",
	)
	if err != nil {
		t.Fatalf("deals.add: %v", err)
	}
	if !strings.Contains(out, `"id":7`) {
		t.Fatalf("add output: %s", out)
	}
}

func TestE2E_DeleteNoContent(t *testing.T) {
	t.Parallel()
	srv := fakePipedrive(t)
	defer srv.Close()

	out, err := runCLI(t,
		"call", "deals.delete",
		"--param", "id=7",
		"--base-url", srv.URL,
		"--api-token", "tok",
	)
	if err != nil {
		t.Fatalf("deals.delete: %v", err)
	}
	if !strings.Contains(out, "no content") {
		t.Fatalf("delete output: %s", out)
	}
}

func TestE2E_MultipartUpload(t *testing.T) {
	t.Parallel()
	srv := fakePipedrive(t)
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "contract.pdf")
	if err := os.WriteFile(path, []byte("pdf bytes"), 0o600); err != nil {
		t.Fatalf("write upload source: %v", err)
	}

	out, err := runCLI(t,
		"call", "files.add",
		"--param", "file=@"+path,
		"--param", "deal_id=7",
		"--base-url", srv.URL,
		"--api-token", "tok",
		"--output", "json",
	)
	if err != nil {
		t.Fatalf("files.add: %v", err)
	}
	if !strings.Contains(out, `"contract.pdf"`) || !strings.Contains(out, `"deal_id":7`) {
		t.Fatalf("upload output: %s", out)
	}
}

func TestE2E_MalformedSuccessBody(t *testing.T) {
	t.Parallel()
	srv := fakePipedrive(t)
	defer srv.Close()

	out, err := runCLI(t,
		"call", "users.me",
		"--base-url", srv.URL,
		"--api-token", "tok",
		"--output", "json",
	)
	if err != nil {
		t.Fatalf("users.me: %v", err)
	}
	if strings.TrimSpace(out) != "null" {
		t.Fatalf("malformed body should yield an empty result: %q", out)
	}
}

func TestE2E_ErrorStatus(t *testing.T) {
	t.Parallel()
	srv := fakePipedrive(t)
	defer srv.Close()

	_, err := runCLI(t,
		"call", "deals.list",
		"--base-url", srv.URL,
		"--output", "json",
	)
	if err == nil {
		t.Fatalf("expected error for unauthorized call")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Fatalf("error should carry the HTTP status: %v", err)
	}
}
