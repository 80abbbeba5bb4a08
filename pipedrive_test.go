package pipedrive

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// spyTransport records assembled requests and replies with a canned
// response, so service tests can assert on request shape without a network.
type spyTransport struct {
	requests []*Request
	resp     *Response
}

func (s *spyTransport) Send(_ context.Context, req *Request) (*Response, error) {
	s.requests = append(s.requests, req)
	if s.resp != nil {
		return s.resp, nil
	}
	return &Response{StatusCode: 200, Body: []byte(`{"success": true}`)}, nil
}

func newSpyClient() (*Client, *spyTransport) {
	spy := &spyTransport{}
	return New(WithTransport(spy)), spy
}

func intp(v int) *int           { return &v }
func boolp(v bool) *bool        { return &v }
func strp(v string) *string     { return &v }
func floatp(v float64) *float64 { return &v }

func TestCatalog_UniqueSortedIDs(t *testing.T) {
	t.Parallel()
	ops := Catalog()
	if len(ops) == 0 {
		t.Fatalf("catalog is empty")
	}
	seen := make(map[string]struct{}, len(ops))
	prev := ""
	for _, op := range ops {
		if op.ID == "" {
			t.Fatalf("operation with empty ID: %+v", op)
		}
		if _, dup := seen[op.ID]; dup {
			t.Errorf("duplicate operation id %q", op.ID)
		}
		seen[op.ID] = struct{}{}
		if op.ID < prev {
			t.Errorf("catalog not sorted: %q after %q", op.ID, prev)
		}
		prev = op.ID
		if op.Method == "" || op.Path == "" {
			t.Errorf("%s: missing method or path", op.ID)
		}
	}
}

func TestLookupOperation(t *testing.T) {
	t.Parallel()
	op, ok := LookupOperation("deals.list")
	if !ok {
		t.Fatalf("deals.list not found")
	}
	if op.Method != http.MethodGet || op.Path != "/deals" {
		t.Errorf("descriptor: got %s %s", op.Method, op.Path)
	}
	if _, ok := LookupOperation("no.such.op"); ok {
		t.Errorf("lookup of unknown id succeeded")
	}
}

func TestDeals_Get_URL(t *testing.T) {
	t.Parallel()
	c, spy := newSpyClient()

	res, err := c.Deals.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if res.Empty() {
		t.Fatalf("expected a value")
	}
	req := spy.requests[0]
	if req.Method != http.MethodGet {
		t.Errorf("method: got %q", req.Method)
	}
	if req.URL != DefaultBaseURL+"/deals/42" {
		t.Errorf("url: got %q", req.URL)
	}
}

func TestDeals_List_OmitsNilKeepsFalsy(t *testing.T) {
	t.Parallel()
	c, spy := newSpyClient()

	_, err := c.Deals.List(context.Background(), &DealListOptions{
		Start:      intp(0),
		OwnedByYou: boolp(false),
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	q := spy.requests[0].EncodeQuery()
	if q != "start=0&owned_by_you=false" {
		t.Errorf("query: got %q", q)
	}
}

func TestDeals_Update_FalsyBodyValue(t *testing.T) {
	t.Parallel()
	c, spy := newSpyClient()

	_, err := c.Deals.Update(context.Background(), 7, &DealUpdate{
		Value:  floatp(0),
		Status: strp("lost"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	body := spy.requests[0].Body
	if v, ok := body["value"]; !ok || v != float64(0) {
		t.Errorf("value 0 must be sent: %v present=%v", v, ok)
	}
	if _, ok := body["title"]; ok {
		t.Errorf("nil title must not be sent: %v", body)
	}
}

func TestFiles_Add_NoFileMarker(t *testing.T) {
	t.Parallel()
	c, spy := newSpyClient()

	_, err := c.Files.Add(context.Background(), nil, &FileTarget{DealID: intp(3)})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	req := spy.requests[0]
	if req.Files != nil {
		t.Errorf("expected nil no-file marker, got %v", req.Files)
	}
	if req.ContentType != "multipart/form-data" {
		t.Errorf("content type: got %q", req.ContentType)
	}
	if req.Body["deal_id"] != 3 {
		t.Errorf("deal_id field: got %v", req.Body)
	}
}

func TestWebhooks_Add_RequiredFields(t *testing.T) {
	t.Parallel()
	c, spy := newSpyClient()

	_, err := c.Webhooks.Add(context.Background(), nil)
	var mp *MissingParameterError
	if !errors.As(err, &mp) {
		t.Fatalf("expected MissingParameterError, got %T: %v", err, err)
	}
	if len(spy.requests) != 0 {
		t.Fatalf("expected zero network calls, got %d", len(spy.requests))
	}
}

func TestOAuth_Exchange_UsesOAuthHost(t *testing.T) {
	t.Parallel()
	c, spy := newSpyClient()

	_, err := c.OAuth.Exchange(context.Background(), "c0de", "https://app/cb", "id", "secret")
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	req := spy.requests[0]
	if !strings.HasPrefix(req.URL, DefaultOAuthBaseURL) {
		t.Errorf("url: got %q", req.URL)
	}
	if req.ContentType != "application/x-www-form-urlencoded" {
		t.Errorf("content type: got %q", req.ContentType)
	}
	if req.Body["grant_type"] != "authorization_code" {
		t.Errorf("grant_type: got %v", req.Body["grant_type"])
	}
}

func TestClient_Do_DropsNilParams(t *testing.T) {
	t.Parallel()
	c, spy := newSpyClient()

	op, _ := LookupOperation("persons.list")
	_, err := c.Do(context.Background(), op, map[string]any{
		"start":    0,
		"limit":    nil,
		"first_char": "a",
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	q := spy.requests[0].EncodeQuery()
	if strings.Contains(q, "limit") {
		t.Errorf("nil param leaked into query: %q", q)
	}
	if !strings.Contains(q, "start=0") || !strings.Contains(q, "first_char=a") {
		t.Errorf("query: got %q", q)
	}
}

func TestClient_AgainstHTTPTestServer(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/persons/9":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success": true, "data": {"id": 9, "name": "Ada"}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/persons":
			raw, _ := io.ReadAll(r.Body)
			var body map[string]any
			_ = json.Unmarshal(raw, &body)
			if body["name"] != "Ada" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"success": true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success": false, "error": "not found"}`))
		}
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithAPIToken("tok"))

	res, err := c.Persons.Get(context.Background(), 9)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	data, _ := res.Map()["data"].(map[string]any)
	if data["name"] != "Ada" {
		t.Errorf("person: got %#v", res.Value())
	}

	if _, err := c.Persons.Add(context.Background(), &PersonCreate{Name: "Ada"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	_, err = c.Deals.Get(context.Background(), 1)
	var he *HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %T: %v", err, err)
	}
	if he.StatusCode != http.StatusNotFound {
		t.Errorf("status: got %d", he.StatusCode)
	}
}
