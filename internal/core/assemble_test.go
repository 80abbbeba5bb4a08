package core

import (
	"errors"
	"testing"
)

func TestAssemble_PathSubstitution(t *testing.T) {
	t.Parallel()
	op := Operation{
		ID:         "deals.get",
		Method:     "GET",
		Path:       "/deals/{id}",
		PathParams: []string{"id"},
	}

	args := Args{}
	args.Set("id", 42)

	req, err := Assemble(op, args)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if req.Path != "/deals/42" {
		t.Errorf("path: got %q", req.Path)
	}
}

func TestAssemble_MissingPathParam(t *testing.T) {
	t.Parallel()
	op := Operation{
		ID:         "deals.get",
		Method:     "GET",
		Path:       "/deals/{id}",
		PathParams: []string{"id"},
	}

	_, err := Assemble(op, Args{})
	var mp *MissingParameterError
	if !errors.As(err, &mp) {
		t.Fatalf("expected MissingParameterError, got %T: %v", err, err)
	}
	if mp.Param != "id" {
		t.Errorf("param: got %q", mp.Param)
	}
	if mp.Op != "deals.get" {
		t.Errorf("op: got %q", mp.Op)
	}
}

func TestAssemble_NilPathParam(t *testing.T) {
	t.Parallel()
	op := Operation{
		ID:         "deals.get",
		Method:     "GET",
		Path:       "/deals/{id}",
		PathParams: []string{"id"},
	}

	_, err := Assemble(op, Args{"id": nil})
	var mp *MissingParameterError
	if !errors.As(err, &mp) {
		t.Fatalf("expected MissingParameterError, got %T: %v", err, err)
	}
}

func TestAssemble_QueryOrderAndRenaming(t *testing.T) {
	t.Parallel()
	op := Operation{
		ID:     "channels.list",
		Method: "GET",
		Path:   "/channels",
		Query: []QueryParam{
			{Arg: "channel_id", Key: "channel-id"},
			Q("start"),
			Q("limit"),
		},
	}

	args := Args{}
	args.Set("limit", 100)
	args.Set("channel_id", 5)
	// start deliberately absent

	req, err := Assemble(op, args)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	want := []QueryPair{
		{Key: "channel-id", Value: "5"},
		{Key: "limit", Value: "100"},
	}
	if len(req.Query) != len(want) {
		t.Fatalf("query pairs: got %v", req.Query)
	}
	for i, p := range want {
		if req.Query[i] != p {
			t.Errorf("pair %d: got %v, want %v", i, req.Query[i], p)
		}
	}
	if got := req.EncodeQuery(); got != "channel-id=5&limit=100" {
		t.Errorf("encoded query: got %q", got)
	}
}

func TestAssemble_FalsyValuesAreKept(t *testing.T) {
	t.Parallel()
	op := Operation{
		ID:     "items.list",
		Method: "GET",
		Path:   "/items",
		Query: []QueryParam{
			Q("start"),
			Q("exact_match"),
			Q("term"),
			Q("cursor"),
		},
	}

	args := Args{}
	args.Set("start", 0)
	args.Set("exact_match", false)
	args.Set("term", "")
	// cursor absent

	req, err := Assemble(op, args)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if got := req.EncodeQuery(); got != "start=0&exact_match=false&term=" {
		t.Errorf("encoded query: got %q", got)
	}
}

func TestAssemble_BodyOmitsAbsentKeepsFalsy(t *testing.T) {
	t.Parallel()
	op := Operation{
		ID:          "deals.update",
		Method:      "PUT",
		Path:        "/deals/{id}",
		PathParams:  []string{"id"},
		ContentType: ContentJSON,
		Body: []BodyField{
			F("title"),
			F("value"),
			F("active"),
			F("currency"),
		},
	}

	args := Args{}
	args.Set("id", 7)
	args.Set("value", 0)
	args.Set("active", false)
	// title and currency absent

	req, err := Assemble(op, args)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(req.Body) != 2 {
		t.Fatalf("body: got %v", req.Body)
	}
	if v, ok := req.Body["value"]; !ok || v != 0 {
		t.Errorf("body value: got %v present=%v", v, ok)
	}
	if v, ok := req.Body["active"]; !ok || v != false {
		t.Errorf("body active: got %v present=%v", v, ok)
	}
	if _, ok := req.Body["title"]; ok {
		t.Errorf("body title should be omitted")
	}
}

func TestAssemble_RequiredBodyField(t *testing.T) {
	t.Parallel()
	op := Operation{
		ID:          "deals.add",
		Method:      "POST",
		Path:        "/deals",
		ContentType: ContentJSON,
		Body: []BodyField{
			FReq("title"),
			F("value"),
		},
	}

	_, err := Assemble(op, Args{})
	var mp *MissingParameterError
	if !errors.As(err, &mp) {
		t.Fatalf("expected MissingParameterError, got %T: %v", err, err)
	}
	if mp.Param != "title" {
		t.Errorf("param: got %q", mp.Param)
	}
}

func TestAssemble_MultipartNoFileMarker(t *testing.T) {
	t.Parallel()
	op := Operation{
		ID:          "files.add",
		Method:      "POST",
		Path:        "/files",
		ContentType: ContentMultipart,
		Body:        []BodyField{F("deal_id")},
		Files:       []FileField{{Arg: "file", Key: "file"}},
	}

	args := Args{}
	args.Set("deal_id", 3)

	req, err := Assemble(op, args)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if req.Files != nil {
		t.Errorf("files: expected nil no-file marker, got %v", req.Files)
	}
	if req.ContentType != ContentMultipart {
		t.Errorf("content type: got %q", req.ContentType)
	}
}

func TestAssemble_MultipartWithFile(t *testing.T) {
	t.Parallel()
	op := Operation{
		ID:          "files.add",
		Method:      "POST",
		Path:        "/files",
		ContentType: ContentMultipart,
		Files:       []FileField{{Arg: "file", Key: "file"}},
	}

	args := Args{}
	args.SetFile("file", &File{Name: "report.pdf", Content: []byte("%PDF")})

	req, err := Assemble(op, args)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	f, ok := req.Files["file"]
	if !ok {
		t.Fatalf("files: missing file entry: %v", req.Files)
	}
	if f.Name != "report.pdf" {
		t.Errorf("file name: got %q", f.Name)
	}
}

func TestAssemble_MultipartFileValue(t *testing.T) {
	t.Parallel()
	op := Operation{
		ID:          "files.add",
		Method:      "POST",
		Path:        "/files",
		ContentType: ContentMultipart,
		Files:       []FileField{{Arg: "file", Key: "file"}},
	}

	// A File arriving by value, as free-form argument maps supply it, must
	// land in the request the same way a *File does.
	args := Args{}
	args.SetAny("file", File{Name: "report.pdf", Content: []byte("%PDF")})

	req, err := Assemble(op, args)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	f, ok := req.Files["file"]
	if !ok {
		t.Fatalf("files: missing file entry: %v", req.Files)
	}
	if f.Name != "report.pdf" || string(f.Content) != "%PDF" {
		t.Errorf("file: %+v", f)
	}
}

func TestStringify(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   any
		want string
	}{
		{42, "42"},
		{int64(9000000000), "9000000000"},
		{true, "true"},
		{false, "false"},
		{"x y", "x y"},
		{3.5, "3.5"},
		{3.0, "3"},
		{[]int{1, 2, 3}, "1,2,3"},
		{[]string{"a", "b"}, "a,b"},
	}
	for _, tc := range cases {
		if got := Stringify(tc.in); got != tc.want {
			t.Errorf("stringify(%v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestArgs_SettersSkipNil(t *testing.T) {
	t.Parallel()
	args := Args{}
	args.SetString("a", nil)
	args.SetInt("b", nil)
	args.SetBool("c", nil)
	args.SetFloat("d", nil)
	args.SetFile("e", nil)
	if len(args) != 0 {
		t.Fatalf("args: expected empty, got %v", args)
	}

	zero := 0
	no := false
	empty := ""
	args.SetInt("b", &zero)
	args.SetBool("c", &no)
	args.SetString("a", &empty)
	if len(args) != 3 {
		t.Fatalf("args: got %v", args)
	}
	if args["b"] != 0 || args["c"] != false || args["a"] != "" {
		t.Errorf("falsy values mangled: %v", args)
	}
}
