package pipedrive

import (
	"context"
	"net/http"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// FilesService covers the /files endpoints. Uploads go through the
// multipart body path; remote-file links are form-encoded.
type FilesService struct {
	client *Client
}

var opFilesList = register(core.Operation{
	ID:      "files.list",
	Method:  http.MethodGet,
	Path:    "/files",
	Summary: "Get all files",
	Tags:    []string{"files"},
	Query: []core.QueryParam{
		core.Q("start"),
		core.Q("limit"),
		core.Q("sort"),
	},
})

// FileListOptions pages and sorts the file list.
type FileListOptions struct {
	Start *int
	Limit *int
	Sort  *string
}

// List returns all files.
func (s *FilesService) List(ctx context.Context, opt *FileListOptions) (Result, error) {
	args := core.Args{}
	if opt != nil {
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
		args.SetString("sort", opt.Sort)
	}
	return s.client.inv.Invoke(ctx, opFilesList, args)
}

var opFilesGet = register(core.Operation{
	ID:         "files.get",
	Method:     http.MethodGet,
	Path:       "/files/{id}",
	Summary:    "Get one file",
	Tags:       []string{"files"},
	PathParams: []string{"id"},
})

// Get returns one file's metadata.
func (s *FilesService) Get(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opFilesGet, args)
}

var opFilesAdd = register(core.Operation{
	ID:          "files.add",
	Method:      http.MethodPost,
	Path:        "/files",
	Summary:     "Add a file",
	Tags:        []string{"files"},
	ContentType: core.ContentMultipart,
	Body: []core.BodyField{
		core.F("deal_id"),
		core.F("person_id"),
		core.F("org_id"),
		core.F("product_id"),
		core.F("activity_id"),
		core.F("lead_id"),
	},
	Files: []core.FileField{
		{Arg: "file", Key: "file"},
	},
})

// FileTarget links an uploaded file to CRM objects. All fields optional.
type FileTarget struct {
	DealID     *int
	PersonID   *int
	OrgID      *int
	ProductID  *int
	ActivityID *int
	LeadID     *string
}

func (t *FileTarget) apply(args core.Args) {
	if t == nil {
		return
	}
	args.SetInt("deal_id", t.DealID)
	args.SetInt("person_id", t.PersonID)
	args.SetInt("org_id", t.OrgID)
	args.SetInt("product_id", t.ProductID)
	args.SetInt("activity_id", t.ActivityID)
	args.SetString("lead_id", t.LeadID)
}

// Add uploads a file and links it to the given targets. A nil file is
// allowed: the request still goes out as multipart with form fields only,
// which the API rejects with a 4xx the caller sees as HTTPError.
func (s *FilesService) Add(ctx context.Context, file *File, target *FileTarget) (Result, error) {
	args := core.Args{}
	args.SetFile("file", file)
	target.apply(args)
	return s.client.inv.Invoke(ctx, opFilesAdd, args)
}

var opFilesAddRemote = register(core.Operation{
	ID:          "files.addRemote",
	Method:      http.MethodPost,
	Path:        "/files/remote",
	Summary:     "Create a remote file and link it to an item",
	Tags:        []string{"files"},
	ContentType: core.ContentForm,
	Body: []core.BodyField{
		core.FReq("file_type"),
		core.FReq("title"),
		core.FReq("item_type"),
		core.FReq("item_id"),
		core.FReq("remote_location"),
	},
})

// RemoteFile describes a remotely hosted file to link.
type RemoteFile struct {
	FileType       string // gdoc, gslides, gsheet, gform, gdraw
	Title          string
	ItemType       string // deal, organization, person
	ItemID         int
	RemoteLocation string // googledrive
}

// AddRemote creates a remote file record and links it to an item.
func (s *FilesService) AddRemote(ctx context.Context, remote *RemoteFile) (Result, error) {
	args := core.Args{}
	if remote != nil {
		args.Set("file_type", remote.FileType)
		args.Set("title", remote.Title)
		args.Set("item_type", remote.ItemType)
		args.Set("item_id", remote.ItemID)
		args.Set("remote_location", remote.RemoteLocation)
	}
	return s.client.inv.Invoke(ctx, opFilesAddRemote, args)
}

var opFilesUpdate = register(core.Operation{
	ID:          "files.update",
	Method:      http.MethodPut,
	Path:        "/files/{id}",
	Summary:     "Update file details",
	Tags:        []string{"files"},
	PathParams:  []string{"id"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.F("name"),
		core.F("description"),
	},
})

// FileUpdate carries the editable metadata of a file.
type FileUpdate struct {
	Name        *string
	Description *string
}

// Update edits a file's metadata.
func (s *FilesService) Update(ctx context.Context, id int, file *FileUpdate) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if file != nil {
		args.SetString("name", file.Name)
		args.SetString("description", file.Description)
	}
	return s.client.inv.Invoke(ctx, opFilesUpdate, args)
}

var opFilesDelete = register(core.Operation{
	ID:         "files.delete",
	Method:     http.MethodDelete,
	Path:       "/files/{id}",
	Summary:    "Delete a file",
	Tags:       []string{"files"},
	PathParams: []string{"id"},
})

// Delete marks a file as deleted.
func (s *FilesService) Delete(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opFilesDelete, args)
}
