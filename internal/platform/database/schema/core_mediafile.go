package schema

// CoreMediaFileTable represents the 'core.mediafile' table
type CoreMediaFileTable struct {
	Table     string
	ID        string
	SHA256    string
	SizeBytes string
	MimeType  string
	Data      string
	CreatedAt string
}

// CoreMediaFile is the schema definition for core.mediafile
var CoreMediaFile = CoreMediaFileTable{
	Table:     "core.mediafile",
	ID:        "id",
	SHA256:    "sha256",
	SizeBytes: "sizebytes",
	MimeType:  "mimetype",
	Data:      "data",
	CreatedAt: "createdat",
}
