package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// ListDirectoryInput contains parameters for listing images in a directory.
	ListDirectoryInput struct {
		Path string `json:"path" jsonschema:"Directory to scan. Images up to three levels below it are listed"`
		URIs bool   `json:"uris,omitempty" jsonschema:"Also return file:// URIs for each path (default: false)"`
	}

	// ListDirectoryOutput contains the image paths found under a directory.
	ListDirectoryOutput struct {
		Root  string   `json:"root"`
		Paths []string `json:"paths"`
		URIs  []string `json:"uris,omitempty"`
		Count int      `json:"count"`
	}

	// ListArchiveInput contains parameters for listing images in a zip archive.
	ListArchiveInput struct {
		Path    string `json:"path" jsonschema:"Path to a zip or cbz archive"`
		Natural bool   `json:"natural,omitempty" jsonschema:"Order page2 before page10, ignoring case (default: plain byte order)"`
	}

	// ListArchiveOutput contains the image entry names in an archive.
	ListArchiveOutput struct {
		Archive string   `json:"archive"`
		Entries []string `json:"entries"`
		Count   int      `json:"count"`
	}

	// ReadArchiveInput contains parameters for extracting one archive entry.
	ReadArchiveInput struct {
		Path    string `json:"path" jsonschema:"Path to a zip or cbz archive"`
		Entry   string `json:"entry" jsonschema:"Exact entry name as returned by list_archive_images"`
		DataURL bool   `json:"dataUrl,omitempty" jsonschema:"Also return a data: URL (default: false)"`
	}

	// ReadArchiveOutput contains an extracted entry.
	ReadArchiveOutput struct {
		MIMEType string `json:"mimeType"`
		Data     string `json:"data"`
		DataURL  string `json:"dataUrl,omitempty"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_directory_images",
		Description: "List image files (jpg, jpeg, png, gif, webp, avif, bmp) from one to three levels below a directory. Returns absolute paths sorted by file name, ignoring case.",
	}, handleListDirectory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_archive_images",
		Description: "List image entries in a zip archive. Returns full entry names sorted in byte order (or natural order with natural=true). Directory entries are skipped.",
	}, handleListArchive)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_archive_image",
		Description: "Extract one entry from a zip archive. Returns its MIME type, inferred from the extension, and its bytes as standard base64.",
	}, handleReadArchive)
}
