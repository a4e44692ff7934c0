// Package types defines all data structures used across the MCP server.
package types

type (
	// DirectoryListing contains the image files found under a directory.
	DirectoryListing struct {
		Root  string   `json:"root" yaml:"root"`
		Paths []string `json:"paths" yaml:"paths"`
	}

	// ArchiveListing contains the image entries found in a zip archive.
	ArchiveListing struct {
		Archive string   `json:"archive" yaml:"archive"`
		Entries []string `json:"entries" yaml:"entries"`
	}

	// ArchiveListParams contains parameters for listing an archive.
	ArchiveListParams struct {
		Path    string `json:"path"`
		Natural bool   `json:"natural,omitempty"` // numeric-aware, case-insensitive ordering
	}

	// Payload is a single extracted archive entry.
	Payload struct {
		MIMEType string `json:"mimeType" yaml:"mimeType"`
		Data     string `json:"data" yaml:"data"` // standard base64, padded
	}

	// RootFilterConfig restricts which filesystem locations may be read.
	RootFilterConfig struct {
		AllowedRoots []string `json:"allowedRoots" yaml:"allowedRoots"`
	}
)
