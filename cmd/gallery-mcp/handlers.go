package main

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/gallery-mcp/internal/types"
	"github.com/taigrr/gallery-mcp/internal/uri"
)

func handleListDirectory(ctx context.Context, req *mcp.CallToolRequest, input ListDirectoryInput) (*mcp.CallToolResult, ListDirectoryOutput, error) {
	path := strings.TrimSpace(input.Path)
	listing, err := fileSystem.ListImages(path)
	if err != nil {
		debugf("list_directory_images %q: %v", path, err)
		return &mcp.CallToolResult{IsError: true}, ListDirectoryOutput{}, err
	}

	output := ListDirectoryOutput{
		Root:  listing.Root,
		Paths: listing.Paths,
		Count: len(listing.Paths),
	}

	if input.URIs {
		output.URIs = make([]string, len(listing.Paths))
		for i, p := range listing.Paths {
			output.URIs[i] = uri.FileURI(p)
		}
	}

	debugf("list_directory_images %q: %d images", path, output.Count)
	return nil, output, nil
}

func handleListArchive(ctx context.Context, req *mcp.CallToolRequest, input ListArchiveInput) (*mcp.CallToolResult, ListArchiveOutput, error) {
	path := strings.TrimSpace(input.Path)
	listing, err := archiveService.List(types.ArchiveListParams{
		Path:    path,
		Natural: input.Natural,
	})
	if err != nil {
		debugf("list_archive_images %q: %v", path, err)
		return &mcp.CallToolResult{IsError: true}, ListArchiveOutput{}, err
	}

	debugf("list_archive_images %q: %d entries", path, len(listing.Entries))
	return nil, ListArchiveOutput{
		Archive: listing.Archive,
		Entries: listing.Entries,
		Count:   len(listing.Entries),
	}, nil
}

func handleReadArchive(ctx context.Context, req *mcp.CallToolRequest, input ReadArchiveInput) (*mcp.CallToolResult, ReadArchiveOutput, error) {
	// Entry names are matched exactly, so only the archive path is trimmed.
	path := strings.TrimSpace(input.Path)
	mimeType, data, err := archiveService.Extract(path, input.Entry)
	if err != nil {
		debugf("read_archive_image %q %q: %v", path, input.Entry, err)
		return &mcp.CallToolResult{IsError: true}, ReadArchiveOutput{}, err
	}

	output := ReadArchiveOutput{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}
	if input.DataURL {
		output.DataURL = uri.DataURL(output.MIMEType, output.Data)
	}

	debugf("read_archive_image %q %q: %s, %d bytes", path, input.Entry, mimeType, len(data))

	// Hosts that render images get the entry as image content; the
	// structured output carries the same payload either way.
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, output, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.ImageContent{Data: data, MIMEType: mimeType}},
	}, output, nil
}
