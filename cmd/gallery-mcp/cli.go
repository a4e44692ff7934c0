package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/taigrr/gallery-mcp/internal/mediatype"
	"github.com/taigrr/gallery-mcp/internal/types"
	"github.com/taigrr/gallery-mcp/internal/uri"
	"gopkg.in/yaml.v3"
)

var (
	colorHeader = color.New(color.FgCyan, color.Bold)
	colorDim    = color.New(color.Faint)
	colorWarn   = color.New(color.FgYellow)
)

func newDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir <path>",
		Short: "List images up to three levels below a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := fileSystem.ListImages(args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), listing, func(w io.Writer) {
				colorHeader.Fprintf(w, "%s\n", listing.Root)
				for _, p := range listing.Paths {
					fmt.Fprintln(w, p)
				}
				colorDim.Fprintf(w, "%d images\n", len(listing.Paths))
			})
		},
	}
}

func newZipCmd() *cobra.Command {
	var natural bool

	cmd := &cobra.Command{
		Use:   "zip <archive>",
		Short: "List image entries in a zip archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := archiveService.List(types.ArchiveListParams{Path: args[0], Natural: natural})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), listing, func(w io.Writer) {
				colorHeader.Fprintf(w, "%s\n", listing.Archive)
				for _, e := range listing.Entries {
					fmt.Fprintln(w, e)
				}
				colorDim.Fprintf(w, "%d entries\n", len(listing.Entries))
			})
		},
	}

	cmd.Flags().BoolVar(&natural, "natural", false, "numeric-aware, case-insensitive order")
	return cmd
}

func newReadCmd() *cobra.Command {
	var (
		raw     bool
		dataURL bool
	)

	cmd := &cobra.Command{
		Use:   "read <archive> <entry>",
		Short: "Extract one archive entry as base64",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := archiveService.Read(args[0], args[1])
			if err != nil {
				return err
			}

			data, err := base64.StdEncoding.DecodeString(payload.Data)
			if err != nil {
				return fmt.Errorf("failed to decode payload: %w", err)
			}

			if sniffed := mediatype.Sniff(data); sniffed != "" && sniffed != payload.MIMEType {
				colorWarn.Fprintf(cmd.ErrOrStderr(), "warning: %s is named as %s but its content looks like %s\n",
					args[1], payload.MIMEType, sniffed)
			}

			out := cmd.OutOrStdout()
			if raw {
				_, err := out.Write(data)
				return err
			}
			if dataURL {
				_, err := fmt.Fprintln(out, uri.DataURL(payload.MIMEType, payload.Data))
				return err
			}

			return render(out, payload, func(w io.Writer) {
				colorHeader.Fprintln(w, payload.MIMEType)
				fmt.Fprintln(w, payload.Data)
			})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "write the decoded bytes instead of base64")
	cmd.Flags().BoolVar(&dataURL, "data-url", false, "print a data: URL")
	cmd.MarkFlagsMutuallyExclusive("raw", "data-url")
	return cmd
}

// render writes v in the selected --format. text falls back to the
// caller's plain renderer.
func render(w io.Writer, v any, text func(io.Writer)) error {
	switch strings.ToLower(outputFormat) {
	case "", "text":
		text(w)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", outputFormat)
	}
}
