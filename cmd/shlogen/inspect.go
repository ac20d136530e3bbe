package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/schakrabortygithub/shlo/fixture"
)

func inspectCmd() *cli.Command {
	var skipChecksum bool

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print the header summary of a .shlo fixture file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "skip-checksum",
				Usage:       "skip checksum verification",
				Destination: &skipChecksum,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			path := c.Args().First()
			if path == "" {
				return cli.Exit("error: missing FILE argument", 1)
			}

			stat, err := os.Stat(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: stat %q: %v", path, err), 1)
			}

			opts := fixture.ReaderOptions{
				SkipChecksumVerification: skipChecksum,
				ValidationLevel:          fixture.ValidationStrict,
			}
			r, err := fixture.NewReaderWithOptions(path, opts)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open fixture: %v", err), 1)
			}
			defer func() { _ = r.Close() }()

			printSummary(path, stat.Size(), r)
			return nil
		},
	}
}

func printSummary(path string, size int64, r *fixture.Reader) {
	h := r.Header()

	fmt.Printf("Fixture: %s (%s)\n", path, formatBytes(size))

	section("Header")
	row("format_version", fmt.Sprintf("%d", h.FormatVersion))
	row("library_version", h.LibraryVersion)
	row("created_at", h.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
	row("seed", fmt.Sprintf("%d", h.Seed))
	row("tensors", fmt.Sprintf("%d", len(h.Tensors)))
	row("checksum", fmt.Sprintf("%x", r.Checksum()))

	if len(h.Metadata) > 0 {
		section("Metadata")
		keys := make([]string, 0, len(h.Metadata))
		for k := range h.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			row(k, h.Metadata[k])
		}
	}

	section("Tensors")
	for _, meta := range h.Tensors {
		line := fmt.Sprintf("%s  dtype=%s shape=%s size=%s", meta.Name, meta.DType, formatShape(meta.Shape), formatBytes(meta.Size))
		if meta.Quant != nil {
			layout := "per-tensor"
			if meta.Quant.Axis != nil {
				layout = fmt.Sprintf("per-axis(%d)", *meta.Quant.Axis)
			}
			line += fmt.Sprintf(" quant=%s expressed=%s channels=%d", layout, meta.Quant.Expressed, len(meta.Quant.Scales))
		}
		fmt.Println(line)
	}
}

func section(title string) {
	fmt.Printf("\n--- %s ---\n", title)
}

func row(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%-18s %s\n", label+":", value)
}

func formatShape(shape []int) string {
	if len(shape) == 0 {
		return "scalar"
	}
	parts := make([]string, len(shape))
	for i, v := range shape {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, "x")
}

func formatBytes(b int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.2f GiB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.2f MiB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.2f KiB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
