package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/fieldstream/netpack/schema"
	"github.com/fieldstream/netpack/transcode"
)

func packCmd() *cli.Command {
	var (
		schemaPath string
		valuePath  string
		outPath    string
		format     string
	)

	return &cli.Command{
		Name:  "pack",
		Usage: "Pack a document into wire bytes for a schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "schema",
				Aliases:     []string{"s"},
				Usage:       "path to YAML schema document",
				Destination: &schemaPath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "value",
				Aliases:     []string{"v"},
				Usage:       "path to value document (- for stdin)",
				Destination: &valuePath,
				Value:       "-",
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output path (- for stdout)",
				Destination: &outPath,
				Value:       "-",
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "value document format: json or cbor",
				Destination: &format,
				Value:       "json",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			root, err := loadSchema(schemaPath)
			if err != nil {
				return err
			}
			doc, err := readInput(valuePath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: read value: %v", err), 1)
			}

			var packed []byte
			switch format {
			case "json":
				packed, err = transcode.PackJSON(root, doc)
			case "cbor":
				packed, err = transcode.PackCBOR(root, doc)
			default:
				return cli.Exit(fmt.Sprintf("error: unknown format %q", format), 1)
			}
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: pack: %v", err), 1)
			}

			return writeOutput(outPath, packed)
		},
	}
}

func loadSchema(path string) (schema.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("error: read schema: %v", err), 1)
	}
	root, err := schema.Load(data)
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("error: load schema: %v", err), 1)
	}
	return root, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return cli.Exit(fmt.Sprintf("error: write output: %v", err), 1)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return cli.Exit(fmt.Sprintf("error: write output: %v", err), 1)
	}
	return nil
}
