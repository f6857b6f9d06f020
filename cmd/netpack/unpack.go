package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/fieldstream/netpack/transcode"
)

func unpackCmd() *cli.Command {
	var (
		schemaPath string
		inPath     string
		outPath    string
		format     string
	)

	return &cli.Command{
		Name:  "unpack",
		Usage: "Unpack wire bytes for a schema into a document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "schema",
				Aliases:     []string{"s"},
				Usage:       "path to YAML schema document",
				Destination: &schemaPath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "in",
				Aliases:     []string{"i"},
				Usage:       "packed input path (- for stdin)",
				Destination: &inPath,
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
				Usage:       "output document format: json or cbor",
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
			data, err := readInput(inPath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: read input: %v", err), 1)
			}

			var doc []byte
			switch format {
			case "json":
				doc, err = transcode.UnpackJSON(root, data)
				if err == nil {
					doc = append(doc, '\n')
				}
			case "cbor":
				doc, err = transcode.UnpackCBOR(root, data)
			default:
				return cli.Exit(fmt.Sprintf("error: unknown format %q", format), 1)
			}
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: unpack: %v", err), 1)
			}

			return writeOutput(outPath, doc)
		},
	}
}
