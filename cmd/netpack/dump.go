package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	hexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C"))
)

func dumpCmd() *cli.Command {
	var inPath string

	return &cli.Command{
		Name:  "dump",
		Usage: "Hex dump of a packed file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "in",
				Aliases:     []string{"i"},
				Usage:       "packed input path (- for stdin)",
				Destination: &inPath,
				Value:       "-",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			data, err := readInput(inPath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: read input: %v", err), 1)
			}

			fmt.Println(titleStyle.Render(fmt.Sprintf("netpack dump: %d bytes", len(data))))
			for off := 0; off < len(data); off += 16 {
				end := off + 16
				if end > len(data) {
					end = len(data)
				}
				row := data[off:end]

				var hexCol strings.Builder
				for i, b := range row {
					if i == 8 {
						hexCol.WriteByte(' ')
					}
					fmt.Fprintf(&hexCol, "%02x ", b)
				}

				var asciiCol strings.Builder
				for _, b := range row {
					if b >= 0x20 && b < 0x7F {
						asciiCol.WriteByte(b)
					} else {
						asciiCol.WriteByte('.')
					}
				}

				fmt.Printf("%s  %s %s\n",
					offsetStyle.Render(fmt.Sprintf("%08x", off)),
					hexStyle.Render(fmt.Sprintf("%-49s", hexCol.String())),
					asciiStyle.Render(asciiCol.String()),
				)
			}
			return nil
		},
	}
}
