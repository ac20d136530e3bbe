package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

const version = "v0.1.0"

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Printf("shlogen %s\n", version)
			return nil
		},
	}
}
