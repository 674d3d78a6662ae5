package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"lrc/internal/logging"
)

func main() {
	ctx := newCommandContext(logging.Bootstrap)
	cmd := newRootCommand(ctx)
	err := cmd.Execute()
	ctx.close()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
