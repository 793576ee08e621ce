package main

import (
	"context"
	"fmt"
	"os"

	"github.com/arloliu/vislog/internal/cmd/vislog"
)

func main() {
	if err := vislog.App().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
