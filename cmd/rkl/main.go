package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	root := cli.NewRootCmd(cli.Options{Verbose: isVerbose()})

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrInvalidSelection):
		return 2
	default:
		return 1
	}
}

func isVerbose() bool {
	v := os.Getenv(domain.EnvDebug)
	return strings.EqualFold(v, "1") || strings.EqualFold(v, "true")
}
