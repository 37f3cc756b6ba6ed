// Command santa runs the Secret Santa backend.
//
// Usage:
//
//	santa serve [--migrate]
//	santa migrate [up|down|status]
//	santa owner create --email=a@b.c --first-name=Ann --last-name=Claus
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/heartmarshall/secret-santa-backend/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
