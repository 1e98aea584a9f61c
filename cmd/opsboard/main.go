// Command opsboard runs the dashboard API server.
package main

import (
	"fmt"
	"os"

	"github.com/tikkaspice/opsboard/internal/dashboard/app"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "opsboard:", err)
		os.Exit(1)
	}
}

func run() error {
	application, err := app.New(app.LoadConfig())
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	return application.Run()
}
