package main

import (
	"fmt"
	"os"
	"os/exec"
)

func main() {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println("golangci-lint not found. Install it with:\n" +
			"  go install github.com/golangci/golangci-lint/v2/cmd/golangci-lint@latest")
		os.Exit(1)
	}

	fmt.Println("Linting with golangci-lint...")
	cmd := exec.Command("golangci-lint", append([]string{"run"}, os.Args[1:]...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("❌ Linting failed: %v\n", err)
		os.Exit(1)
	}
}
