package main

import (
	"fmt"
	"os"
	"os/exec"
)

func main() {
	if _, err := exec.LookPath("gofumpt"); err != nil {
		fmt.Println("gofumpt not found. Install it with:\n  go install mvdan.cc/gofumpt@latest")
		os.Exit(1)
	}

	fmt.Println("Formatting with gofumpt...")
	cmd := exec.Command("gofumpt", "-l", "-w", "cmd", "internal", "scripts")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("❌ Formatting failed: %v\n", err)
		os.Exit(1)
	}
}
