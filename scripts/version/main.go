// Package main prints the version stamped into cstylecheck builds.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

func main() {
	if v := os.Getenv("CSTYLECHECK_VERSION"); v != "" {
		fmt.Print(v)
		return
	}

	cmd := exec.Command("git", "describe", "--tags", "--always", "--dirty")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		fmt.Print("dev")
		return
	}
	fmt.Print(strings.TrimSpace(out.String()))
}
