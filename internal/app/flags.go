package app

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*jobsValue)(nil)
	_ pflag.Value = (*pathValue)(nil)
)

// jobsValue implements pflag.Value to validate the number of parallel checks.
// "auto" selects one job per CPU.
type jobsValue int

func (j *jobsValue) String() string {
	return strconv.Itoa(int(*j))
}

func (j *jobsValue) Set(v string) error {
	if v == "auto" {
		*j = jobsValue(runtime.NumCPU())
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fmt.Errorf("must be a positive number or 'auto'")
	}
	*j = jobsValue(n)
	return nil
}

func (j *jobsValue) Type() string {
	return "<n>"
}

// pathValue implements pflag.Value to provide a custom type name in help text.
type pathValue string

func (p *pathValue) String() string {
	return string(*p)
}

func (p *pathValue) Set(v string) error {
	*p = pathValue(v)
	return nil
}

func (p *pathValue) Type() string {
	return "<path>"
}
