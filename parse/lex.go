//go:build !windows

package parse

import "github.com/google/shlex"

// Split tokenizes a command line into arguments using POSIX shell word
// splitting rules.
func Split(line string) ([]string, error) {
	return shlex.Split(line)
}
