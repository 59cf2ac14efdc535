// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"

	"github.com/google/shlex"
)

// Tokenize splits line into words on whitespace. Single and double quotes
// group words and backslash escapes the next character, so a path with
// spaces can be passed as one argument.
func Tokenize(line string) ([]string, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("shell: tokenize: %w", err)
	}
	return tokens, nil
}
