// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv overlays MATSHELL_* environment variables onto target.
// Unset variables leave the current value alone.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
