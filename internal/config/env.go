// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environ, or from the process environment when
// environ is nil. Keys follow the `env`/`envPrefix` tags of
// [StructuredConfig], e.g. APP_TOKEN_SIGN_KEY or WORKERS_BADGE_INTERVAL.
func parseEnv(cfg any, environ map[string]string) error {
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
