// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills the tracker configuration from environment variables.
// Fields are matched through the `env`/`envPrefix` tags declared on
// [StructuredConfig] and its nested server and storage sections, so
// ADDRESS and DATABASE_URI land in the right place.
//
// The error from env.Parse is wrapped; a value that cannot be converted
// to the target field type surfaces here.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
