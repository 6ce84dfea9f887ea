// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only universally required fields are validated here; entry points apply
// their own stricter checks (the server requires a DSN, the client requires
// an adapter address) via the typed config views.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// validate checks the client-specific configuration view.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
