// Package domain contains the core domain model for the dice roller.
//
// The domain is hardware- and host-agnostic: it does not depend on GPIO backends,
// YAML parsing, or the filesystem. Ports/adapters map into/from these types.
package domain
