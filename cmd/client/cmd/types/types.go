// Package types holds the context keys shared between the root command and
// the subcommand packages.
package types

type contextKey string

const ClientAppKey contextKey = "clientApp"
