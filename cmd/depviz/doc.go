// Package main hosts the depviz CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into job-config
// inspection, configuration scaffolding, and settings management. It
// centralizes settings resolution and structured logging setup so subcommands
// can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
