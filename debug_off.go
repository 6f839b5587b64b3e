//go:build !tilepaintdebug

package tilepaint

// debugChecks gates contract-violation assertions in the hot paths.
// Build with -tags tilepaintdebug to enable them.
const debugChecks = false
