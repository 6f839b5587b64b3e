//go:build tilepaintdebug

package tilepaint

// debugChecks gates contract-violation assertions in the hot paths.
const debugChecks = true
