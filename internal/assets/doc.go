// Package assets loads CSS style templates from embedded defaults or a
// caller-supplied template directory, with fallback from the directory to
// the embedded set.
package assets
