// Package pipeline implements the document rendering stages: markdown
// preprocessing, markdown-to-HTML conversion, table of contents extraction,
// and HTML document assembly.
package pipeline
