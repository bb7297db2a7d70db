// Package assets loads the per-language offer template sets.
//
// Templates are resolved custom-first: when a custom base path is
// configured, templates are read from {basePath}/{set}/{name} with a
// fallback to the embedded defaults for anything missing there. Without
// a custom path only the embedded defaults are used.
//
// Embedded template sets ship one directory per offer language
// (templates-english, templates-polish), each holding the configurable
// pages plus the closing page.
package assets
