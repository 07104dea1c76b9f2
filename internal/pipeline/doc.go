// Package pipeline implements the Markdown-to-page rendering pipeline.
//
// The stages run in this order:
//   - source preprocessing (byte order mark, line endings)
//   - Markdown to HTML fragment conversion via goldmark, with optional
//     chroma highlighting and diagram and math passthrough extensions
//   - relative resource URLs rewritten to file:// URLs
//   - outline extraction from the fragment's h2-h6 headings
//   - table of contents rendering
//   - page composition: theme variables, conditional feature styles and
//     scripts, TOC and content assembled into one standalone document
//
// Every stage after conversion is a pure function of its input, and each
// converter owns its goldmark engine, so pages with different options can
// be rendered concurrently.
package pipeline
