// Package engine provides the fetch engines that retrieve a URL's content
// as Markdown.
//
// Three engines are available:
//   - Direct: plain HTTP GET with local HTML to Markdown conversion
//   - Jina: the hosted Jina Reader API (r.jina.ai)
//   - Firecrawl: the Firecrawl scrape API via its client library
//
// All engines share the Engine interface. A fetch never returns a Go error
// for per-URL failures; failures are captured in the FetchOutcome so the
// batch runner can continue past them. Engine selection happens once per
// run, not per URL.
//
// Design decision: the Direct engine extracts <title> and <body> with
// regular expressions rather than a structural HTML parse. This preserves
// the documented behavior of the tools mapdown replaces, including its
// fragility on malformed markup.
package engine
