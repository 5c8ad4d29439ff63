// Package sitemap turns a sitemap reference into a filtered URL list.
//
// It provides three stages of the mapdown pipeline:
//   - Resolver: reads raw sitemap content from a local file or a URL
//   - Extract: parses the content as an XML sitemap or a JSON URL list
//   - Filter: applies include/exclude substring patterns to the URL list
//
// Design decision: XML extraction matches <loc> tag pairs with a regular
// expression instead of a structural XML parse. This mirrors the documented
// behavior of the tools mapdown replaces, including their fragility on
// malformed markup; upgrading to a full parser would silently change which
// URLs are discovered.
package sitemap
