// Package atom reads and writes the Atom Syndication Format (RFC 4287).
//
// ReadFrom parses an XML document into a Feed; WriteTo serializes the Feed
// back to spec-compliant XML. Content typing (plain, HTML, embedded XHTML),
// namespaced extension elements and namespace declarations survive the
// round trip structurally intact.
package atom
