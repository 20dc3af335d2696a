// Package docscope routes a free-text user query to exactly one curated
// documentation ecosystem and exposes the documentation-source identifiers
// associated with it, so downstream retrieval can scope its search.
//
// Detection is a strict four-stage cascade (alias, keyword, semantic, AI)
// over a cached catalog of ecosystem definitions. The final stage always
// produces a result, so any query against a non-empty catalog resolves to
// an ecosystem.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or function (e.g., sqlite/, gemini/,
// detect/, catalog/).
package docscope
