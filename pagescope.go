// Package pagescope extracts structured content from parsed HTML documents:
// headings, links, media descriptors, text, and a content-density
// fingerprint. The output is meant for downstream text-processing and
// retrieval pipelines.
//
// The core of the package is a bounded, filterable walk over a document
// tree (see Scope and Traverse). Content classifiers, the media normalizer
// and the path fingerprint are built on top of it.
//
// This package contains domain types, interfaces and the pure traversal
// engine, following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// goquery/, sqlite/, gemini/).
package pagescope
