// Package attr normalizes heterogeneous attribute specifications (bare
// names, "name:format" strings, and structured specs) against a record into
// resolved {label, value, format} descriptors. Resolution happens exactly
// once; downstream renderers never re-inspect spec shapes or re-read the
// record.
package attr
