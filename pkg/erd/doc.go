// Package erd bridges the schema world and the layout world. [Build] turns a
// table catalog plus inferred relations into the layout arena, sizing each
// node from its column count, and [Emit] turns the positioned arena back into
// the external [Layout] contract rendering frontends consume.
//
// The builder is forgiving where the layout engine is strict: duplicate
// tables and relations with missing endpoints become [Diagnostic] entries
// instead of errors, and the remaining valid graph is laid out normally.
package erd
