// Package schema builds schema.org JSON-LD objects for embedding in pages.
//
// Generators are pure: they map a typed input to an Object graph using the
// business facts they were created with, and never touch the filesystem.
// Objects are rendered into <script type="application/ld+json"> blocks
// with Wrap and WrapMany.
package schema
