// Package taskfile reads and writes the trackr task file.
//
// The task file is a top-level array of three-field objects, written with a
// fixed layout:
//
//	[
//	  {
//	    "id": 1,
//	    "description": "Water the plants",
//	    "status": "todo"
//	  },
//	  {
//	    "id": 2,
//	    "description": "Call mum\nabout Sunday",
//	    "status": "done"
//	  }
//	]
//
// # Encoding
//
// Encode always produces the layout above: two-space object indentation,
// four-space field indentation, a comma after every object but the last and
// a trailing newline. Only the description is escaped (backslash, double
// quote, newline, carriage return and tab).
//
// # Decoding
//
// Decode is not a JSON parser. It splits the array body into objects by
// counting brace depth and then extracts fields line by line, so it accepts
// exactly what Encode writes plus extra whitespace, and nothing much more.
// Objects missing a field or carrying an unknown status are dropped; a file
// that is not wrapped in [ ] yields no tasks at all. Decode never returns an
// error. DecodeReport exposes what was dropped and why.
//
// # Validation
//
// Validate checks a file against a bundled JSON Schema. It is a diagnostic
// for the doctor command and has no effect on what Decode accepts.
package taskfile
