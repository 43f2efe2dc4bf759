// Package ldraw parses LDraw model files into a traversable document graph.
// A model is a list of geometric primitives plus placements of named parts;
// every referenced part is located in an LDraw library and parsed once.
//
// This package contains domain types, the line decoders and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., fs/, sqlite/,
// etree/).
package ldraw

// Version is the parser version reported by the command line tool.
const Version = "0.1.0"
