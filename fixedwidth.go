// Package fixedwidth decodes fixed-width formatted data according to a schema
// that is supplied at runtime rather than declared with struct tags.
//
// A schema is a line-oriented layout description:
//
//	Field1=string,firstName,0,10
//	Field2=int,age,10,3
//
// Each field line names a label, a type, the output variable, a zero-based
// offset and a length. Load turns such a description into a Schema. A Decoder
// built from the Schema turns each data line into a Record, an ordered set of
// typed values keyed by variable name.
//
// Decoding is all-or-nothing per line: a line either produces a complete
// Record or a *DecodeError. DecodeAll reports one Result per input line so a
// single bad line never stops a batch.
package fixedwidth
