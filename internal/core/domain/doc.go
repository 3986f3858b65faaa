// Package domain contains the core types of the Inkwell conversion
// pipeline: format identifiers, the working representation shared by
// normalisation and conversion, request/result records, and the
// sentinel errors every conversion failure is reduced to.
//
// The domain package has no dependencies on adapters or backends.
package domain
