// Package services implements the driving port interfaces.
// Services contain the conversion pipeline itself: normalisation to
// a working representation, pairwise conversion to the target
// format, single-document orchestration, batch orchestration, and
// capability reporting. Services call out to conversion backends
// through the driven ports and never deal with transports.
package services
