// Package typed layers compile-time entity discrimination over genarena.
//
// A bare genarena.Handle for a texture and one for a sound are the same Go
// type; mixing them up compiles. typed.Handle[T] tags the handle with the
// value type it was issued for, so handing a Handle[Texture] to an arena of
// Sound is rejected at compile time at zero runtime cost.
//
// DynHandle is the runtime escape hatch: a handle plus a type tag, for code
// that must store handles of mixed kinds in one place. Converting a DynHandle
// back to the wrong Handle[T] fails loudly.
package typed
