// Package registry owns the storage for channel and method singletons.
//
// Independently developed components rendezvous on a Tag: the first component
// to ask for a tag causes the instance to be constructed, every later request
// returns the same instance. Because the registry stores arbitrarily typed
// channels and methods behind one storage type, each slot holds the erased
// instance together with its paired destroy function, and reconstructing the
// typed view goes through a checked assertion. Requesting a tag with the
// wrong payload or signature types is a reported TagMismatchError, not
// undefined behavior.
//
// Channels and methods live in separate namespaces, so a channel tag and a
// method tag may share a name without colliding.
package registry
