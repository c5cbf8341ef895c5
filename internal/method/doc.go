// Package method provides the provider-dispatch primitive of the Synapse
// runtime.
//
// A method is a loosely linked, application-level function with a single call
// site shape and any number of providers. Callers grab a method and call it;
// providers grab the same method and register themselves. Neither side ever
// links against the other.
//
// Calls are synchronous: they resolve immediately on the caller's goroutine
// by iterating the registered providers under the method's ResolutionPolicy,
// never touching the execution queue. The default FirstSuccess policy tries
// providers in ascending priority order and returns the first result that
// does not fail; if every provider fails (or none are registered) the caller
// receives an ExhaustedError aggregating each provider's diagnostic in order.
//
// Registration is tied to handle lifetime: RegisterProvider returns an
// exclusively owned ProviderHandle, and unregistering (explicitly, or by the
// owner releasing the handle during teardown) removes exactly that provider.
package method
