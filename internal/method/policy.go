package method

import "fmt"

// Provider supplies one implementation of a method. The declared request and
// response types enforce the method's signature at compile time.
type Provider[Req, Resp any] func(req Req) (Resp, error)

// ResolutionPolicy governs how a method call selects or combines provider
// results. The providers arrive already ordered (ascending priority, then
// registration order).
type ResolutionPolicy[Req, Resp any] interface {
	Resolve(req Req, providers []Provider[Req, Resp]) (Resp, error)
}

// FirstSuccess is the default resolution policy: try providers sequentially
// until one succeeds without failing; that result becomes the result of the
// call. A provider fails by returning an error or by panicking; either way
// its diagnostic is folded into the aggregate and the next provider is tried.
// If the provider list is exhausted the call fails with an ExhaustedError
// carrying every diagnostic in order.
type FirstSuccess[Req, Resp any] struct{}

// Resolve implements ResolutionPolicy.
func (FirstSuccess[Req, Resp]) Resolve(req Req, providers []Provider[Req, Resp]) (Resp, error) {
	var errs []error
	for _, provider := range providers {
		resp, err := invoke(provider, req)
		if err == nil {
			return resp, nil
		}
		errs = append(errs, err)
	}

	var zero Resp
	return zero, &ExhaustedError{Errs: errs}
}

// invoke runs a single provider, converting a panic into a failure so the
// policy can keep trying the remaining providers.
func invoke[Req, Resp any](provider Provider[Req, Resp], req Req) (resp Resp, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()
	return provider(req)
}
