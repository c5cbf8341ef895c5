// Package script embeds a Lua interpreter and exposes the Synapse dispatch
// surface to it, so scripted components can publish, subscribe, provide, and
// call without any compile-time coupling to the components on the other side
// of a tag.
//
// A Host installs a `synapse` table into its Lua state:
//
//	synapse.publish(tag, value)          -- broadcast onto a channel
//	synapse.subscribe(tag, fn)           -- receive broadcasts
//	synapse.provide(tag, fn [, prio])    -- register a method provider
//	synapse.call(tag, ...)               -- invoke a method
//
// Scripted channels carry loosely typed payloads and scripted methods have
// the signature ([]any) -> any; Lua values convert to and from Go values
// (booleans, numbers, strings, tables as slices or maps).
//
// gopher-lua states are not goroutine-safe. A Host must be driven from the
// goroutine that owns the execution context: scripted subscribers run when
// that context drains the queue, and scripted providers run on whatever
// goroutine calls the method, so both naturally stay on the owner's
// goroutine under the cooperative model.
package script
