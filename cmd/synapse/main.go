// Package main is the entry point for the Synapse demo runtime.
//
// It wires the dispatch core the way a host application would: a priority
// execution queue as the execution context, a registry for channels and
// methods, and an optional Lua script standing in for an independently
// developed component.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/synapse/internal/config"
	"github.com/dshills/synapse/internal/execq"
	"github.com/dshills/synapse/internal/method"
	"github.com/dshills/synapse/internal/registry"
	"github.com/dshills/synapse/internal/script"
)

func main() {
	os.Exit(run())
}

func run() int {
	var scriptPath string
	flag.StringVar(&scriptPath, "script", "", "Lua script to load on startup")
	flag.StringVar(&scriptPath, "s", "", "Lua script to load on startup (shorthand)")
	flag.Parse()

	var rt config.Runtime
	if err := config.Load(&rt); err != nil {
		fmt.Fprintf(os.Stderr, "Error: load configuration: %v\n", err)
		return 1
	}
	if scriptPath != "" {
		rt.ScriptPath = scriptPath
	}

	queue := execq.NewQueue(execq.WithHighTier(execq.Priority(rt.HighTier)))
	reg := registry.New()
	defer reg.Close()

	exec := queue.Executor(execq.Priority(rt.ChannelPriority))

	// Built-in component pair: a status channel anyone may listen on, and
	// an echo method anyone may provide a better implementation for.
	status, err := registry.ChannelFor[any](reg, "runtime.status", exec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: declare status channel: %v\n", err)
		return 1
	}
	status.Subscribe(func(v any) error {
		fmt.Printf("status: %v\n", v)
		return nil
	})

	echo, err := registry.MethodFor[[]any, any](reg, "runtime.echo")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: declare echo method: %v\n", err)
		return 1
	}
	echo.RegisterProvider(func(args []any) (any, error) {
		if len(args) == 0 {
			return nil, nil
		}
		return args[0], nil
	}, method.WithPriority(100))

	host := script.NewHost(reg, exec)
	defer host.Close()

	if rt.ScriptPath != "" {
		if err := host.DoFile(rt.ScriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	status.Publish("starting")

	if out, err := echo.Call([]any{"ready"}); err == nil {
		status.Publish(out)
	}

	// Drain loop: the execution-context role. ExecuteHighest drains all
	// high-tier work each pass and lets one background action through.
	for queue.ExecuteHighest() {
	}
	queue.ExecuteAll()

	return 0
}
