// Package testing provides test doubles for host-driven components.
//
// A [Journal] records, in one ordered list, everything a component makes
// visible to its host: diagnostic records, stop requests and installed
// screen content. It satisfies platform.Logger, the service host interface
// and rendering.Renderer at once, so a single journal shows the relative
// order of all three.
//
//	j := hosttest.NewJournal()
//	task := service.New(service.Config{ID: "t", Host: j, Env: hosttest.FixedEnv(4242), Logger: j})
//	task.OnStart(service.Request{}, 7)
//	j.Messages() // ["service start", "4242"]
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import hosttest "github.com/go-drift/blocks/pkg/testing"
package testing
