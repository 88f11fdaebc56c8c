// Package event provides the publish/subscribe event bus that connects
// typetrain's feature modules.
//
// The bus is the application's communication backbone: authentication, study
// book management, and typing practice talk to each other through named events
// ("auth:login", "studybook:created") instead of direct references. One bus
// instance is constructed at startup and handed to every module.
//
// # Dispatch Contract
//
// Each Emit call runs one dispatch pass:
//
//  1. Before middleware runs in registration order. Under Cancellable, a hook
//     returning false aborts the pass before any listener runs.
//  2. Listeners are snapshotted: once listeners first (and removed from the
//     registry before invocation), then regular listeners, each group ordered
//     by priority (higher first) with registration order as the tie break.
//  3. Listeners run in snapshot order. A panicking listener is logged and
//     skipped; it never surfaces to the emitter. A listener may stop the
//     remaining snapshot with Event.StopPropagation, or mark the emission
//     cancelled by returning false (honored under Cancellable) or by calling
//     Event.Cancel.
//  4. After middleware always runs, even for vetoed or stopped passes.
//  5. Emit reports whether the emission survived uncancelled.
//
// Because every pass iterates its own snapshot, subscribing, unsubscribing,
// and re-entrant emission are all safe while a pass is running.
//
// # Delivery Modes
//
// Emit delivers synchronously in the caller's goroutine. EmitAsync runs the
// identical pass on its own goroutine and reports the result on a channel:
//
//	done := bus.EmitAsync(events.TypingCompleted, result)
//	...
//	ok := <-done
//
// # Facades
//
// Namespace prefixes event names so a module can stay oblivious to its place
// in the global name space. Proxy forwards selected events from one bus to
// another. WaitFor blocks until the next matching emission or a timeout.
//
// # Subpackages
//
//   - events: event name constants and payload types per feature module
package event
