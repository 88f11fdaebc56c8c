// Package events defines the event names and payload types exchanged between
// typetrain's feature modules.
//
// Names are colon-separated with the owning module as prefix ("auth:login",
// "studybook:created"), so a module can address its own events through
// bus.Namespace(events.AuthPrefix) without knowing the global name space.
//
// Payloads are plain structs. Listeners type-assert the record's Data field:
//
//	bus.On(events.TypingCompleted, func(e *event.Event) bool {
//	    result, ok := e.Data.(events.TypingResult)
//	    if !ok {
//	        return true
//	    }
//	    ...
//	    return true
//	})
package events
