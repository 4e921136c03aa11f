// Package visibility tracks whether a host is in the foreground or the
// background and publishes transitions to subscribers.
//
// A host is described by two capabilities: a [Window] (global scope) and a
// [Document]. At construction the [Tracker] probes the document once to pick
// one of three wiring strategies:
//
//   - modern: the document exposes a (possibly vendor-prefixed) hidden
//     property; the tracker listens for visibilitychange and reads the
//     visibility property.
//   - focus-blur: the document is an [EventTarget]; the tracker listens for
//     focus and blur on the window in the capture phase.
//   - focus-blur-ie: the document offers only [LegacyEventTarget]; the tracker
//     attaches onfocusin and onfocusout.
//
// Every native signal goes through one normalization step. Repeated identical
// values are dropped. An accepted change updates the state, stamps the time,
// increments the counter, and is published on the update channel
// ("update" unless overridden):
//
//	t := visibility.New(visibility.Config{Window: win, Document: doc})
//	t.OnUpdate(func(s visibility.State) { log.Println("now", s) })
//	if !t.Start() {
//		return t.Err()
//	}
//	defer t.Destroy()
package visibility
