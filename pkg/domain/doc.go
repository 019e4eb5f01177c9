/*
Package domain contains the core domain models of the screenflow controller.

It defines the capabilities a screen must offer to be driven by the controller, the
error taxonomy shared by every layer, the graph snapshot used by introspection tools,
and the lifecycle events emitted while the controller moves between screens. This
package is kept pure and free of I/O.

# Key Entities

  - Screen: the capability set every screen supplies (IsFinished, Reset, Dispose).
  - TransitionScreen: a screen followed by exactly one successor.
  - ChoiceScreen: a screen that picks one of many successors through Choice.
  - Graph: a read-only snapshot of registered screens and their edges.
  - LifecycleHooks: callbacks for entering, leaving, resetting and disposing screens.
*/
package domain
