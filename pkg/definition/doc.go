/*
Package definition loads screen graphs from YAML, TOML or JSON files.

A definition names the starting screen and lists every screen with its kind and
its outgoing edges:

	start: loading
	screens:
	  - name: loading
	    kind: transition
	    next: menu
	  - name: menu
	    kind: choice
	    choices:
	      - {choice: 0, to: play}
	      - {choice: 1, to: loading}
	  - name: play
	    kind: transition
	    lazy: true

The file only describes the graph. Screen values come from a Provider, such as
scripted.Catalog, when the definition is turned into a screenflow.Builder.
*/
package definition
