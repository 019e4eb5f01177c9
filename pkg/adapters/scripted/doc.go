/*
Package scripted provides deterministic screens for simulations and tests.

Scripted screens do not render anything. They finish when told to (or after a fixed
number of polls) and count how often the controller resets and disposes them, which
makes them suitable for walking a screen graph from the CLI and for asserting the
controller's lifecycle guarantees.
*/
package scripted
