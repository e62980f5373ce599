// Package session drives one trainer run: the lesson menu, the active
// task, and the feedback shown after every keystroke.
//
// A Session is single-threaded. The front end feeds it key.Event values
// from one goroutine and reads View snapshots to draw. Catalog reloads
// arrive through ReplaceCatalog on that same goroutine.
package session
