// Package state holds the client-side data the terminal UI renders.
//
// Writers (the context service and the refresh job) update the [Store];
// the UI only ever reads copies through [Store.Snapshot].
package state
