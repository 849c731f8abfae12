// Package admin is the headless back-office view over registrations and
// payments.
//
// A Table holds the last fetched snapshot of both collections and applies
// every mutation locally only after the backend confirmed it. Searches run
// over the snapshot and never refetch. Every user-visible outcome goes
// through the Notifier, which auto-dismisses after a fixed TTL.
//
// Requests are bound to the table's lifetime: once Close is called,
// responses still in flight are discarded instead of being applied.
//
// Host capabilities are injected: Confirmer for destructive actions and
// Saver for downloads.
package admin
