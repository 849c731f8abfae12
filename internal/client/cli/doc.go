// Package cli provides the interactive Trading Professor terminal client.
//
// It wires configuration, the REST API client, the submission pipeline and
// the admin table into a REPL that plays the role of the website: browse
// the course catalogue, fill in the enrollment or copy-trading forms step by
// step, and, with an admin token, manage registrations and payments.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command set and runWizard for the form flow.
package cli
