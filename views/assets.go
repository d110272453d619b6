package views

import _ "embed" // for go:embed

// Stylesheet is served at [StylesheetPath].
//
//go:embed app.css
var Stylesheet []byte

// script drives the navigation states in the browser: live search with
// stale-response suppression, optimistic favorites and delete confirmation.
//
//go:embed script.js
var script string
