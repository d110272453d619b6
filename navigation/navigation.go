// Package navigation models the loading states of the contacts UI.
//
// A page starts [Idle]. Following a link enters [Navigating], submitting a
// form with any other method than GET enters [Submitting]. Both return to
// [Idle] once the target page has been fetched and rendered. A pending GET
// whose target carries a search query is "searching": only the search field
// shows that it is busy while the rest of the page stays as it was.
//
// Pages served for a request are always rendered idle. The other states are
// entered in the browser while a fetch is in flight: the views package
// renders each of them once and embeds the result in every page, so the
// script applies what rendering a [Navigation] produces.
package navigation

import (
	"net/http"
	"net/url"
)

type State int

const (
	Idle State = iota
	Navigating
	Submitting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Navigating:
		return "navigating"
	case Submitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// SearchParam is the query parameter carrying the sidebar search.
const SearchParam = "q"

// Navigation is the transition in flight, the zero value is [Idle].
type Navigation struct {
	State    State
	Method   string
	Location *url.URL
}

// Begin returns the navigation for a transition to target using method.
func Begin(method string, target *url.URL) Navigation {
	state := Submitting
	if method == "" || method == http.MethodGet {
		method, state = http.MethodGet, Navigating
	}
	return Navigation{State: state, Method: method, Location: target}
}

// Done returns the idle navigation.
func (Navigation) Done() Navigation { return Navigation{} }

// Idle reports whether nothing is in flight.
func (n Navigation) Idle() bool { return n.State == Idle }

// Searching reports whether the pending navigation targets a search.
func (n Navigation) Searching() bool {
	return n.State == Navigating && n.Location != nil && n.Location.Query().Has(SearchParam)
}

// Loading reports whether the page should show a generic loading indicator.
func (n Navigation) Loading() bool { return !n.Idle() && !n.Searching() }

// Pending reports whether the navigation in flight targets path.
func (n Navigation) Pending(path string) bool {
	return !n.Idle() && n.Location != nil && n.Location.Path == path
}
