package views

import (
	"encoding/json"
	"net/http"
	"net/url"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/oaiiae/huma-contacts/navigation"
)

const (
	loadingClass = "loading"
	pendingClass = "pending"

	navStatesID = "nav-states"
)

// navView is what a navigation changes in a rendered page.
type navView struct {
	DetailLoading bool `json:"detailLoading"`
	SearchLoading bool `json:"searchLoading"`
	SpinnerHidden bool `json:"spinnerHidden"`
}

func viewOf(nav navigation.Navigation) navView {
	searching := nav.Searching()
	return navView{
		DetailLoading: nav.Loading(),
		SearchLoading: searching,
		SpinnerHidden: !searching,
	}
}

// navTable is embedded in every page for the script, which applies the
// view of a state while a fetch is in flight instead of deciding it itself.
type navTable struct {
	LoadingClass string             `json:"loadingClass"`
	PendingClass string             `json:"pendingClass"`
	States       map[string]navView `json:"states"`
}

func newNavTable() navTable {
	search := &url.URL{Path: "/", RawQuery: url.Values{navigation.SearchParam: {""}}.Encode()}
	page := &url.URL{Path: "/"}
	return navTable{
		LoadingClass: loadingClass,
		PendingClass: pendingClass,
		States: map[string]navView{
			navigation.Idle.String():       viewOf(navigation.Navigation{}),
			navigation.Navigating.String(): viewOf(navigation.Begin(http.MethodGet, page)),
			navigation.Submitting.String(): viewOf(navigation.Begin(http.MethodPost, page)),
			"searching":                    viewOf(navigation.Begin(http.MethodGet, search)),
		},
	}
}

var navStatesJSON = func() string { //nolint: gochecknoglobals // computed once
	b, err := json.Marshal(newNavTable())
	if err != nil {
		panic(err)
	}
	return string(b)
}()

func navStates() *html.Node {
	return el(atom.Script, attrs("id", navStatesID, "type", "application/json"), text(navStatesJSON))
}
