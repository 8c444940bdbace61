// Package filters holds the filter, sort and search rules for the leaderboard
// and detail views, and the query-string state they are driven by.
package filters

import "net/url"

// Param is one query-string backed filter field.
type Param struct {
	Name    string
	Default string
}

var (
	ParamCategory = Param{Name: "category"}
	ParamStatus   = Param{Name: "status"}
	ParamSearch   = Param{Name: "search"}
	ParamSort     = Param{Name: "sort"}
)

// ClaimParams are the parameters owned by the detail view.
var ClaimParams = []Param{ParamCategory, ParamStatus, ParamSearch, ParamSort}

// LeaderboardParams are the parameters owned by the leaderboard view.
var LeaderboardParams = []Param{ParamCategory, ParamSort}

// LookupParam finds a parameter by its query name.
func LookupParam(params []Param, name string) (Param, bool) {
	for _, p := range params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// State is filter state mirrored in a URL query string. A field set to its
// default is removed from the query instead of being stored empty.
type State struct {
	values url.Values
}

// NewState copies values so later Sets never leak into the caller's query.
// Empty values are dropped, so "?search=" reads and encodes as unset.
func NewState(values url.Values) *State {
	s := &State{values: url.Values{}}
	for k, vs := range values {
		var kept []string
		for _, v := range vs {
			if v != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) > 0 {
			s.values[k] = kept
		}
	}
	return s
}

// ParseState reads state from a raw query string. Malformed pairs are skipped.
func ParseState(rawQuery string) *State {
	values, _ := url.ParseQuery(rawQuery)
	return NewState(values)
}

func (s *State) Get(p Param) string {
	if v := s.values.Get(p.Name); v != "" {
		return v
	}
	return p.Default
}

func (s *State) Set(p Param, value string) {
	if value == p.Default || value == "" {
		s.values.Del(p.Name)
		return
	}
	s.values.Set(p.Name, value)
}

// With returns a copy of s with p set to value.
func (s *State) With(p Param, value string) *State {
	next := NewState(s.values)
	next.Set(p, value)
	return next
}

func (s *State) Encode() string {
	return s.values.Encode()
}

// Values returns a copy of the underlying query.
func (s *State) Values() url.Values {
	return NewState(s.values).values
}
