// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "encoding/json"

// Limits selects a window of a list result.
type Limits struct {
	Start int `json:"start"`
	End   int `json:"end,omitempty"`
}

// LimitsReturned describes the window a list result covers.
type LimitsReturned struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Total int `json:"total"`
}

// Sort orders a list result.
type Sort struct {
	Method        string `json:"method,omitempty"`
	Order         string `json:"order,omitempty"`
	IgnoreArticle bool   `json:"ignorearticle,omitempty"`
}

// ListQuery bundles the optional arguments shared by library listings.
// Filter is passed through as given.
type ListQuery struct {
	Properties []string `json:"properties,omitempty"`
	Limits     *Limits  `json:"limits,omitempty"`
	Sort       *Sort    `json:"sort,omitempty"`
	Filter     any      `json:"filter,omitempty"`
}

// Properties is a property bag returned by the GetProperties family.
type Properties map[string]json.RawMessage

// Toggle is a boolean argument that Kodi also accepts as "toggle".
type Toggle struct {
	value  bool
	toggle bool
}

var (
	On        = Toggle{value: true}
	Off       = Toggle{value: false}
	ToggleNow = Toggle{toggle: true}
)

func (t Toggle) MarshalJSON() ([]byte, error) {
	if t.toggle {
		return []byte(`"toggle"`), nil
	}
	return json.Marshal(t.value)
}

// propertiesParams is the params shape of every GetProperties call.
type propertiesParams struct {
	Properties []string `json:"properties"`
}

// nonNil keeps a property list from being sent as null.
func nonNil(props []string) []string {
	if props == nil {
		return []string{}
	}
	return props
}
