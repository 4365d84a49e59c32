// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToggleMarshal(t *testing.T) {
	tests := []struct {
		toggle Toggle
		want   string
	}{
		{On, `true`},
		{Off, `false`},
		{ToggleNow, `"toggle"`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(struct {
			Play Toggle `json:"play"`
		}{tt.toggle})
		require.NoError(t, err)
		require.JSONEq(t, `{"play":`+tt.want+`}`, string(data))
	}
}

func TestPropertiesParamsNeverNull(t *testing.T) {
	data, err := json.Marshal(propertiesParams{nonNil(nil)})
	require.NoError(t, err)
	require.JSONEq(t, `{"properties":[]}`, string(data))
}

func TestListQueryOmitsUnset(t *testing.T) {
	require := require.New(t)

	data, err := json.Marshal(ListQuery{})
	require.NoError(err)
	require.JSONEq(`{}`, string(data))

	data, err = json.Marshal(ListQuery{
		Properties: []string{"title"},
		Limits:     &Limits{Start: 0, End: 10},
		Sort:       &Sort{Method: "title", Order: "ascending"},
	})
	require.NoError(err)
	require.JSONEq(`{"properties":["title"],"limits":{"start":0,"end":10},"sort":{"method":"title","order":"ascending"}}`, string(data))
}

func TestRawCodec(t *testing.T) {
	require := require.New(t)

	data, err := Raw.Encode(json.RawMessage(`{"a":1}`))
	require.NoError(err)
	require.Equal(`{"a":1}`, string(data))

	var raw json.RawMessage
	require.NoError(Raw.Decode([]byte(`[1,2]`), &raw))
	require.Equal(`[1,2]`, string(raw))

	var decoded []int
	require.NoError(Raw.Decode([]byte(`[1,2]`), &decoded))
	require.Equal([]int{1, 2}, decoded)
}
