//go:build unit

package maplayout_test

import (
	"fmt"
	"strings"
	"testing"

	"bookfair-reservation/internal/domain/maplayout"
	"bookfair-reservation/internal/domain/stall"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		errIs error
	}{
		{name: "JSONでないNG", raw: `not json`, errIs: maplayout.ErrHallsRequired},
		{name: "hallsなしNG", raw: `{"foo":1}`, errIs: maplayout.ErrHallsRequired},
		{name: "hallsが配列でないNG", raw: `{"halls":"A"}`, errIs: maplayout.ErrHallsRequired},
		{name: "hallsがnullNG", raw: `{"halls":null}`, errIs: maplayout.ErrHallsRequired},
		{name: "空のhallsNG", raw: `{"halls":[]}`, errIs: maplayout.ErrNoStalls},
		{name: "stallsなしNG", raw: `{"halls":[{"name":"A"},{"stalls":[]}]}`, errIs: maplayout.ErrNoStalls},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := maplayout.Parse([]byte(tt.raw))
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestParse_Entries(t *testing.T) {
	raw := `{"halls":[
		{"name":"A","stalls":[
			{"stallId":"A01","size":"medium","x":10.7,"y":20},
			{"id":"A02"},
			{"stallId":"","id":"A03","size":"LARGE","genres":"Fiction"}
		]},
		{"name":"B","stalls":[
			{"size":"SMALL"},
			{"stallId":"B02","size":"GIANT"},
			{"stallId":42}
		]}
	]}`

	layout, err := maplayout.Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, 2, layout.HallsCount)
	assert.Equal(t, 6, layout.TotalStalls)
	require.Len(t, layout.Stalls, 3)
	require.Len(t, layout.Errors, 3)

	first := layout.Stalls[0].Stall
	assert.Equal(t, "A01", first.Name())
	assert.Equal(t, stall.SizeMedium, first.Size())
	assert.Equal(t, int32(10), first.X())
	assert.Equal(t, int32(20), first.Y())

	second := layout.Stalls[1].Stall
	assert.Equal(t, "A02", second.Name())
	assert.Equal(t, stall.SizeSmall, second.Size())
	assert.Equal(t, int32(0), second.X())

	third := layout.Stalls[2].Stall
	assert.Equal(t, "A03", third.Name())
	assert.Equal(t, "Fiction", third.Genres())

	assert.ErrorIs(t, layout.Errors[0].Err, maplayout.ErrStallNameMissing)
	assert.ErrorIs(t, layout.Errors[1].Err, stall.ErrInvalidSize)
	assert.Equal(t, 1, layout.Errors[2].Hall)
	assert.Equal(t, 2, layout.Errors[2].Index)
}

func TestParse_NineValidOneMissingName(t *testing.T) {
	entries := make([]string, 0, 10)
	for i := 1; i <= 9; i++ {
		entries = append(entries, fmt.Sprintf(`{"stallId":"C%02d","size":"SMALL","x":%d,"y":0}`, i, i*10))
	}
	entries = append(entries, `{"size":"SMALL","x":100,"y":0}`)
	raw := `{"halls":[{"name":"C","stalls":[` + strings.Join(entries, ",") + `]}]}`

	layout, err := maplayout.Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, 10, layout.TotalStalls)
	assert.Len(t, layout.Stalls, 9)
	assert.Len(t, layout.Errors, 1)
	assert.Equal(t, raw, layout.Raw)
}
