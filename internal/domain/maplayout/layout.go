package maplayout

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"bookfair-reservation/internal/domain/stall"
	"bookfair-reservation/internal/pkg/errs"
	"bookfair-reservation/internal/pkg/patch"
)

var (
	ErrHallsRequired    = errs.NewKind("Invalid request: 'halls' array is required", errs.ErrValidation)
	ErrNoStalls         = errs.NewKind("At least one hall with stalls is required", errs.ErrValidation)
	ErrStallNameMissing = errs.NewKind("stall entry has no stallId or id", errs.ErrValidation)
)

// EmptyLayout is served when nothing has been saved yet.
const EmptyLayout = `{"halls":[]}`

type StallEntry struct {
	Hall  int
	Index int
	Stall *stall.Stall
}

type EntryError struct {
	Hall  int
	Index int
	Err   error
}

func (e EntryError) Error() string {
	return fmt.Sprintf("hall %d stall %d: %v", e.Hall, e.Index, e.Err)
}

// Layout is a parsed halls/stalls document. Raw is stored verbatim.
type Layout struct {
	Raw         string
	HallsCount  int
	TotalStalls int
	Stalls      []StallEntry
	Errors      []EntryError
}

type stallEntryJSON struct {
	StallID *string  `json:"stallId"`
	ID      *string  `json:"id"`
	Size    *string  `json:"size"`
	X       *float64 `json:"x"`
	Y       *float64 `json:"y"`
	Genres  *string  `json:"genres"`
}

// Parse validates the document shape. A malformed stall entry does not fail
// the parse; it is reported in Errors and the rest are kept.
func Parse(raw []byte) (*Layout, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, ErrHallsRequired
	}

	var halls []json.RawMessage
	hallsRaw, ok := doc["halls"]
	if !ok || json.Unmarshal(hallsRaw, &halls) != nil || halls == nil {
		return nil, ErrHallsRequired
	}

	layout := &Layout{
		Raw:        string(raw),
		HallsCount: len(halls),
	}

	for h, hallRaw := range halls {
		entries := hallStalls(hallRaw)
		layout.TotalStalls += len(entries)

		for i, entryRaw := range entries {
			s, err := parseEntry(entryRaw)
			if err != nil {
				layout.Errors = append(layout.Errors, EntryError{Hall: h, Index: i, Err: err})
				continue
			}
			layout.Stalls = append(layout.Stalls, StallEntry{Hall: h, Index: i, Stall: s})
		}
	}

	if layout.TotalStalls == 0 {
		return nil, ErrNoStalls
	}

	return layout, nil
}

func hallStalls(hallRaw json.RawMessage) []json.RawMessage {
	var hall map[string]json.RawMessage
	if err := json.Unmarshal(hallRaw, &hall); err != nil {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(hall["stalls"], &entries); err != nil {
		return nil
	}
	return entries
}

func parseEntry(raw json.RawMessage) (*stall.Stall, error) {
	var entry stallEntryJSON
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, errs.Wrap(err, "malformed stall entry")
	}

	name := strings.TrimSpace(patch.Coalesce(entry.StallID, ""))
	if name == "" {
		name = strings.TrimSpace(patch.Coalesce(entry.ID, ""))
	}
	if name == "" {
		return nil, ErrStallNameMissing
	}

	size, err := stall.ParseSize(patch.Coalesce(entry.Size, ""))
	if err != nil {
		return nil, err
	}

	return stall.NewStall(
		name,
		size,
		coord(entry.X),
		coord(entry.Y),
		patch.Coalesce(entry.Genres, ""),
	)
}

func coord(v *float64) int32 {
	f := patch.Coalesce(v, 0)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int32(f)
}
