package stall

import (
	"strings"

	"bookfair-reservation/internal/domain/genre"
	"bookfair-reservation/internal/pkg/errs"
)

var (
	ErrNotFound        = errs.NewKind("Stall not found", errs.ErrNotFound)
	ErrNameRequired    = errs.NewKind("stall name is required", errs.ErrValidation)
	ErrAlreadyReserved = errs.NewKind("Stall already reserved", errs.ErrConflict)
)

type Stall struct {
	id       int64
	name     string
	size     Size
	x        int32
	y        int32
	reserved bool
	genres   string
}

// NewStall builds a stall that has not been persisted yet.
func NewStall(name string, size Size, x, y int32, genres string) (*Stall, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !size.IsValid() {
		return nil, ErrInvalidSize
	}
	return &Stall{
		name:   name,
		size:   size,
		x:      x,
		y:      y,
		genres: genre.Normalize(genres),
	}, nil
}

// Reconstruct rehydrates a stored stall.
func Reconstruct(id int64, name string, size Size, x, y int32, reserved bool, genres string) *Stall {
	return &Stall{
		id:       id,
		name:     name,
		size:     size,
		x:        x,
		y:        y,
		reserved: reserved,
		genres:   genres,
	}
}

func (s *Stall) ID() int64         { return s.id }
func (s *Stall) Name() string      { return s.name }
func (s *Stall) Size() Size        { return s.size }
func (s *Stall) X() int32          { return s.x }
func (s *Stall) Y() int32          { return s.y }
func (s *Stall) Reserved() bool    { return s.reserved }
func (s *Stall) Genres() string    { return s.genres }
func (s *Stall) IsAvailable() bool { return !s.reserved }

func (s *Stall) Reserve() error {
	if s.reserved {
		return ErrAlreadyReserved
	}
	s.reserved = true
	return nil
}

func (s *Stall) Release() {
	s.reserved = false
}
