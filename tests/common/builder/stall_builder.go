//go:build unit || e2e

package builder

import (
	"bookfair-reservation/internal/domain/stall"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type StallBuilder struct {
	ID       int64
	Name     string
	Size     string
	X        int32
	Y        int32
	Reserved bool
	Genres   string
}

func NewStallBuilder() *StallBuilder {
	return &StallBuilder{
		ID:   1,
		Name: "A1",
		Size: "SMALL",
		X:    10,
		Y:    20,
	}
}

func (s *StallBuilder) With(mutate func(*StallBuilder)) *StallBuilder {
	mutate(s)
	return s
}

func (s *StallBuilder) WithID(id int64) *StallBuilder {
	s.ID = id
	return s
}

func (s *StallBuilder) WithName(name string) *StallBuilder {
	s.Name = name
	return s
}

func (s *StallBuilder) AsReserved() *StallBuilder {
	s.Reserved = true
	return s
}

func (s *StallBuilder) BuildDomain() *stall.Stall {
	return stall.Reconstruct(s.ID, s.Name, stall.Size(s.Size), s.X, s.Y, s.Reserved, s.Genres)
}

func (s *StallBuilder) BuildInfra() sqlstore.Stalls {
	genres := pgtype.Text{}
	if s.Genres != "" {
		genres = pgtype.Text{String: s.Genres, Valid: true}
	}
	return sqlstore.Stalls{
		ID:       s.ID,
		Name:     s.Name,
		Size:     s.Size,
		X:        s.X,
		Y:        s.Y,
		Reserved: s.Reserved,
		Genres:   genres,
	}
}

func (s *StallBuilder) BuildView() queries.StallView {
	return queries.StallView{
		ID:       s.ID,
		Name:     s.Name,
		Size:     s.Size,
		X:        s.X,
		Y:        s.Y,
		Reserved: s.Reserved,
		Genres:   s.Genres,
	}
}
