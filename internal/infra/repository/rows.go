package repository

import "bookfair-reservation/internal/infra"

// expectOne turns an :execrows result into NOT_FOUND when nothing matched.
func expectOne(op string, affected int64, err error) error {
	if err != nil {
		return infra.WrapRepoErr("failed to "+op, err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(op+": no matching row", nil, infra.KindNotFound)
	}
	return nil
}
