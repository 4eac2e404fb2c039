package stall

import (
	"strings"

	"bookfair-reservation/internal/pkg/errs"
)

type Size string

const (
	SizeSmall  Size = "SMALL"
	SizeMedium Size = "MEDIUM"
	SizeLarge  Size = "LARGE"
)

var ErrInvalidSize = errs.NewKind("invalid stall size", errs.ErrValidation)

func (s Size) String() string {
	return string(s)
}

func (s Size) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

// ParseSize upper-cases its input; blank means SMALL.
func ParseSize(raw string) (Size, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SizeSmall, nil
	}
	size := Size(strings.ToUpper(raw))
	if !size.IsValid() {
		return "", ErrInvalidSize
	}
	return size, nil
}
