package response

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// copyInto maps a read model onto a response DTO by field name.
func copyInto[T any](from any) T {
	var out T
	if err := copier.Copy(&out, from); err != nil {
		slog.Error("failed to map response", "error", err.Error())
	}
	return out
}
