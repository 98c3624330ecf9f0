package request

import (
	"fmt"
	"strings"

	"github.com/ndewijer/surebet-tracker/internal/model"
)

// ParseOperationFilter builds an operation filter from the status query parameter.
// An empty value or "all" selects every operation; otherwise the value must be a
// known status (case-insensitive).
func ParseOperationFilter(statusParam string) (model.OperationFilter, error) {
	status := strings.ToLower(strings.TrimSpace(statusParam))
	if status == "" || status == "all" {
		return model.OperationFilter{}, nil
	}

	if !model.ValidStatus[model.Status(status)] {
		return model.OperationFilter{}, fmt.Errorf("invalid status filter: %s", statusParam)
	}
	return model.OperationFilter{Status: model.Status(status)}, nil
}
