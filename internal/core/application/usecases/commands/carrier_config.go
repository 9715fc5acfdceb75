package commands

import (
	"shiplabel/internal/core/domain/model/kernel"
)

// CarrierConfig is the carrier account identity stamped on every generated
// label: the contracted agency and the client department code.
type CarrierConfig struct {
	Agency     kernel.Agency
	Department kernel.Department
}
