package ports

import "colcon-ls/internal/types"

// OutputPort renders the final ordered record sequence. Implementations
// must write the whole sequence in one shot: no partial output.
type OutputPort interface {
	WriteRecords(records []types.PackageRecord, mode types.OutputMode) error
}
