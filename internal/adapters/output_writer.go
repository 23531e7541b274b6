package adapters

import (
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"colcon-ls/internal/ports"
	"colcon-ls/internal/types"
)

// OutputWriterAdapter renders the final record sequence. The whole
// rendering is buffered and written with a single call so a failure never
// leaves partial output behind.
type OutputWriterAdapter struct {
	Out io.Writer
}

func NewOutputWriterAdapter(out io.Writer) OutputWriterAdapter {
	return OutputWriterAdapter{Out: out}
}

func (a OutputWriterAdapter) WriteRecords(records []types.PackageRecord, mode types.OutputMode) error {
	var rendered string
	switch mode {
	case types.OutputModeLines, "":
		var b strings.Builder
		for _, rec := range records {
			fmt.Fprintf(&b, "%s\t%s\t(%s)\n", rec.Name, rec.Path, rec.BuildType)
		}
		rendered = b.String()
	case types.OutputModeNames:
		var b strings.Builder
		for _, rec := range records {
			b.WriteString(rec.Name)
			b.WriteByte('\n')
		}
		rendered = b.String()
	case types.OutputModePaths:
		var b strings.Builder
		for _, rec := range records {
			b.WriteString(rec.Path)
			b.WriteByte('\n')
		}
		rendered = b.String()
	case types.OutputModeYAML:
		if records == nil {
			// An empty workspace renders an empty list, not "null".
			records = []types.PackageRecord{}
		}
		encoded, err := yaml.Marshal(records)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode records as YAML").
				WithCause(err)
		}
		rendered = string(encoded)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown output mode: " + string(mode))
	}

	if _, err := io.WriteString(a.Out, rendered); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write output").
			WithCause(err)
	}
	return nil
}

var _ ports.OutputPort = OutputWriterAdapter{}
