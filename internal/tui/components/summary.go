package components

import (
	"fmt"
	"strings"

	"github.com/botkeeper/botkeeper/internal/model"
)

// Summary renders the end-of-batch tally.
type Summary struct {
	data      *model.RunSummary
	cancelled bool
}

// NewSummary creates a summary component. A nil summary renders nothing.
func NewSummary(data *model.RunSummary, cancelled bool) Summary {
	return Summary{data: data, cancelled: cancelled}
}

// View renders the summary block, or an empty string while the run is live.
func (s Summary) View() string {
	if s.data == nil {
		return ""
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Processed %d/%d", s.data.Processed, s.data.Total))
	lines = append(lines, fmt.Sprintf("  %d succeeded, %d with step failures, %d unreachable",
		s.data.Succeeded, s.data.PartialFailures, s.data.Failures))
	if s.cancelled || s.data.Remaining > 0 {
		lines = append(lines, fmt.Sprintf("  cancelled with %d instances unprocessed", s.data.Remaining))
	}
	return strings.Join(lines, "\n")
}
