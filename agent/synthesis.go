package agent

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scibound/researchagent/tools"
)

// maxItemsPerTool caps how many result items each tool contributes to
// the synthesis prompt.
const maxItemsPerTool = 3

// formatToolResults renders tool outcomes for the synthesis prompt.
// Failed invocations are included as error sections so the model can
// acknowledge missing information.
func formatToolResults(toolResults []*tools.Result) string {
	if len(toolResults) == 0 {
		return "No tools were used for this response."
	}
	var b strings.Builder
	for _, result := range toolResults {
		name := strings.ToUpper(result.ToolName)
		if !result.Success {
			fmt.Fprintf(&b, "\n=== %s ERROR ===\n", name)
			fmt.Fprintf(&b, "Error: %s\n", result.Message)
			continue
		}
		if result.Value != nil {
			fmt.Fprintf(&b, "\n=== %s RESULT ===\n", name)
			fmt.Fprintf(&b, "Calculation: %s\n", formatNumber(*result.Value))
			continue
		}
		fmt.Fprintf(&b, "\n=== %s RESULTS ===\n", name)
		for i, item := range result.Items {
			if i >= maxItemsPerTool {
				break
			}
			fmt.Fprintf(&b, "\nResult %d:\n", i+1)
			fmt.Fprintf(&b, "Title: %s\n", orNA(item.Title))
			if item.Authors != "" {
				fmt.Fprintf(&b, "Authors: %s\n", item.Authors)
			}
			if item.URL != "" {
				fmt.Fprintf(&b, "URL: %s\n", item.URL)
			}
			fmt.Fprintf(&b, "Content: %s\n", orNA(item.Content))
		}
	}
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
