package sequence

import (
	"strings"

	"github.com/mycolab/genbank/models/constants"
)

var gapRemover = newGapRemover()

func newGapRemover() *strings.Replacer {
	oldnew := []string{}
	for _, g := range constants.GapCharacters {
		oldnew = append(oldnew, g, "")
	}
	return strings.NewReplacer(oldnew...)
}

// Normalize splits FASTA-like text into its description and sequence.
// Every label line is dropped; the first one becomes the description.
// Sequence lines are joined and, when clean is set, stripped of gaps
func Normalize(raw string, clean bool) (description string, sequence string) {
	var (
		seenLabel bool
		sb        strings.Builder
	)

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, constants.LabelMarker) {
			if !seenLabel {
				description = strings.TrimSpace(strings.TrimPrefix(trimmed, constants.LabelMarker))
				seenLabel = true
			}
			continue
		}

		sb.WriteString(trimmed)
	}

	return description, Clean(sb.String(), clean)
}

// Clean removes gap characters when requested; any other symbol,
// including its case, is left untouched
func Clean(sequence string, clean bool) string {
	if !clean {
		return sequence
	}
	return gapRemover.Replace(sequence)
}

// IsClean reports whether the sequence holds no gap characters
func IsClean(sequence string) bool {
	for _, g := range constants.GapCharacters {
		if strings.Contains(sequence, g) {
			return false
		}
	}
	return true
}
