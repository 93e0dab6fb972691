// Package codes generates the sequential, human-readable codes assigned to
// assessment records. Sequence numbers are always derived from the current
// count of existing records in the relevant scope, never from a stored counter.
package codes

import (
	"fmt"
	"strings"
)

// ContestCode returns the code for a new contest record given the number of
// contest records the student already has.
func ContestCode(existing int) string {
	return fmt.Sprintf("contest-%d", existing+1)
}

// InterviewCode returns the code for a new AI mock interview record given the
// number of interview records the student already has.
func InterviewCode(existing int) string {
	return fmt.Sprintf("ai-%d", existing+1)
}

// McqCode returns the code for a new MCQ record. The sequence is scoped per
// technology: existing must be the count of the student's MCQ records whose
// technology matches case-insensitively.
func McqCode(technology string, existing int) string {
	return fmt.Sprintf("mcq-%s-%d", strings.ToLower(technology), existing+1)
}
