package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContestCode(t *testing.T) {
	assert.Equal(t, "contest-1", ContestCode(0))
	assert.Equal(t, "contest-2", ContestCode(1))
	assert.Equal(t, "contest-10", ContestCode(9))
}

func TestInterviewCode(t *testing.T) {
	assert.Equal(t, "ai-1", InterviewCode(0))
	assert.Equal(t, "ai-5", InterviewCode(4))
}

func TestMcqCode(t *testing.T) {
	tests := []struct {
		name       string
		technology string
		existing   int
		want       string
	}{
		{"first for technology", "java", 0, "mcq-java-1"},
		{"uppercase input is lowered", "Java", 1, "mcq-java-2"},
		{"mixed case", "PyThOn", 0, "mcq-python-1"},
		{"multi word technology", "Spring Boot", 2, "mcq-spring boot-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, McqCode(tt.technology, tt.existing))
		})
	}
}
