package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"www.velocidex.com/golang/sysmon-report/parser"
)

func TestSentence(t *testing.T) {
	record := &parser.EventRecord{
		EventID:     "1",
		Description: parser.Describe("1"),
		UtcTime:     "2024-01-01T00:00:00Z",
		Image:       `C:\Windows\System32\cmd.exe`,
		ProcessID:   "1234",
		Computer:    "HOST1",
	}

	assert.Equal(t,
		`At 2024-01-01T00:00:00Z, on computer HOST1, Process created (a program started): C:\Windows\System32\cmd.exe (process ID 1234).`,
		Sentence(record))
}

func TestSentenceRendersAbsentFieldsAsNone(t *testing.T) {
	record := &parser.EventRecord{
		EventID:     "999",
		Description: parser.Describe("999"),
	}

	assert.Equal(t,
		"At None, on computer None, Other Sysmon event: None (process ID None).",
		Sentence(record))
}
