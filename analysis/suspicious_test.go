package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"www.velocidex.com/golang/sysmon-report/parser"
)

func imageRecord(image string) *parser.EventRecord {
	return &parser.EventRecord{
		EventID:     "1",
		Description: parser.Describe("1"),
		Image:       image,
	}
}

func TestSuspicious(t *testing.T) {
	records := []*parser.EventRecord{
		imageRecord(`C:\Windows\System32\cmd.exe`),
		imageRecord(`C:\Windows\System32\svchost.exe`),
		imageRecord(`C:\Program Files\PowerShell\7\pwsh.exe`),
		imageRecord(""),
		imageRecord(`C:\Windows\System32\wbem\WMIC.exe`),
	}

	suspicious := Suspicious(records)
	require.Equal(t, 3, len(suspicious))

	// Original order is preserved and each member is one of the
	// input records.
	assert.Same(t, records[0], suspicious[0])
	assert.Same(t, records[2], suspicious[1])
	assert.Same(t, records[4], suspicious[2])
}

func TestSuspiciousIsCaseInsensitive(t *testing.T) {
	records := []*parser.EventRecord{
		imageRecord(`C:\Tools\PowerShell.EXE`),
		imageRecord(`c:\windows\system32\RUNDLL32.exe`),
	}

	assert.Equal(t, 2, len(Suspicious(records)))
}

func TestSuspiciousMatchesSubstrings(t *testing.T) {
	// Substring containment, not whole token matching - partial
	// false positives are accepted by design.
	records := []*parser.EventRecord{
		imageRecord(`C:\evil\not_cmd.exe_backup`),
	}

	assert.Equal(t, 1, len(Suspicious(records)))
}

func TestSuspiciousSkipsAbsentImages(t *testing.T) {
	records := []*parser.EventRecord{
		imageRecord(""),
		{EventID: "999", Description: parser.Describe("999")},
	}

	assert.Equal(t, 0, len(Suspicious(records)))
}
