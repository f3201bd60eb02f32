package reporting

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"www.velocidex.com/golang/sysmon-report/analysis"
	"www.velocidex.com/golang/sysmon-report/config"
	"www.velocidex.com/golang/sysmon-report/parser"
)

func testRecords() []*parser.EventRecord {
	return []*parser.EventRecord{
		{
			EventID:     "1",
			Description: parser.Describe("1"),
			UtcTime:     "2024-01-01T00:00:00Z",
			Image:       `C:\Windows\System32\cmd.exe`,
			ProcessID:   "1234",
			Computer:    "HOST1",
		},
		{
			EventID:     "3",
			Description: parser.Describe("3"),
			UtcTime:     "2024-01-01T00:00:05Z",
			Image:       `C:\Windows\System32\svchost.exe`,
			ProcessID:   "900",
			Computer:    "HOST1",
		},
		{
			EventID:     "1",
			Description: parser.Describe("1"),
			UtcTime:     "2024-01-01T00:00:09Z",
			Image:       `C:\Tools\PowerShell.EXE`,
			ProcessID:   "4321",
			Computer:    "HOST2",
		},
		{
			EventID:     "999",
			Description: parser.Describe("999"),
			Computer:    "HOST1",
		},
	}
}

func TestFormatReport(t *testing.T) {
	records := testRecords()
	counts := analysis.CountByType(records)
	suspicious := analysis.Suspicious(records)

	g := goldie.New(t)
	g.Assert(t, "TestFormatReport", FormatReport(records, counts, suspicious))
}

func TestFormatReportEmptyDataset(t *testing.T) {
	report := string(FormatReport(nil, nil, nil))

	// Header and section labels are present even with no events.
	assert.True(t, strings.HasPrefix(report,
		"Sysmon Human-Readable Report\n"+strings.Repeat("=", 40)+"\n\n"))
	assert.Contains(t, report, "Top event types:\n")
	assert.Contains(t, report, "Interesting / potentially suspicious events:\n")
	assert.Contains(t, report, "All events (full log in sentences):\n")
	assert.NotContains(t, report, "- At ")
}

func TestWriteReportCreatesParentDirectories(t *testing.T) {
	records := testRecords()
	counts := analysis.CountByType(records)
	suspicious := analysis.Suspicious(records)

	output_path := filepath.Join(t.TempDir(), "output", "sysmon_report.txt")
	err := WriteReport(config.GetDefaultConfig(),
		output_path, records, counts, suspicious)
	require.NoError(t, err)

	data, err := ioutil.ReadFile(output_path)
	require.NoError(t, err)
	assert.Equal(t, FormatReport(records, counts, suspicious), data)
}
