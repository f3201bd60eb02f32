package reporting

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"www.velocidex.com/golang/sysmon-report/analysis"
	"www.velocidex.com/golang/sysmon-report/config"
	"www.velocidex.com/golang/sysmon-report/parser"
)

const (
	maxConsoleCounts     = 10
	maxConsoleSentences  = 5
	maxConsoleSuspicious = 20
)

// ConsoleSummary prints a truncated view of the report: the top 10
// event types, the first 5 events as sentences and up to 20
// suspicious events both as a table and as sentences. The persisted
// report carries the full dataset.
//
// The closing caption is chatter for a human at a terminal, so it is
// suppressed when output is piped. Verbose mode forces it back on.
func ConsoleSummary(config_obj *config.Config, out io.Writer,
	records []*parser.EventRecord,
	counts []*analysis.EventTypeCount,
	suspicious []*parser.EventRecord) {

	fmt.Fprintf(out, "\nTop Sysmon event types:\n")
	countTable(out, counts)

	fmt.Fprintf(out, "\nSample human-readable events:\n")
	for idx, record := range records {
		if idx >= maxConsoleSentences {
			break
		}
		fmt.Fprintf(out, "- %s\n", Sentence(record))
	}

	fmt.Fprintf(out, "\nInteresting events (potentially higher priority):\n")
	suspiciousTable(out, suspicious)

	fmt.Fprintf(out, "\nInteresting events as sentences:\n")
	for idx, record := range suspicious {
		if idx >= maxConsoleSuspicious {
			break
		}
		fmt.Fprintf(out, "- %s\n", Sentence(record))
	}

	if isTerminal(out) || (config_obj != nil && config_obj.Verbose) {
		fmt.Fprintf(out, "\nParsed %v events, %v flagged as interesting.\n",
			humanize.Comma(int64(len(records))),
			humanize.Comma(int64(len(suspicious))))
	}
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd())
}

func countTable(out io.Writer, counts []*analysis.EventTypeCount) {
	table := newPlainTable(out, []string{"EventID", "Description", "Count"})

	for idx, row := range counts {
		if idx >= maxConsoleCounts {
			break
		}
		table.Append([]string{
			row.EventID, row.Description, strconv.Itoa(row.Count)})
	}

	table.Render()
}

func suspiciousTable(out io.Writer, suspicious []*parser.EventRecord) {
	table := newPlainTable(out, []string{
		"UtcTime", "Description", "Image", "ProcessId"})

	for idx, record := range suspicious {
		if idx >= maxConsoleSuspicious {
			break
		}
		table.Append([]string{
			orNone(record.UtcTime),
			record.Description,
			orNone(record.Image),
			orNone(record.ProcessID)})
	}

	table.Render()
}
