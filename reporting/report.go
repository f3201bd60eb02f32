package reporting

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	errors "github.com/pkg/errors"
	"www.velocidex.com/golang/sysmon-report/analysis"
	"www.velocidex.com/golang/sysmon-report/config"
	"www.velocidex.com/golang/sysmon-report/logging"
	"www.velocidex.com/golang/sysmon-report/parser"
)

const reportTitle = "Sysmon Human-Readable Report"

// FormatReport composes the full persisted report: title block, the
// complete count table, every suspicious event as a sentence, then
// every event as a sentence in original order.
func FormatReport(records []*parser.EventRecord,
	counts []*analysis.EventTypeCount,
	suspicious []*parser.EventRecord) []byte {

	buffer := &bytes.Buffer{}

	fmt.Fprintf(buffer, "%s\n", reportTitle)
	fmt.Fprintf(buffer, "%s\n\n", strings.Repeat("=", 40))

	fmt.Fprintf(buffer, "Top event types:\n")
	writeCountTable(buffer, counts)

	fmt.Fprintf(buffer, "\nInteresting / potentially suspicious events:\n")
	for _, record := range suspicious {
		fmt.Fprintf(buffer, "- %s\n", Sentence(record))
	}

	fmt.Fprintf(buffer, "\nAll events (full log in sentences):\n")
	for _, record := range records {
		fmt.Fprintf(buffer, "- %s\n", Sentence(record))
	}

	return buffer.Bytes()
}

// WriteReport writes the report as UTF-8 text, creating parent
// directories as needed. The file is overwritten in place - there is
// no atomic rename since a partially written report is simply
// regenerated on the next run.
func WriteReport(config_obj *config.Config, output_path string,
	records []*parser.EventRecord,
	counts []*analysis.EventTypeCount,
	suspicious []*parser.EventRecord) error {

	err := os.MkdirAll(filepath.Dir(output_path), 0700)
	if err != nil {
		return errors.Wrapf(err, "Unable to create output directory for %v",
			output_path)
	}

	data := FormatReport(records, counts, suspicious)
	err = ioutil.WriteFile(output_path, data, 0600)
	if err != nil {
		return errors.Wrapf(err, "Unable to write report to %v", output_path)
	}

	logger := logging.GetLogger(config_obj, &logging.ToolComponent)
	logger.Debug("Wrote %v bytes to %v", len(data), output_path)

	return nil
}

// newPlainTable returns a table stripped down to aligned columns -
// no borders or separators - so the persisted report stays greppable
// and diffable.
func newPlainTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")

	return table
}

func writeCountTable(out io.Writer, counts []*analysis.EventTypeCount) {
	table := newPlainTable(out, []string{"EventID", "Description", "Count"})

	for _, row := range counts {
		table.Append([]string{
			row.EventID, row.Description, strconv.Itoa(row.Count)})
	}

	table.Render()
}
