package main

import (
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
	"www.velocidex.com/golang/sysmon-report/analysis"
	"www.velocidex.com/golang/sysmon-report/logging"
	"www.velocidex.com/golang/sysmon-report/parser"
	"www.velocidex.com/golang/sysmon-report/reporting"
)

var (
	report_command = app.Command(
		"report", "Parse a Sysmon XML export and write the report.").Default()

	report_command_input = report_command.Flag(
		"input", "Path to the Sysmon XML export.").String()

	report_command_output = report_command.Flag(
		"output", "Path to write the text report.").String()
)

func doReport() {
	config_obj, err := loadConfig()
	kingpin.FatalIfError(err, "Unable to load config file")

	if *report_command_input != "" {
		config_obj.InputPath = *report_command_input
	}
	if *report_command_output != "" {
		config_obj.OutputPath = *report_command_output
	}

	records, err := parser.LoadEvents(config_obj, config_obj.InputPath)
	kingpin.FatalIfError(err, "Unable to load events")

	counts := analysis.CountByType(records)
	suspicious := analysis.Suspicious(records)

	reporting.ConsoleSummary(config_obj, os.Stdout, records, counts, suspicious)

	err = reporting.WriteReport(
		config_obj, config_obj.OutputPath, records, counts, suspicious)
	kingpin.FatalIfError(err, "Unable to write report")

	logger := logging.GetLogger(config_obj, &logging.ToolComponent)
	logger.Info("Report saved to %v", config_obj.OutputPath)
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case report_command.FullCommand():
			doReport()

		default:
			return false
		}
		return true
	})
}
