/*
Sysmon Report - Dig Deeper
Copyright (C) 2019-2025 Rapid7 Inc.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published
by the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package parser loads Sysmon XML event log exports and extracts a
// flat record per event. Only elements in the Windows event
// namespace are considered - the documents are matched by namespace
// URI, not by whatever prefix the producer happened to choose.
package parser

import (
	"encoding/xml"
	"io"
	"os"

	errors "github.com/pkg/errors"
	"www.velocidex.com/golang/sysmon-report/config"
	"www.velocidex.com/golang/sysmon-report/logging"
)

const SysmonNamespace = "http://schemas.microsoft.com/win/2004/08/events/event"

// One parsed Sysmon event. All fields except Description are
// optional in the source - an absent field is carried as the empty
// string. Values are carried verbatim with no type coercion so the
// report reflects exactly what the log contains.
type EventRecord struct {
	EventID     string
	Description string
	UtcTime     string
	Image       string
	ProcessID   string
	Computer    string
}

type rawEvent struct {
	System    *rawSystem    `xml:"http://schemas.microsoft.com/win/2004/08/events/event System"`
	EventData *rawEventData `xml:"http://schemas.microsoft.com/win/2004/08/events/event EventData"`
}

type rawSystem struct {
	EventID  string `xml:"http://schemas.microsoft.com/win/2004/08/events/event EventID"`
	Computer string `xml:"http://schemas.microsoft.com/win/2004/08/events/event Computer"`
}

type rawEventData struct {
	Data []rawData `xml:"http://schemas.microsoft.com/win/2004/08/events/event Data"`
}

type rawData struct {
	Name  string `xml:"Name,attr"`
	Value string `xml:",chardata"`
}

func (self *rawEvent) record() *EventRecord {
	result := &EventRecord{}

	if self.System != nil {
		result.EventID = self.System.EventID
		result.Computer = self.System.Computer
	}

	if self.EventData != nil {
		for _, data := range self.EventData.Data {
			switch data.Name {
			case "UtcTime":
				result.UtcTime = data.Value
			case "Image":
				result.Image = data.Value
			case "ProcessId":
				result.ProcessID = data.Value
			}
		}
	}

	result.Description = Describe(result.EventID)

	return result
}

// LoadEvents parses the file as XML and returns a record for each
// Event element found anywhere in the document, in document order.
// Missing fields inside a well formed event are never an error; a
// missing file or a document which is not well formed XML is.
func LoadEvents(config_obj *config.Config, xml_path string) (
	[]*EventRecord, error) {

	fd, err := os.Open(xml_path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "Sysmon export not found at %v", xml_path)
		}
		return nil, errors.Wrapf(err, "Unable to open %v", xml_path)
	}
	defer fd.Close()

	records, err := parseEvents(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "%v is not well formed XML", xml_path)
	}

	logger := logging.GetLogger(config_obj, &logging.ParserComponent)
	logger.Info("Loaded %v events from %v", len(records), xml_path)

	return records, nil
}

func parseEvents(reader io.Reader) ([]*EventRecord, error) {
	result := []*EventRecord{}

	decoder := xml.NewDecoder(reader)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		if start.Name.Space != SysmonNamespace ||
			start.Name.Local != "Event" {
			continue
		}

		event := &rawEvent{}
		err = decoder.DecodeElement(event, &start)
		if err != nil {
			return nil, err
		}

		result = append(result, event.record())
	}

	return result, nil
}
