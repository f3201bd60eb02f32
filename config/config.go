package config

import (
	"io/ioutil"

	"github.com/Velocidex/yaml/v2"
	errors "github.com/pkg/errors"
)

// Embed build time constants into here for reporting the binary version.
// https://husobee.github.io/golang/compile/time/variables/2015/12/03/compile-time-const.html
var (
	build_time  string
	commit_hash string
)

type Config struct {
	// Where the Sysmon XML export is read from.
	InputPath string `json:"InputPath,omitempty"`

	// Where the rendered text report is written. Parent
	// directories are created as needed.
	OutputPath string `json:"OutputPath,omitempty"`

	// When set, logs are also written to this file as JSONL.
	LogFile string `json:"LogFile,omitempty"`

	Verbose bool `json:"Verbose,omitempty"`
}

func GetDefaultConfig() *Config {
	return &Config{
		InputPath:  "data/sysmon_events.xml",
		OutputPath: "output/sysmon_report.txt",
	}
}

func LoadConfig(config_path string) (*Config, error) {
	result := GetDefaultConfig()

	data, err := ioutil.ReadFile(config_path)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to read config file")
	}

	err = yaml.UnmarshalStrict(data, result)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to parse config file")
	}

	return result, nil
}
