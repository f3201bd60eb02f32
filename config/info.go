package config

const VERSION = "0.1.0"

type Version struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
}

func GetVersion() *Version {
	return &Version{
		Name:      "sysmon-report",
		Version:   VERSION,
		Commit:    commit_hash,
		BuildTime: build_time,
	}
}
