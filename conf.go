package main

import (
	"encoding/xml"
	"io"
	"path"
	"strings"
)

type confProperty struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

type parsedJobConf struct {
	XMLName    xml.Name       `xml:"configuration"`
	Properties []confProperty `xml:"property"`
}

// loadConf loads a hadoop conf from an xml file represented by r.
func loadConf(r io.Reader) (map[string]string, error) {
	decoder := xml.NewDecoder(r)

	parsed := parsedJobConf{}
	err := decoder.Decode(&parsed)
	if err != nil {
		return nil, err
	}

	conf := make(map[string]string, len(parsed.Properties))
	for _, prop := range parsed.Properties {
		conf[prop.Name] = prop.Value
	}

	return conf, nil
}

// logDirsFromConf pulls the places task logs could have ended up out of a
// hadoop conf: the YARN aggregated log dir, the nodemanagers' local log
// dirs, and the pre-YARN userlogs directory.
func logDirsFromConf(conf map[string]string) []string {
	var dirs []string

	if v := conf["yarn.nodemanager.remote-app-log-dir"]; v != "" {
		dirs = append(dirs, v)
	}
	if v := conf["yarn.nodemanager.log-dirs"]; v != "" {
		for _, dir := range strings.Split(v, ",") {
			if dir = strings.TrimSpace(dir); dir != "" {
				dirs = append(dirs, dir)
			}
		}
	}
	if v := conf["hadoop.log.dir"]; v != "" {
		dirs = append(dirs, path.Join(v, "userlogs"))
	}

	return dirs
}
