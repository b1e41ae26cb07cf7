package loader

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// xmlDocument matches <victories><victory choice="Rock" against="Scissors">text</victory></victories>.
// The root element name is not checked.
type xmlDocument struct {
	Victories []struct {
		Choice  *string `xml:"choice,attr"`
		Against *string `xml:"against,attr"`
		Text    string  `xml:",chardata"`
	} `xml:"victory"`
}

func decodeXML(path string) ([]rawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &MissingSourceError{Path: path, Err: err}
	}

	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}

	records := make([]rawRecord, 0, len(doc.Victories))
	for i, v := range doc.Victories {
		if v.Choice == nil || v.Against == nil {
			return nil, &ParseError{Source: path, Err: fmt.Errorf("victory %d needs choice and against attributes", i+1)}
		}
		records = append(records, rawRecord{
			source: path,
			index:  i + 1,
			winner: *v.Choice,
			loser:  *v.Against,
			text:   strings.TrimSpace(v.Text),
		})
	}
	return records, nil
}

// yamlDocument matches a top-level victories list.
type yamlDocument struct {
	Victories []struct {
		Choice  string `yaml:"choice"`
		Against string `yaml:"against"`
		Text    string `yaml:"text"`
	} `yaml:"victories"`
}

func decodeYAML(path string) ([]rawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &MissingSourceError{Path: path, Err: err}
	}

	var doc yamlDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}

	records := make([]rawRecord, 0, len(doc.Victories))
	for i, v := range doc.Victories {
		if v.Choice == "" || v.Against == "" {
			return nil, &ParseError{Source: path, Err: fmt.Errorf("victory %d needs choice and against", i+1)}
		}
		records = append(records, rawRecord{
			source: path,
			index:  i + 1,
			winner: v.Choice,
			loser:  v.Against,
			text:   strings.TrimSpace(v.Text),
		})
	}
	return records, nil
}
