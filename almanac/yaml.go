package almanac

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/b97tsk/seedmap/rangemap"
)

type yamlDocument struct {
	Mode  string     `yaml:"mode,omitempty"`
	Seeds []yamlSeed `yaml:"seeds"`
	Maps  []yamlMap  `yaml:"maps"`
}

type yamlSeed struct {
	Start  uint64 `yaml:"start"`
	Length uint64 `yaml:"length"`
}

type yamlMap struct {
	Name    string      `yaml:"name,omitempty"`
	Entries []yamlEntry `yaml:"entries"`
}

type yamlEntry struct {
	Destination uint64 `yaml:"destination"`
	Source      uint64 `yaml:"source"`
	Length      uint64 `yaml:"length"`
}

// DecodeYAML reads an almanac document:
//
//	mode: ranges
//	seeds:
//	  - {start: 79, length: 14}
//	maps:
//	  - name: seed-to-soil
//	    entries:
//	      - {destination: 50, source: 98, length: 2}
func DecodeYAML(r io.Reader) (*Almanac, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	mode, err := parseSeedMode(doc.Mode)
	if err != nil {
		return nil, err
	}
	a := &Almanac{Mode: mode}
	for _, s := range doc.Seeds {
		a.Seeds = append(a.Seeds, rangemap.NewRange(s.Start, s.Length))
	}
	for _, m := range doc.Maps {
		entries := make([]rangemap.Entry, len(m.Entries))
		for i, e := range m.Entries {
			entries[i] = rangemap.NewEntry(e.Destination, e.Source, e.Length)
		}
		a.Maps = append(a.Maps, rangemap.NewMap(m.Name, entries...))
	}
	return a, nil
}

// EncodeYAML writes a in the form DecodeYAML reads.
func EncodeYAML(w io.Writer, a *Almanac) error {
	doc := yamlDocument{Mode: a.Mode.String()}
	for _, s := range a.Seeds {
		doc.Seeds = append(doc.Seeds, yamlSeed{Start: s.Start, Length: s.Length})
	}
	for _, m := range a.Maps {
		ym := yamlMap{Name: m.Name()}
		for _, e := range m.Entries() {
			ym.Entries = append(ym.Entries, yamlEntry{
				Destination: e.Destination,
				Source:      e.Source.Start,
				Length:      e.Source.Length,
			})
		}
		doc.Maps = append(doc.Maps, ym)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}
