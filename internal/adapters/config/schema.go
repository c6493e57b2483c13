package config

import "go.trai.ch/smolbuf"

// Corpusfile represents the structure of a smolbuf.yaml corpus file.
//
// Texts decode straight into Str16, so every text goes through the same
// inline or heap routing as any other construction.
type Corpusfile struct {
	Version   string          `yaml:"version" json:"version"`
	Name      string          `yaml:"name" json:"name"`
	Texts     []smolbuf.Str16 `yaml:"texts" json:"texts"`
	Fragments [][]string      `yaml:"fragments" json:"fragments"`
}
