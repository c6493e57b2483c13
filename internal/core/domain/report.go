package domain

import "go.trai.ch/smolbuf"

// Classification describes how one text is stored.
type Classification struct {
	Label string        `json:"label,omitempty" yaml:"label,omitempty"`
	Text  smolbuf.Str16 `json:"text" yaml:"text"`
	Bytes int           `json:"bytes" yaml:"bytes"`
	Runes int           `json:"runes" yaml:"runes"`
	Heap  bool          `json:"heap" yaml:"heap"`
	Hash  uint64        `json:"hash" yaml:"hash"`
}

// Representation names where the text lives.
func (c *Classification) Representation() string {
	if c.Heap {
		return "heap"
	}
	return "inline"
}

// Bucket counts texts sharing one representation.
type Bucket struct {
	Count int `json:"count" yaml:"count"`
	Bytes int `json:"bytes" yaml:"bytes"`
}

// Add counts one more text of n bytes.
func (b *Bucket) Add(n int) {
	b.Count++
	b.Bytes += n
}

// Report summarizes the classification of a whole corpus.
type Report struct {
	Corpus   string           `json:"corpus" yaml:"corpus"`
	Entries  int              `json:"entries" yaml:"entries"`
	Inline   Bucket           `json:"inline" yaml:"inline"`
	Heap     Bucket           `json:"heap" yaml:"heap"`
	Distinct int              `json:"distinct" yaml:"distinct"`
	Longest  *Classification  `json:"longest,omitempty" yaml:"longest,omitempty"`
	Items    []Classification `json:"items,omitempty" yaml:"items,omitempty"`
}

// InlineRatio returns the share of entries stored inline, between 0 and 1.
func (r *Report) InlineRatio() float64 {
	if r.Entries == 0 {
		return 0
	}
	return float64(r.Inline.Count) / float64(r.Entries)
}
