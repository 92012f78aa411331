package genbank

// Query is the caller's sequence after normalization; Id is
// derived from a content hash of the request body
type Query struct {
	Id          string `json:"id"`
	Description string `json:"description"`
	Sequence    string `json:"sequence"`
}

// Hit is one BLAST match reduced to its best HSP
type Hit struct {
	AccessionId string   `json:"accession_id"`
	Description string   `json:"description"`
	PctIdentity float64  `json:"pct_identity"`
	Coverage    float64  `json:"coverage"`
	Stats       HitStats `json:"stats"`
}

// HitStats holds the raw alignment statistics as reported by blastn
type HitStats struct {
	AlignLen  int     `json:"align_len" mapstructure:"align_len"`
	Identity  int     `json:"identity" mapstructure:"identity"`
	Gaps      int     `json:"gaps" mapstructure:"gaps"`
	QueryFrom int     `json:"query_from" mapstructure:"query_from"`
	QueryTo   int     `json:"query_to" mapstructure:"query_to"`
	HitFrom   int     `json:"hit_from" mapstructure:"hit_from"`
	HitTo     int     `json:"hit_to" mapstructure:"hit_to"`
	BitScore  float64 `json:"bit_score" mapstructure:"bit_score"`
	Evalue    float64 `json:"evalue" mapstructure:"evalue"`
	Qseq      string  `json:"qseq" mapstructure:"qseq"`
	Hseq      string  `json:"hseq" mapstructure:"hseq"`
}

// Record is the subset of a GenBank entry the enrichment step needs;
// Metadata keeps the whole entry as decoded from XML
type Record struct {
	Organism string                 `json:"organism"`
	Location string                 `json:"location,omitempty"`
	Sequence string                 `json:"sequence"`
	Metadata map[string]interface{} `json:"metadata"`
}

// ResultRecord is one element of the response body
type ResultRecord struct {
	Description string                 `json:"description"`
	Sequence    string                 `json:"sequence"`
	Accession   map[string]interface{} `json:"accession,omitempty"`
	Hsp         *Hit                   `json:"hsp,omitempty"`
}
