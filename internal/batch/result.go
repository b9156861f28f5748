package batch

import (
	"time"

	"github.com/idelchi/vigsig/internal/config"
)

// Status is the outcome of a single request.
type Status string

const (
	// StatusEncoded marks a plaintext that was encrypted and signed.
	StatusEncoded Status = "encoded"
	// StatusTrusted marks a ciphertext whose signature matched and which was decrypted.
	StatusTrusted Status = "trusted"
	// StatusUntrusted marks a ciphertext whose signature did not match. No plaintext is reported.
	StatusUntrusted Status = "untrusted"
	// StatusInvalidKeyword marks a request whose keyword was rejected.
	StatusInvalidKeyword Status = "invalid-keyword"
	// StatusMalformed marks a request that failed input validation.
	StatusMalformed Status = "malformed"
)

// Result represents the outcome of processing a single request.
type Result struct {
	// Request file the request was read from
	File string `json:"file"`

	// Position of the request within its file
	Index int `json:"index"`

	Op      config.Op `json:"op"`
	Input   string    `json:"input"`
	Keyword string    `json:"keyword"`
	Status  Status    `json:"status"`

	// Ciphertext for encode, plaintext for a trusted decode
	Output string `json:"output,omitempty"`

	// Computed signature of the ciphertext, for encode
	Signature string `json:"signature,omitempty"`

	// Reason the request was rejected
	Error string `json:"error,omitempty"`
}

// Stats counts the outcomes of a run.
type Stats struct {
	Files          int           `json:"files"`
	Requests       int           `json:"requests"`
	Encoded        int           `json:"encoded"`
	Trusted        int           `json:"trusted"`
	Untrusted      int           `json:"untrusted"`
	InvalidKeyword int           `json:"invalid_keyword"`
	Malformed      int           `json:"malformed"`
	Duration       time.Duration `json:"-"`
}

func (s *Stats) add(result Result) {
	s.Requests++

	switch result.Status {
	case StatusEncoded:
		s.Encoded++
	case StatusTrusted:
		s.Trusted++
	case StatusUntrusted:
		s.Untrusted++
	case StatusInvalidKeyword:
		s.InvalidKeyword++
	case StatusMalformed:
		s.Malformed++
	}
}

// Rejected returns the number of requests that produced no output.
func (s Stats) Rejected() int {
	return s.Untrusted + s.InvalidKeyword + s.Malformed
}

// Report is the output of a batch run.
type Report struct {
	RunID   string   `json:"run_id"`
	Results []Result `json:"results"`
	Stats   Stats    `json:"stats"`
}
