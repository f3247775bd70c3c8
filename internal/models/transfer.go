package models

import "time"

type Direction string

const (
	DirectionUpload   Direction = "upload"
	DirectionDownload Direction = "download"
)

type Location string

const (
	LocationLocal  Location = "local"
	LocationRemote Location = "remote"
)

// Outcome is the terminal state of a single file in a reconciliation pass.
type Outcome string

const (
	OutcomeSkipped   Outcome = "skipped"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

// FileEntry identifies a file by name and side. Existence is the only fact
// the reconcilers compare.
type FileEntry struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

type TransferRecord struct {
	ID           int64     `json:"id" db:"id"`
	RunID        int64     `json:"run_id" db:"run_id"`
	Direction    Direction `json:"direction" db:"direction"`
	Name         string    `json:"name" db:"name"`
	Outcome      Outcome   `json:"outcome" db:"outcome"`
	Bytes        int64     `json:"bytes" db:"bytes"`
	ErrorMessage string    `json:"error_message,omitempty" db:"error_message"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PassReport is the ordered result of one upload or download pass.
type PassReport struct {
	Direction   Direction        `json:"direction"`
	Source      string           `json:"source"`
	Destination string           `json:"destination"`
	Records     []TransferRecord `json:"records"`
}

func NewPassReport(direction Direction, source, destination string) *PassReport {
	return &PassReport{
		Direction:   direction,
		Source:      source,
		Destination: destination,
	}
}

func (p *PassReport) Add(name string, outcome Outcome, bytes int64, err error) TransferRecord {
	record := TransferRecord{
		Direction: p.Direction,
		Name:      name,
		Outcome:   outcome,
		Bytes:     bytes,
		CreatedAt: time.Now(),
	}
	if err != nil {
		record.ErrorMessage = err.Error()
	}
	p.Records = append(p.Records, record)
	return record
}

func (p *PassReport) Count(outcome Outcome) int {
	n := 0
	for _, r := range p.Records {
		if r.Outcome == outcome {
			n++
		}
	}
	return n
}

// Names returns the names of the files that ended with the given outcome,
// in processing order.
func (p *PassReport) Names(outcome Outcome) []string {
	var names []string
	for _, r := range p.Records {
		if r.Outcome == outcome {
			names = append(names, r.Name)
		}
	}
	return names
}

func (p *PassReport) Bytes() int64 {
	var total int64
	for _, r := range p.Records {
		if r.Outcome == OutcomeSucceeded {
			total += r.Bytes
		}
	}
	return total
}
