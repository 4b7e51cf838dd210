package domain

import "time"

// Summary holds per-severity counts of the findings retained by the
// severity filter. Passed is reserved: checks only report problems, so
// there is no pass signal to count yet.
type Summary struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Info     int `json:"info"`
	Passed   int `json:"passed"`
}

func (s Summary) Total() int {
	return s.Critical + s.High + s.Medium + s.Low + s.Info
}

// ScanResult is the outcome of scanning one repository. It is constructed
// once by the scanner and never mutated afterwards; findings keep the
// order the check modules emitted them in.
type ScanResult struct {
	Repository Repository `json:"repository"`
	ScannedAt  time.Time  `json:"scanned_at"`
	Findings   []Finding  `json:"findings"`
	Score      int        `json:"score"`
	Summary    Summary    `json:"summary"`
}
