package domain

// AuditLog is an append-only store of records grouped by subject.
type AuditLog struct {
	ID     string   `json:"id"`
	Admin  Identity `json:"admin"`
	Writer Identity `json:"writer"`
}

// AuditRecord is a single append. Sequence is per subject, starting at 0.
type AuditRecord struct {
	Sequence  uint32 `json:"sequence"`
	Timestamp uint64 `json:"timestamp"` // unix seconds, non-decreasing per log
	SubjectID uint32 `json:"subject_id"`
	Reference string `json:"reference"`
	Note      string `json:"note"`
}
