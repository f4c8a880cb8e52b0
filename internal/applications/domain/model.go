package domain

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Application links an applicant to a project. Applicant name/email and the
// project name are copied in at submission time and deliberately never
// synced with later profile or project edits.
type Application struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	ProjectName string    `json:"projectName"`
	Status      Status    `json:"status"`
	AppliedAt   time.Time `json:"appliedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
