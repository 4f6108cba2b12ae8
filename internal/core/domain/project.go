// internal/core/domain/project.go
package domain

import "strings"

const (
	KeyQuantity       SortKey = "quantity"
	KeyDateStarted    SortKey = "dateStarted"
	KeyActiveProjects SortKey = "activeProjects"
	KeyPausedProjects SortKey = "pausedProjects"
)

// ProjectStatus is the lifecycle state of a production project
type ProjectStatus string

const (
	ProjectActive     ProjectStatus = "Active"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectCompleted  ProjectStatus = "Completed"
	ProjectOnHold     ProjectStatus = "On Hold"
)

// Slug returns the status as a category tag, e.g. "in-progress"
func (s ProjectStatus) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(s)), " ", "-")
}

// ProjectStation is a workstation allocation within a project
type ProjectStation struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Project is a production job routed through workstations
type Project struct {
	ID               string           `json:"id" validate:"required"`
	Name             string           `json:"name"`
	IDTag            string           `json:"idTag"`
	Quantity         int              `json:"quantity"`
	DateStarted      string           `json:"dateStarted"`
	Workstations     []ProjectStation `json:"workstations"`
	Status           ProjectStatus    `json:"status"`
	LineOperator     string           `json:"lineOperator,omitempty"`
	CreatedDate      string           `json:"createdDate,omitempty"`
	ConfirmationDate string           `json:"confirmationDate,omitempty"`
	CurrentStage     string           `json:"currentStage,omitempty"`
}

func (p Project) RecordID() string       { return p.ID }
func (p Project) RecordKind() RecordKind { return KindProject }

func (p Project) SearchFields() []string {
	return []string{p.Name, p.IDTag, p.LineOperator}
}

func (p Project) Field(key SortKey) (FieldValue, bool) {
	switch key {
	case KeyName:
		return StringValue(p.Name), true
	case KeyQuantity:
		return IntValue(int64(p.Quantity)), true
	case KeyDateStarted:
		return TimestampValue(p.DateStarted), true
	case KeyStatus:
		return StringValue(string(p.Status)), true
	}
	return FieldValue{}, false
}

// WorkstationStatus is whether a workstation is running
type WorkstationStatus string

const (
	WorkstationActive WorkstationStatus = "Active"
	WorkstationPaused WorkstationStatus = "Paused"
)

// Workstation is a production station and its load
type Workstation struct {
	ID             string            `json:"id" validate:"required"`
	Name           string            `json:"name"`
	Status         WorkstationStatus `json:"status"`
	ActiveProjects int               `json:"activeProjects"`
	PausedProjects int               `json:"pausedProjects"`
	AdminName      string            `json:"adminName"`
	AdminRole      string            `json:"adminRole"`
}

func (w Workstation) RecordID() string       { return w.ID }
func (w Workstation) RecordKind() RecordKind { return KindWorkstation }

func (w Workstation) SearchFields() []string {
	return []string{w.Name, w.AdminName}
}

func (w Workstation) Field(key SortKey) (FieldValue, bool) {
	switch key {
	case KeyName:
		return StringValue(w.Name), true
	case KeyActiveProjects:
		return IntValue(int64(w.ActiveProjects)), true
	case KeyPausedProjects:
		return IntValue(int64(w.PausedProjects)), true
	case KeyStatus:
		return StringValue(string(w.Status)), true
	}
	return FieldValue{}, false
}
