// internal/core/catalog/projects.go
package catalog

import (
	"strconv"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/listview"
)

// Projects is the schema of the projects table. Categories are the status slugs.
func Projects() listview.Schema[domain.Project] {
	statuses := []domain.ProjectStatus{
		domain.ProjectActive,
		domain.ProjectInProgress,
		domain.ProjectCompleted,
		domain.ProjectOnHold,
	}

	categories := make([]listview.Category[domain.Project], 0, len(statuses))
	for _, status := range statuses {
		categories = append(categories, listview.Category[domain.Project]{
			Name:  status.Slug(),
			Label: string(status),
			Match: func(p domain.Project) bool { return p.Status == status },
		})
	}

	return listview.Schema[domain.Project]{
		View: ViewProjects,
		Fields: map[domain.SortKey]domain.FieldKind{
			domain.KeyName:        domain.KindString,
			domain.KeyQuantity:    domain.KindNumber,
			domain.KeyDateStarted: domain.KindTime,
			domain.KeyStatus:      domain.KindString,
		},
		Categories: categories,
		Columns: []listview.Column[domain.Project]{
			{Header: "Project", Width: 28, Value: func(p domain.Project) string { return p.Name }},
			{Header: "ID Tag", Width: 12, Value: func(p domain.Project) string { return p.IDTag }},
			{Header: "Quantity", Width: 10, Value: func(p domain.Project) string { return strconv.Itoa(p.Quantity) }},
			{Header: "Date Started", Width: 14, Value: func(p domain.Project) string { return p.DateStarted }},
			{Header: "Status", Width: 12, Value: func(p domain.Project) string { return string(p.Status) }},
			{Header: "Line Operator", Width: 20, Value: func(p domain.Project) string { return p.LineOperator }},
			{Header: "Workstations", Width: 10, Value: func(p domain.Project) string { return strconv.Itoa(len(p.Workstations)) }},
		},
		DefaultSort:     listview.SortState{Direction: listview.DirectionNone},
		DefaultPageSize: 10,
	}
}

// Workstations is the schema of the workstations table
func Workstations() listview.Schema[domain.Workstation] {
	byStatus := func(s domain.WorkstationStatus) func(domain.Workstation) bool {
		return func(w domain.Workstation) bool { return w.Status == s }
	}

	return listview.Schema[domain.Workstation]{
		View: ViewWorkstations,
		Fields: map[domain.SortKey]domain.FieldKind{
			domain.KeyName:           domain.KindString,
			domain.KeyActiveProjects: domain.KindNumber,
			domain.KeyPausedProjects: domain.KindNumber,
			domain.KeyStatus:         domain.KindString,
		},
		Categories: []listview.Category[domain.Workstation]{
			{Name: "active", Label: "Active", Match: byStatus(domain.WorkstationActive)},
			{Name: "paused", Label: "Paused", Match: byStatus(domain.WorkstationPaused)},
		},
		Columns: []listview.Column[domain.Workstation]{
			{Header: "Workstation", Width: 24, Value: func(w domain.Workstation) string { return w.Name }},
			{Header: "Status", Width: 10, Value: func(w domain.Workstation) string { return string(w.Status) }},
			{Header: "Active Projects", Width: 14, Value: func(w domain.Workstation) string { return strconv.Itoa(w.ActiveProjects) }},
			{Header: "Paused Projects", Width: 14, Value: func(w domain.Workstation) string { return strconv.Itoa(w.PausedProjects) }},
			{Header: "Admin", Width: 20, Value: func(w domain.Workstation) string { return w.AdminName }},
			{Header: "Role", Width: 16, Value: func(w domain.Workstation) string { return w.AdminRole }},
		},
		DefaultSort:     listview.SortState{Direction: listview.DirectionNone},
		DefaultPageSize: 10,
	}
}
