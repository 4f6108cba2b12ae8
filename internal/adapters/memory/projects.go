// internal/adapters/memory/projects.go
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/ports"
)

// ProjectStore serves production projects and workstations held in memory
type ProjectStore struct {
	mu           sync.RWMutex
	projects     []domain.Project
	workstations []domain.Workstation
}

// Statically assert that *ProjectStore implements the ProjectStore interface.
var _ ports.ProjectStore = (*ProjectStore)(nil)

// NewProjectStore creates a store holding the given records
func NewProjectStore(projects []domain.Project, workstations []domain.Workstation) *ProjectStore {
	return &ProjectStore{
		projects:     append([]domain.Project(nil), projects...),
		workstations: append([]domain.Workstation(nil), workstations...),
	}
}

// NewSeededProjectStore creates a store with the production floor's
// current projects and workstations
func NewSeededProjectStore() *ProjectStore {
	return NewProjectStore(SeedProjects(), SeedWorkstations())
}

func (s *ProjectStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = cloneProject(p)
	}
	return out, nil
}

func (s *ProjectStore) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			clone := cloneProject(p)
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
}

func (s *ProjectStore) ListWorkstations(ctx context.Context) ([]domain.Workstation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Workstation(nil), s.workstations...), nil
}

func (s *ProjectStore) GetWorkstation(ctx context.Context, id string) (*domain.Workstation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.workstations {
		if w.ID == id {
			return &w, nil
		}
	}
	return nil, fmt.Errorf("workstation %s: %w", id, domain.ErrNotFound)
}

func cloneProject(p domain.Project) domain.Project {
	p.Workstations = append([]domain.ProjectStation(nil), p.Workstations...)
	return p
}

// SeedProjects returns the projects currently on the production floor
func SeedProjects() []domain.Project {
	return []domain.Project{
		{
			ID:               "1",
			Name:             "Wema Bank Job",
			IDTag:            "PRJ-001",
			Quantity:         150,
			DateStarted:      "2025-01-10",
			Workstations:     []domain.ProjectStation{{Name: "Assembly", Quantity: 12}, {Name: "Welding", Quantity: 8}},
			Status:           domain.ProjectActive,
			LineOperator:     "Marvellous Adesanya",
			CreatedDate:      "12th January 2026",
			ConfirmationDate: "12th January 2026",
			CurrentStage:     "1st stage of production",
		},
		{
			ID:               "2",
			Name:             "Offshore Drilling Rig",
			IDTag:            "PRJ-002",
			Quantity:         75,
			DateStarted:      "2025-01-05",
			Workstations:     []domain.ProjectStation{{Name: "Fabrication", Quantity: 15}, {Name: "QC", Quantity: 3}},
			Status:           domain.ProjectInProgress,
			LineOperator:     "John Doe",
			CreatedDate:      "5th January 2026",
			ConfirmationDate: "5th January 2026",
			CurrentStage:     "2nd stage of production",
		},
		{
			ID:               "3",
			Name:             "Solar Farm Installation",
			IDTag:            "PRJ-003",
			Quantity:         500,
			DateStarted:      "2024-12-15",
			Workstations:     []domain.ProjectStation{{Name: "Electrical", Quantity: 25}, {Name: "Assembly", Quantity: 40}},
			Status:           domain.ProjectCompleted,
			LineOperator:     "Jane Smith",
			CreatedDate:      "15th December 2025",
			ConfirmationDate: "15th December 2025",
			CurrentStage:     "Completed",
		},
		{
			ID:               "4",
			Name:             "Highway Expansion",
			IDTag:            "PRJ-004",
			Quantity:         200,
			DateStarted:      "2025-01-18",
			Workstations:     []domain.ProjectStation{{Name: "Concrete", Quantity: 18}, {Name: "Paving", Quantity: 22}},
			Status:           domain.ProjectActive,
			LineOperator:     "Mike Johnson",
			CreatedDate:      "18th January 2026",
			ConfirmationDate: "18th January 2026",
			CurrentStage:     "1st stage of production",
		},
		{
			ID:               "5",
			Name:             "Warehouse Automation",
			IDTag:            "PRJ-005",
			Quantity:         30,
			DateStarted:      "2025-01-12",
			Workstations:     []domain.ProjectStation{{Name: "Robotics", Quantity: 5}, {Name: "Software", Quantity: 2}},
			Status:           domain.ProjectOnHold,
			LineOperator:     "Sarah Williams",
			CreatedDate:      "12th January 2026",
			ConfirmationDate: "12th January 2026",
			CurrentStage:     "On Hold",
		},
		{
			ID:               "6",
			Name:             "Port Terminal Upgrade",
			IDTag:            "PRJ-006",
			Quantity:         120,
			DateStarted:      "2024-11-20",
			Workstations:     []domain.ProjectStation{{Name: "Crane", Quantity: 10}, {Name: "Logistics", Quantity: 14}},
			Status:           domain.ProjectCompleted,
			LineOperator:     "David Brown",
			CreatedDate:      "20th November 2025",
			ConfirmationDate: "20th November 2025",
			CurrentStage:     "Completed",
		},
	}
}

// SeedWorkstations returns the production workstations
func SeedWorkstations() []domain.Workstation {
	const superAdmin, manager = "Super Admin", "Station Manager"
	return []domain.Workstation{
		{ID: "1", Name: "Printing Station", Status: domain.WorkstationActive, ActiveProjects: 5, PausedProjects: 2, AdminName: "Moyin Oyelohunnu", AdminRole: superAdmin},
		{ID: "2", Name: "Assembly Station", Status: domain.WorkstationActive, ActiveProjects: 8, PausedProjects: 1, AdminName: "John Doe", AdminRole: manager},
		{ID: "3", Name: "Welding Station", Status: domain.WorkstationActive, ActiveProjects: 3, PausedProjects: 0, AdminName: "Jane Smith", AdminRole: superAdmin},
		{ID: "4", Name: "Fabrication Station", Status: domain.WorkstationPaused, ActiveProjects: 0, PausedProjects: 4, AdminName: "Mike Johnson", AdminRole: manager},
		{ID: "5", Name: "QC Station", Status: domain.WorkstationActive, ActiveProjects: 6, PausedProjects: 1, AdminName: "Sarah Williams", AdminRole: superAdmin},
		{ID: "6", Name: "Electrical Station", Status: domain.WorkstationActive, ActiveProjects: 4, PausedProjects: 2, AdminName: "David Brown", AdminRole: manager},
	}
}
