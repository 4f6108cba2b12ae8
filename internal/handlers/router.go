// internal/handlers/router.go
package handlers

import "net/http"

const apiV1 = "/api/v1"

// Routes groups the handlers served by the API. A nil handler leaves its
// routes unregistered.
type Routes struct {
	Views     *ViewHandler
	Export    *ExportHandler
	Dashboard *DashboardHandler
	Projects  *ProjectHandler
	Auth      *AuthHandler
	Health    *HealthHandler
}

// Register adds every route to mux using method-specific patterns
func (rt Routes) Register(mux *http.ServeMux) {
	if rt.Health != nil {
		mux.HandleFunc("GET /health", rt.Health.Health)
		mux.HandleFunc("GET /ready", rt.Health.Readiness)
		mux.HandleFunc("GET "+apiV1+"/health", rt.Health.Health)
	}

	if rt.Views != nil {
		mux.HandleFunc("POST "+apiV1+"/views/{view}", rt.Views.Mount)
		mux.HandleFunc("GET "+apiV1+"/sessions/{id}", rt.Views.Snapshot)
		mux.HandleFunc("POST "+apiV1+"/sessions/{id}/events", rt.Views.Dispatch)
		mux.HandleFunc("POST "+apiV1+"/sessions/{id}/refresh", rt.Views.Refresh)
		mux.HandleFunc("DELETE "+apiV1+"/sessions/{id}", rt.Views.Unmount)
		mux.HandleFunc("GET "+apiV1+"/lists/{view}", rt.Views.List)
	}

	if rt.Export != nil {
		mux.HandleFunc("GET "+apiV1+"/export/{view}", rt.Export.ExportExcel)
	}

	if rt.Dashboard != nil {
		mux.HandleFunc("GET "+apiV1+"/dashboard", rt.Dashboard.GetSummary)
		mux.HandleFunc("GET "+apiV1+"/dashboard/low-stock", rt.Dashboard.GetLowStock)
		mux.HandleFunc("GET "+apiV1+"/transfer-orders/stats", rt.Dashboard.GetTransferStats)
		mux.HandleFunc("GET "+apiV1+"/stock/stats", rt.Dashboard.GetStockStats)
		mux.HandleFunc("GET "+apiV1+"/locations", rt.Dashboard.ListLocations)
		mux.HandleFunc("GET "+apiV1+"/locations/{id}", rt.Dashboard.GetLocation)
	}

	if rt.Projects != nil {
		mux.HandleFunc("GET "+apiV1+"/projects", rt.Projects.ListProjects)
		mux.HandleFunc("GET "+apiV1+"/projects/{id}", rt.Projects.GetProject)
		mux.HandleFunc("GET "+apiV1+"/workstations", rt.Projects.ListWorkstations)
		mux.HandleFunc("GET "+apiV1+"/workstations/{id}", rt.Projects.GetWorkstation)
	}

	if rt.Auth != nil {
		mux.HandleFunc("POST "+apiV1+"/auth/login", rt.Auth.Login)
		mux.HandleFunc("POST "+apiV1+"/auth/register", rt.Auth.Register)
		mux.HandleFunc("POST "+apiV1+"/auth/forgot-password", rt.Auth.ForgotPassword)
		mux.HandleFunc("POST "+apiV1+"/auth/reset-password", rt.Auth.ResetPassword)
	}
}
