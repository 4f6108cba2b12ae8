// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `go generate ./test/mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/record_source.go -destination=record_source_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/auth.go -destination=auth_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/view_service.go -destination=view_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/dashboard_service.go -destination=dashboard_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/cache.go -destination=snapshot_cache_mock.go -package=mocks
