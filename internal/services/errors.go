package services

import "errors"

// Sentinel errors returned by the company/report/stats services. Handlers
// translate these into 400/404 responses; anything else is a server error.
var (
	ErrEmptyCompanyName = errors.New("company name is required")
	ErrInvalidStage     = errors.New("invalid application stage")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrReportNotFound   = errors.New("report not found")
)
