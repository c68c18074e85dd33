package handlers

import (
	"time"

	"github.com/Jeffrey-enterN/entern-ghosted/internal/models"
	"github.com/Jeffrey-enterN/entern-ghosted/internal/services"
	"github.com/Jeffrey-enterN/entern-ghosted/pkg/response"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService  *services.ReportService
	companyService *services.CompanyService
}

func NewReportHandler(reportService *services.ReportService, companyService *services.CompanyService) *ReportHandler {
	return &ReportHandler{
		reportService:  reportService,
		companyService: companyService,
	}
}

// SubmitReportRequest is the payload the extension sends when a user
// reports being ghosted. The company is identified by free-text name and
// resolved (or created) server-side.
type SubmitReportRequest struct {
	CompanyName  string    `json:"company_name" binding:"required"`
	Website      string    `json:"website"`
	Domain       string    `json:"domain"`
	JobTitle     string    `json:"job_title"`
	JobBoard     string    `json:"job_board"`
	JobURL       string    `json:"job_url"`
	SubmitterID  string    `json:"submitter_id" binding:"required"`
	Stage        string    `json:"application_stage" binding:"required"`
	Details      string    `json:"details"`
	Anonymous    bool      `json:"anonymous"`
	IncidentDate time.Time `json:"incident_date" binding:"required"`
}

// Create submits a ghosting report.
// POST /api/reports
func (h *ReportHandler) Create(c *gin.Context) {
	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Reject the stage before touching identity so an invalid submission
	// does not leave a freshly created company behind.
	if !models.IsValidStage(req.Stage) {
		response.BadRequest(c, services.ErrInvalidStage.Error())
		return
	}

	company, err := h.companyService.Resolve(&services.ResolveCompanyRequest{
		Name:    req.CompanyName,
		Website: req.Website,
		Domain:  req.Domain,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	report, err := h.reportService.Create(&services.CreateReportRequest{
		CompanyID:    company.ID,
		JobTitle:     req.JobTitle,
		JobBoard:     req.JobBoard,
		JobURL:       req.JobURL,
		SubmitterID:  req.SubmitterID,
		Stage:        req.Stage,
		Details:      req.Details,
		Anonymous:    req.Anonymous,
		IncidentDate: req.IncidentDate,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, report)
}

// ListBySubmitter returns the reports a given installation has submitted,
// with company display data.
// GET /api/reports?submitter_id=...
func (h *ReportHandler) ListBySubmitter(c *gin.Context) {
	submitterID := c.Query("submitter_id")
	if submitterID == "" {
		response.BadRequest(c, "query parameter 'submitter_id' is required")
		return
	}

	reports, err := h.reportService.ListBySubmitter(submitterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, reports)
}
