package handlers

import (
	"strconv"

	"github.com/Jeffrey-enterN/entern-ghosted/internal/services"
	"github.com/Jeffrey-enterN/entern-ghosted/pkg/response"
	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyService *services.CompanyService
	statsService   *services.StatsService
}

func NewCompanyHandler(companyService *services.CompanyService, statsService *services.StatsService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		statsService:   statsService,
	}
}

// Create resolves or creates a company by name.
// POST /api/companies
//
// Resolver semantics: if the normalized name is already known the existing
// record is returned, so repeated creation is idempotent.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req services.ResolveCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	company, err := h.companyService.Resolve(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, company)
}

// GetByID returns a company together with its current stats.
// GET /api/companies/:id
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid company id")
		return
	}

	stats, err := h.statsService.GetCompanyStats(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, stats)
}

// GetStatsByName returns aggregate ghosting stats for a company name.
// GET /api/companies/stats?name=Acme
//
// 404 means nobody has reported this company yet; the extension shows
// "no data" for it, as opposed to an error banner for 5xx.
func (h *CompanyHandler) GetStatsByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.BadRequest(c, "query parameter 'name' is required")
		return
	}

	stats, err := h.statsService.GetCompanyStatsByName(name)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, stats)
}

// GetStatsByURL returns stats for the company a job listing URL was
// reported under.
// GET /api/companies/stats/url?job_url=...
func (h *CompanyHandler) GetStatsByURL(c *gin.Context) {
	jobURL := c.Query("job_url")
	if jobURL == "" {
		response.BadRequest(c, "query parameter 'job_url' is required")
		return
	}

	stats, err := h.statsService.GetCompanyStatsForURL(jobURL)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, stats)
}

// Search finds companies by name substring.
// GET /api/companies/search?q=acme
func (h *CompanyHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "query parameter 'q' is required")
		return
	}

	companies, err := h.companyService.Search(query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, companies)
}

// Top returns the most-reported companies.
// GET /api/companies/top?limit=5
func (h *CompanyHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	companies, err := h.companyService.Top(limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, companies)
}
