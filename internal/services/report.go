package services

import (
	"errors"
	"time"

	"github.com/Jeffrey-enterN/entern-ghosted/internal/models"
	"gorm.io/gorm"
)

// ReportService persists ghosting reports. Reports are immutable once
// created and are never deleted.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

type CreateReportRequest struct {
	CompanyID    uint      `json:"company_id" binding:"required"`
	JobTitle     string    `json:"job_title"`
	JobBoard     string    `json:"job_board"`
	JobURL       string    `json:"job_url"`
	SubmitterID  string    `json:"submitter_id" binding:"required"`
	Stage        string    `json:"application_stage" binding:"required"`
	Details      string    `json:"details"`
	Anonymous    bool      `json:"anonymous"`
	IncidentDate time.Time `json:"incident_date" binding:"required"`
}

// Create validates and stores a report. The stage must be one of the
// enumerated application stages and the company must already exist; nothing
// is written when validation fails.
func (s *ReportService) Create(req *CreateReportRequest) (*models.Report, error) {
	if !models.IsValidStage(req.Stage) {
		return nil, ErrInvalidStage
	}

	var count int64
	if err := s.db.Model(&models.Company{}).Where("id = ?", req.CompanyID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrCompanyNotFound
	}

	report := models.Report{
		CompanyID:    req.CompanyID,
		JobTitle:     req.JobTitle,
		JobBoard:     req.JobBoard,
		JobURL:       req.JobURL,
		SubmitterID:  req.SubmitterID,
		Stage:        req.Stage,
		Details:      req.Details,
		Anonymous:    req.Anonymous,
		IncidentDate: req.IncidentDate,
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, err
	}

	return &report, nil
}

// GetByID returns a report by id.
func (s *ReportService) GetByID(id uint) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

// ListByCompany returns all reports for a company. Order is unspecified;
// callers that need an ordering sort themselves.
func (s *ReportService) ListByCompany(companyID uint) ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Where("company_id = ?", companyID).Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListBySubmitter returns a submitter's reports, newest first, with the
// owning company preloaded for display.
func (s *ReportService) ListBySubmitter(submitterID string) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.
		Preload("Company").
		Where("submitter_id = ?", submitterID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
