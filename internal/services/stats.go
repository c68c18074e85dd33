package services

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/Jeffrey-enterN/entern-ghosted/internal/models"
	"gorm.io/gorm"
)

// StatsService computes aggregate ghosting statistics for a company. Stats
// are derived from stored reports on every call and never cached.
type StatsService struct {
	db        *gorm.DB
	companies *CompanyService
	reports   *ReportService
}

func NewStatsService(db *gorm.DB, companies *CompanyService, reports *ReportService) *StatsService {
	return &StatsService{
		db:        db,
		companies: companies,
		reports:   reports,
	}
}

// RecentReport is the projection of a report shown in the recent-reports
// list.
type RecentReport struct {
	ID         uint   `json:"id"`
	Stage      string `json:"application_stage"`
	ReportDate string `json:"report_date"` // ISO-8601
	Details    string `json:"details,omitempty"`
}

// CompanyStats is the aggregate view for one company.
//
// GhostingRate is a presence indicator: 100 when any report exists, 0
// otherwise. A true "percentage of applicants ghosted" would need an
// applicant-count denominator that is never captured.
type CompanyStats struct {
	ID             uint           `json:"id"`
	Name           string         `json:"name"`
	GhostingRate   int            `json:"ghosting_rate"`
	TotalReports   int            `json:"total_reports"`
	StageBreakdown map[string]int `json:"stage_breakdown"`
	RecentReports  []RecentReport `json:"recent_reports"`
}

const recentReportLimit = 5

// GetCompanyStats aggregates all reports for the company. A known company
// with zero reports yields a populated all-zero result, not an error.
func (s *StatsService) GetCompanyStats(companyID uint) (*CompanyStats, error) {
	company, err := s.companies.GetByID(companyID)
	if err != nil {
		return nil, err
	}

	reports, err := s.reports.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}

	total := len(reports)

	ghostingRate := 0
	if total > 0 {
		ghostingRate = 100
	}

	breakdown := make(map[string]int, len(models.ApplicationStages))
	for _, stage := range models.ApplicationStages {
		breakdown[stage] = 0
	}
	if total > 0 {
		for _, r := range reports {
			if _, ok := breakdown[r.Stage]; ok {
				breakdown[r.Stage]++
			}
		}
		for stage, count := range breakdown {
			breakdown[stage] = int(math.Round(float64(count) / float64(total) * 100))
		}
	}

	// Most recent first; ids break timestamp ties deterministically.
	sort.Slice(reports, func(i, j int) bool {
		if !reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].CreatedAt.After(reports[j].CreatedAt)
		}
		return reports[i].ID < reports[j].ID
	})

	limit := recentReportLimit
	if total < limit {
		limit = total
	}
	recent := make([]RecentReport, 0, limit)
	for _, r := range reports[:limit] {
		recent = append(recent, RecentReport{
			ID:         r.ID,
			Stage:      r.Stage,
			ReportDate: r.CreatedAt.UTC().Format(time.RFC3339),
			Details:    r.Details,
		})
	}

	return &CompanyStats{
		ID:             company.ID,
		Name:           company.Name,
		GhostingRate:   ghostingRate,
		TotalReports:   total,
		StageBreakdown: breakdown,
		RecentReports:  recent,
	}, nil
}

// GetCompanyStatsByName resolves the company by normalized name and
// aggregates its reports. An unknown name is ErrCompanyNotFound, which is
// an expected outcome for companies nobody has reported yet; it must stay
// distinguishable from a zero-report result.
func (s *StatsService) GetCompanyStatsByName(name string) (*CompanyStats, error) {
	company, err := s.companies.GetByName(name)
	if err != nil {
		return nil, err
	}
	return s.GetCompanyStats(company.ID)
}

// GetCompanyStatsForURL finds any report submitted for the job listing URL
// and returns stats for its company.
func (s *StatsService) GetCompanyStatsForURL(jobURL string) (*CompanyStats, error) {
	if jobURL == "" {
		return nil, ErrReportNotFound
	}

	var report models.Report
	if err := s.db.Where("job_url = ?", jobURL).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	return s.GetCompanyStats(report.CompanyID)
}
