package services

import (
	"errors"
	"strings"
	"sync"

	"github.com/Jeffrey-enterN/entern-ghosted/internal/models"
	"gorm.io/gorm"
)

// CompanyService resolves free-text employer names to canonical Company
// records. Name matching is case-insensitive and whitespace-trimmed; the
// display name keeps its original casing.
type CompanyService struct {
	db *gorm.DB

	// mu serializes the duplicate check against creation so two concurrent
	// resolutions of an unseen name cannot both insert. The unique index on
	// normalized_name is the backstop for multi-process deployments.
	mu sync.Mutex
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{db: db}
}

type ResolveCompanyRequest struct {
	Name    string `json:"name" binding:"required"`
	Website string `json:"website"`
	Domain  string `json:"domain"`
}

// CompanyWithReportCount is a Company plus its total report count, used by
// the top-reported listing.
type CompanyWithReportCount struct {
	models.Company
	ReportCount int64 `json:"report_count"`
}

// Resolve finds the company matching the normalized name, creating it when
// unseen. An existing record is returned unchanged; website/domain supplied
// on a later resolve are not merged into it.
func (s *CompanyService) Resolve(req *ResolveCompanyRequest) (*models.Company, error) {
	normalized := models.NormalizeCompanyName(req.Name)
	if normalized == "" {
		return nil, ErrEmptyCompanyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var company models.Company
	err := s.db.Where("normalized_name = ?", normalized).First(&company).Error
	if err == nil {
		return &company, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	company = models.Company{
		Name:           req.Name,
		NormalizedName: normalized,
		Website:        req.Website,
		Domain:         req.Domain,
	}
	if err := s.db.Create(&company).Error; err != nil {
		// Lost a race against another process; the winner's record is canonical.
		var existing models.Company
		if ferr := s.db.Where("normalized_name = ?", normalized).First(&existing).Error; ferr == nil {
			return &existing, nil
		}
		return nil, err
	}

	return &company, nil
}

// GetByID returns a company by id.
func (s *CompanyService) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	if err := s.db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

// GetByName returns the company matching the normalized name.
func (s *CompanyService) GetByName(name string) (*models.Company, error) {
	normalized := models.NormalizeCompanyName(name)
	if normalized == "" {
		return nil, ErrEmptyCompanyName
	}

	var company models.Company
	if err := s.db.Where("normalized_name = ?", normalized).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

// escapeLike neutralizes LIKE metacharacters so the query is matched as a
// literal substring. Without this, q="%" would match every company and a
// name containing "%" or "_" could never be searched for. "|" is the escape
// character because a backslash inside a SQL string literal is not portable
// across the configured drivers.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "|", "||")
	s = strings.ReplaceAll(s, "%", "|%")
	s = strings.ReplaceAll(s, "_", "|_")
	return s
}

// Search returns companies whose name contains the query, case-insensitively.
func (s *CompanyService) Search(query string) ([]models.Company, error) {
	normalized := models.NormalizeCompanyName(query)
	if normalized == "" {
		return nil, ErrEmptyCompanyName
	}

	var companies []models.Company
	err := s.db.
		Where("normalized_name LIKE ? ESCAPE '|'", "%"+escapeLike(normalized)+"%").
		Order("name ASC").
		Limit(20).
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// Top returns the most-reported companies, report count descending.
func (s *CompanyService) Top(limit int) ([]CompanyWithReportCount, error) {
	if limit <= 0 {
		limit = 5
	}

	var results []CompanyWithReportCount
	err := s.db.Model(&models.Company{}).
		Select("companies.*, COUNT(ghosting_reports.id) as report_count").
		Joins("LEFT JOIN ghosting_reports ON ghosting_reports.company_id = companies.id").
		Group("companies.id").
		Order("report_count DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
