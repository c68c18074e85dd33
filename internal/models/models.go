package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents an admin account for the moderation dashboard
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password  string         `gorm:"size:255" json:"-"` // Hashed password
	Role      string         `gorm:"size:50;default:admin" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	LastLogin *time.Time     `json:"last_login"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Company is the canonical employer identity that ghosting reports attach to.
// NormalizedName (trimmed, lowercased Name) carries a unique index so two
// records can never coexist for the same normalized name. Companies are
// created lazily on first report and never deleted.
type Company struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:200;not null" json:"name"`
	NormalizedName string    `gorm:"uniqueIndex;size:200;not null" json:"-"`
	Website        string    `gorm:"size:500" json:"website,omitempty"`
	Domain         string    `gorm:"size:255" json:"domain,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NormalizeCompanyName returns the form of a company name used for
// deduplication. Display names keep their original casing.
func NormalizeCompanyName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Application stages at which ghosting can be reported.
const (
	StageInitialApplication      = "Initial Application"
	StageAfterPhoneScreen        = "After Phone Screen"
	StageAfterFirstInterview     = "After First Interview"
	StageAfterMultipleInterviews = "After Multiple Interviews"
	StageAfterFinalRound         = "After Final Round"
	StageAfterVerbalOffer        = "After Verbal Offer"
)

// ApplicationStages is the fixed enumeration, in hiring-funnel order.
var ApplicationStages = []string{
	StageInitialApplication,
	StageAfterPhoneScreen,
	StageAfterFirstInterview,
	StageAfterMultipleInterviews,
	StageAfterFinalRound,
	StageAfterVerbalOffer,
}

// IsValidStage reports whether stage is one of ApplicationStages.
func IsValidStage(stage string) bool {
	for _, s := range ApplicationStages {
		if s == stage {
			return true
		}
	}
	return false
}

// Report is a single ghosting report. Immutable after creation; CreatedAt
// doubles as the submission date.
type Report struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CompanyID    uint      `gorm:"index;not null" json:"company_id"`
	Company      *Company  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	JobTitle     string    `gorm:"size:300" json:"job_title,omitempty"`
	JobBoard     string    `gorm:"size:100" json:"job_board,omitempty"` // LinkedIn, Indeed, etc.
	JobURL       string    `gorm:"size:1000;index" json:"job_url,omitempty"`
	SubmitterID  string    `gorm:"size:100;index;not null" json:"submitter_id"` // opaque per-installation id
	Stage        string    `gorm:"size:50;not null" json:"application_stage"`
	Details      string    `gorm:"type:text" json:"details,omitempty"`
	Anonymous    bool      `gorm:"default:true" json:"anonymous"`
	IncidentDate time.Time `gorm:"not null" json:"incident_date"`
	CreatedAt    time.Time `gorm:"index" json:"report_date"`
}

// SystemLog represents a system operation log
type SystemLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Level     string    `gorm:"size:20;index" json:"level"` // info, warning, error
	Module    string    `gorm:"size:100;index" json:"module"`
	Action    string    `gorm:"size:200;index" json:"action"`
	Message   string    `gorm:"type:text" json:"message"`
	UserID    *uint     `json:"user_id"`
	IP        string    `gorm:"size:50" json:"ip"`
	UserAgent string    `gorm:"size:500" json:"user_agent"`
	Extra     string    `gorm:"type:text" json:"extra"` // JSON extra data
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName overrides
func (User) TableName() string      { return "users" }
func (Company) TableName() string   { return "companies" }
func (Report) TableName() string    { return "ghosting_reports" }
func (SystemLog) TableName() string { return "system_logs" }
