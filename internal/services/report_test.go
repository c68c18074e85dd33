package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Jeffrey-enterN/entern-ghosted/internal/models"
)

func mustCreateReport(t *testing.T, svc *ReportService, companyID uint, stage string) *models.Report {
	t.Helper()

	report, err := svc.Create(&CreateReportRequest{
		CompanyID:    companyID,
		SubmitterID:  "reporter-1",
		Stage:        stage,
		IncidentDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return report
}

func TestCreateReport(t *testing.T) {
	db := newTestDB(t)
	companies := NewCompanyService(db)
	reports := NewReportService(db)

	acme, _ := companies.Resolve(&ResolveCompanyRequest{Name: "Acme"})

	report, err := reports.Create(&CreateReportRequest{
		CompanyID:    acme.ID,
		JobTitle:     "Software Engineer",
		JobBoard:     "LinkedIn",
		JobURL:       "https://linkedin.example/jobs/1",
		SubmitterID:  "install-abc",
		Stage:        models.StageAfterPhoneScreen,
		Details:      "No response after the recruiter call",
		Anonymous:    true,
		IncidentDate: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if report.ID == 0 {
		t.Error("report should have an id")
	}
	if report.CreatedAt.IsZero() {
		t.Error("report should have a submission timestamp")
	}
	if report.Stage != models.StageAfterPhoneScreen {
		t.Errorf("Stage = %q, expected %q", report.Stage, models.StageAfterPhoneScreen)
	}
}

func TestCreateReport_MonotonicIDs(t *testing.T) {
	db := newTestDB(t)
	companies := NewCompanyService(db)
	reports := NewReportService(db)

	acme, _ := companies.Resolve(&ResolveCompanyRequest{Name: "Acme"})

	first := mustCreateReport(t, reports, acme.ID, models.StageInitialApplication)
	second := mustCreateReport(t, reports, acme.ID, models.StageAfterFinalRound)

	if second.ID <= first.ID {
		t.Errorf("ids should be monotonically assigned, got %d then %d", first.ID, second.ID)
	}
}

func TestCreateReport_InvalidStage(t *testing.T) {
	db := newTestDB(t)
	companies := NewCompanyService(db)
	reports := NewReportService(db)

	acme, _ := companies.Resolve(&ResolveCompanyRequest{Name: "Acme"})

	_, err := reports.Create(&CreateReportRequest{
		CompanyID:    acme.ID,
		SubmitterID:  "install-abc",
		Stage:        "After Coffee Chat",
		IncidentDate: time.Now(),
	})
	if !errors.Is(err, ErrInvalidStage) {
		t.Fatalf("error = %v, expected ErrInvalidStage", err)
	}

	// Rejection must not leave a partial write behind.
	var count int64
	db.Model(&models.Report{}).Count(&count)
	if count != 0 {
		t.Errorf("report store should be unchanged, found %d rows", count)
	}
}

func TestCreateReport_UnknownCompany(t *testing.T) {
	reports := NewReportService(newTestDB(t))

	_, err := reports.Create(&CreateReportRequest{
		CompanyID:    42,
		SubmitterID:  "install-abc",
		Stage:        models.StageInitialApplication,
		IncidentDate: time.Now(),
	})
	if !errors.Is(err, ErrCompanyNotFound) {
		t.Errorf("error = %v, expected ErrCompanyNotFound", err)
	}
}

func TestGetReportByID_NotFound(t *testing.T) {
	reports := NewReportService(newTestDB(t))

	if _, err := reports.GetByID(123); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("error = %v, expected ErrReportNotFound", err)
	}
}

func TestListByCompany(t *testing.T) {
	db := newTestDB(t)
	companies := NewCompanyService(db)
	reports := NewReportService(db)

	acme, _ := companies.Resolve(&ResolveCompanyRequest{Name: "Acme"})
	globex, _ := companies.Resolve(&ResolveCompanyRequest{Name: "Globex"})

	mustCreateReport(t, reports, acme.ID, models.StageInitialApplication)
	mustCreateReport(t, reports, acme.ID, models.StageAfterPhoneScreen)
	mustCreateReport(t, reports, globex.ID, models.StageAfterVerbalOffer)

	list, err := reports.ListByCompany(acme.ID)
	if err != nil {
		t.Fatalf("ListByCompany() error = %v", err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 reports, got %d", len(list))
	}
	for _, r := range list {
		if r.CompanyID != acme.ID {
			t.Errorf("report %d belongs to company %d, expected %d", r.ID, r.CompanyID, acme.ID)
		}
	}
}

func TestListBySubmitter(t *testing.T) {
	db := newTestDB(t)
	companies := NewCompanyService(db)
	reports := NewReportService(db)

	acme, _ := companies.Resolve(&ResolveCompanyRequest{Name: "Acme"})

	reports.Create(&CreateReportRequest{
		CompanyID:    acme.ID,
		SubmitterID:  "install-one",
		Stage:        models.StageInitialApplication,
		IncidentDate: time.Now(),
	})
	reports.Create(&CreateReportRequest{
		CompanyID:    acme.ID,
		SubmitterID:  "install-two",
		Stage:        models.StageAfterPhoneScreen,
		IncidentDate: time.Now(),
	})

	mine, err := reports.ListBySubmitter("install-one")
	if err != nil {
		t.Fatalf("ListBySubmitter() error = %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 report, got %d", len(mine))
	}
	if mine[0].Company == nil || mine[0].Company.Name != "Acme" {
		t.Error("submitter reports should include company display data")
	}
}
