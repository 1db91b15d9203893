package jobs

import "time"

// Approval statuses are free-form strings; these are the conventional values.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Job is a posted position carrying its application-form schema.
type Job struct {
	ID                        int64           `json:"id"`
	CompanyID                 int64           `json:"companyId"`
	Title                     string          `json:"title"`
	Department                string          `json:"department"`
	EmploymentType            string          `json:"employmentType"`
	WorkMode                  string          `json:"workMode"`
	Location                  string          `json:"location"`
	Description               string          `json:"description"`
	Responsibilities          string          `json:"responsibilities"`
	RequiredQualifications    string          `json:"requiredQualifications"`
	PreferredQualifications   string          `json:"preferredQualifications,omitempty"`
	SalaryRange               string          `json:"salaryRange"`
	Benefits                  string          `json:"benefits,omitempty"`
	PostingDate               time.Time       `json:"postingDate"`
	ApplicationDeadline       *time.Time      `json:"applicationDeadline,omitempty"`
	HiringManager             string          `json:"hiringManager"`
	RecruiterContact          string          `json:"recruiterContact"`
	EqualOpportunityStatement string          `json:"equalOpportunityStatement,omitempty"`
	ApprovalStatus            string          `json:"approvalStatus"`
	ApplicationForm           ApplicationForm `json:"applicationForm"`
	CreatedAt                 time.Time       `json:"createdAt"`
	UpdatedAt                 time.Time       `json:"updatedAt"`
}

// ApplicationForm is the per-job schema applications are validated against.
type ApplicationForm struct {
	RequiredFields []string         `json:"requiredFields"`
	CustomFields   []CustomFieldDef `json:"customFields"`
}

// CustomFieldDef declares a form field with no catalog entry.
type CustomFieldDef struct {
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Normalize replaces nil slices so the form always serializes as arrays.
func (f *ApplicationForm) Normalize() {
	if f.RequiredFields == nil {
		f.RequiredFields = []string{}
	}
	if f.CustomFields == nil {
		f.CustomFields = []CustomFieldDef{}
	}
}

// Patch is a shallow-merge update; nil fields are left untouched.
// ApplicationForm is replaced wholesale when present.
type Patch struct {
	CompanyID                 *int64           `json:"companyId"`
	Title                     *string          `json:"title"`
	Department                *string          `json:"department"`
	EmploymentType            *string          `json:"employmentType"`
	WorkMode                  *string          `json:"workMode"`
	Location                  *string          `json:"location"`
	Description               *string          `json:"description"`
	Responsibilities          *string          `json:"responsibilities"`
	RequiredQualifications    *string          `json:"requiredQualifications"`
	PreferredQualifications   *string          `json:"preferredQualifications"`
	SalaryRange               *string          `json:"salaryRange"`
	Benefits                  *string          `json:"benefits"`
	PostingDate               *time.Time       `json:"postingDate"`
	ApplicationDeadline       *time.Time       `json:"applicationDeadline"`
	HiringManager             *string          `json:"hiringManager"`
	RecruiterContact          *string          `json:"recruiterContact"`
	EqualOpportunityStatement *string          `json:"equalOpportunityStatement"`
	ApprovalStatus            *string          `json:"approvalStatus"`
	ApplicationForm           *ApplicationForm `json:"applicationForm"`
}

// Apply merges the patch into job and bumps UpdatedAt.
func (p Patch) Apply(job *Job, now time.Time) {
	if p.CompanyID != nil {
		job.CompanyID = *p.CompanyID
	}
	if p.Title != nil {
		job.Title = *p.Title
	}
	if p.Department != nil {
		job.Department = *p.Department
	}
	if p.EmploymentType != nil {
		job.EmploymentType = *p.EmploymentType
	}
	if p.WorkMode != nil {
		job.WorkMode = *p.WorkMode
	}
	if p.Location != nil {
		job.Location = *p.Location
	}
	if p.Description != nil {
		job.Description = *p.Description
	}
	if p.Responsibilities != nil {
		job.Responsibilities = *p.Responsibilities
	}
	if p.RequiredQualifications != nil {
		job.RequiredQualifications = *p.RequiredQualifications
	}
	if p.PreferredQualifications != nil {
		job.PreferredQualifications = *p.PreferredQualifications
	}
	if p.SalaryRange != nil {
		job.SalaryRange = *p.SalaryRange
	}
	if p.Benefits != nil {
		job.Benefits = *p.Benefits
	}
	if p.PostingDate != nil {
		job.PostingDate = *p.PostingDate
	}
	if p.ApplicationDeadline != nil {
		job.ApplicationDeadline = p.ApplicationDeadline
	}
	if p.HiringManager != nil {
		job.HiringManager = *p.HiringManager
	}
	if p.RecruiterContact != nil {
		job.RecruiterContact = *p.RecruiterContact
	}
	if p.EqualOpportunityStatement != nil {
		job.EqualOpportunityStatement = *p.EqualOpportunityStatement
	}
	if p.ApprovalStatus != nil {
		job.ApprovalStatus = *p.ApprovalStatus
	}
	if p.ApplicationForm != nil {
		form := *p.ApplicationForm
		form.Normalize()
		job.ApplicationForm = form
	}
	job.UpdatedAt = now
}
