package applications

import "time"

// StatusApplied is the initial status assigned by the submission pipeline.
const StatusApplied = "applied"

// Application is a candidate submission against a job. ResumeURL is set once
// at creation and never changes; only Status and UpdatedAt are mutable.
type Application struct {
	ID                int64              `json:"id"`
	JobID             int64              `json:"jobId"`
	FullName          string             `json:"fullName"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	Location          string             `json:"location"`
	WorkAuth          string             `json:"workAuth"`
	CurrentRole       string             `json:"currentRole"`
	Experience        string             `json:"experience"`
	LinkedIn          string             `json:"linkedin"`
	Portfolio         string             `json:"portfolio"`
	ExpectedSalary    string             `json:"expectedSalary"`
	NoticePeriod      string             `json:"noticePeriod"`
	CoverLetter       string             `json:"coverLetter"`
	PreferredLocation string             `json:"preferredLocation"`
	Referral          string             `json:"referral"`
	ResumeURL         string             `json:"resumeUrl"`
	CustomFields      []CustomFieldValue `json:"customFields"`
	Status            string             `json:"status"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// CustomFieldValue is one submitted value for a job-defined custom field.
type CustomFieldValue struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// knownFieldSetters maps submitted field identifiers onto Application fields.
var knownFieldSetters = map[string]func(*Application, string){
	"fullName":          func(a *Application, v string) { a.FullName = v },
	"email":             func(a *Application, v string) { a.Email = v },
	"phone":             func(a *Application, v string) { a.Phone = v },
	"location":          func(a *Application, v string) { a.Location = v },
	"workAuth":          func(a *Application, v string) { a.WorkAuth = v },
	"currentRole":       func(a *Application, v string) { a.CurrentRole = v },
	"experience":        func(a *Application, v string) { a.Experience = v },
	"linkedin":          func(a *Application, v string) { a.LinkedIn = v },
	"portfolio":         func(a *Application, v string) { a.Portfolio = v },
	"expectedSalary":    func(a *Application, v string) { a.ExpectedSalary = v },
	"noticePeriod":      func(a *Application, v string) { a.NoticePeriod = v },
	"coverLetter":       func(a *Application, v string) { a.CoverLetter = v },
	"preferredLocation": func(a *Application, v string) { a.PreferredLocation = v },
	"referral":          func(a *Application, v string) { a.Referral = v },
}

// applyKnownFields copies recognized field values onto the application.
// Unrecognized keys are ignored; custom fields arrive separately.
func applyKnownFields(app *Application, fields map[string]string) {
	for key, value := range fields {
		if set, ok := knownFieldSetters[key]; ok {
			set(app, value)
		}
	}
}
