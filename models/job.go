package models

import (
	"time"
)

// Job represents one tracked job application
// @Description Full job application model
type Job struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID         string     `json:"userId" gorm:"type:uuid;not null;index"`
	Title          string     `json:"title" binding:"required"`
	Company        string     `json:"company"`
	Industry       string     `json:"industry"`
	RecruiterEmail string     `json:"recruiterEmail"`
	URL            string     `json:"url"`
	Type           string     `json:"type"`
	Location       string     `json:"location"`
	Salary         int64      `json:"salary"`
	Currency       string     `json:"currency"`
	CvURL          string     `json:"cvUrl"`
	Applied        bool       `json:"applied"`
	Emailed        bool       `json:"emailed"`
	CvResponded    bool       `json:"cvResponded" gorm:"column:cv_responded"`
	InterviewEmail bool       `json:"interviewEmail"`
	ContractEmail  bool       `json:"contractEmail"`
	Rejected       bool       `json:"rejected"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	DeletedAt      *time.Time `json:"deletedAt,omitempty" gorm:"index" swaggerignore:"true"`
}

func (Job) TableName() string {
	return "jobs"
}

// NormalizeStages front-fills the pipeline booleans: a later stage being
// set implies every earlier stage is set too.
func (j *Job) NormalizeStages() {
	if j.ContractEmail {
		j.InterviewEmail = true
	}
	if j.InterviewEmail {
		j.CvResponded = true
	}
	if j.CvResponded {
		j.Emailed = true
	}
	if j.Emailed {
		j.Applied = true
	}
}

// JobCreate model for creating a job application
type JobCreate struct {
	Title          string `json:"title" binding:"required" example:"Backend Engineer"`
	Company        string `json:"company" example:"Acme Corp"`
	Industry       string `json:"industry" example:"Fintech"`
	RecruiterEmail string `json:"recruiterEmail" example:"recruiter@acme.com"`
	URL            string `json:"url" example:"https://acme.com/careers/123"`
	Type           string `json:"type" example:"Full-time"`
	Location       string `json:"location" example:"Jakarta"`
	Salary         int64  `json:"salary" example:"12000000"`
	Currency       string `json:"currency" example:"IDR"`
	Applied        bool   `json:"applied"`
}

// JobUpdate model for updating a job application; pointers so that only
// the fields present in the request body are touched.
type JobUpdate struct {
	Title          *string `json:"title"`
	Company        *string `json:"company"`
	Industry       *string `json:"industry"`
	RecruiterEmail *string `json:"recruiterEmail"`
	URL            *string `json:"url"`
	Type           *string `json:"type"`
	Location       *string `json:"location"`
	Salary         *int64  `json:"salary"`
	Currency       *string `json:"currency"`
	Applied        *bool   `json:"applied"`
	Emailed        *bool   `json:"emailed"`
	CvResponded    *bool   `json:"cvResponded"`
	InterviewEmail *bool   `json:"interviewEmail"`
	ContractEmail  *bool   `json:"contractEmail"`
	Rejected       *bool   `json:"rejected"`
}
