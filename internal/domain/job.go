package domain

import "context"

// JobPosting is the create/update input. Master-data fields are free text;
// each is resolved to a row id (creating the row on first use) inside the
// posting transaction.
type JobPosting struct {
	Title           string
	Company         string
	Sector          string
	Course          string
	JobType         string
	Description     string
	Country         string
	State           string
	City            string
	ExperienceYears float64
	SalaryPackage   string
	Deadline        string
	ContactEmail    string
	Benefits        string
	// Skills are already split on commas and trimmed, empties discarded.
	Skills []string
	// Location is the denormalized "city, state, country" display string.
	Location string
}

type JobSkillRef struct {
	SkillID   int64  `json:"skillId"`
	SkillName string `json:"skillName"`
}

// Job is the denormalized job row joined with its master data.
type Job struct {
	JobID                int64         `json:"jobId"`
	Title                string        `json:"jobTitle"`
	Description          *string       `json:"jobDescription"`
	EducationRequirement *string       `json:"educationRequirement"`
	ExperienceYears      float64       `json:"experienceYears"`
	JobType              *string       `json:"jobType"`
	SalaryPackage        *string       `json:"salaryPackage"`
	Location             *string       `json:"jobLocation"`
	ApplicationDeadline  *string       `json:"applicationDeadline"`
	Benefits             *string       `json:"benefits"`
	ContactEmail         *string       `json:"contactEmail"`
	Status               string        `json:"jobStatus"`
	PostedDate           *string       `json:"postedDate"`
	CompanyName          string        `json:"companyName"`
	CompanyID            int64         `json:"companyId"`
	SectorName           *string       `json:"sectorName"`
	SectorID             *int64        `json:"sectorId"`
	CourseName           *string       `json:"courseName"`
	CourseID             *int64        `json:"courseId"`
	CityName             *string       `json:"cityName"`
	CityID               *int64        `json:"cityId"`
	StateName            *string       `json:"stateName"`
	StateID              *int64        `json:"stateId"`
	CountryName          *string       `json:"countryName"`
	CountryID            *int64        `json:"countryId"`
	Skills               []JobSkillRef `json:"skills"`
}

// JobSearchFilter holds the optional search parameters. Nil means the
// filter is not applied; experience bounds are inclusive.
type JobSearchFilter struct {
	Keyword       string
	Location      string
	JobType       string
	ExperienceMin *float64
	ExperienceMax *float64
	SectorID      *int64
	CourseID      *int64
}

type JobRepository interface {
	// CreateWithMasterData resolves company, sector, course, location and
	// skills to master rows (creating missing ones), inserts the job and
	// its skill links, all in one transaction.
	CreateWithMasterData(ctx context.Context, posting *JobPosting) (int64, error)
	// UpdateWithMasterData re-resolves master data, rewrites the job row and
	// replaces the full skill link set (delete all, re-add all).
	UpdateWithMasterData(ctx context.Context, id int64, posting *JobPosting) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context) ([]Job, error)
	Search(ctx context.Context, filter *JobSearchFilter) ([]Job, error)
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, posting *JobPosting) (int64, error)
	UpdateJob(ctx context.Context, id int64, posting *JobPosting) error
	GetJob(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context) ([]Job, error)
	SearchJobs(ctx context.Context, filter *JobSearchFilter) ([]Job, error)
	DeleteJob(ctx context.Context, id int64) error
}
