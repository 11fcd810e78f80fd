package domain

import "context"

// ResumeInput is the raw save-resume payload after transport decoding.
// Numeric-looking fields stay strings here; coercion is lenient and happens
// while building the ResumeDocument.
type ResumeInput struct {
	Name      string
	Email     string
	Phone     string
	DOB       string
	Location  string
	Photo     string
	LinkedIn  string
	GitHub    string
	Objective string

	Experience         []ExperienceInput
	Education          []EducationInput
	Projects           []ProjectInput
	PersonalSkills     []string
	ProfessionalSkills []string
	TechnicalSkills    []string
	Certifications     []string
	Hobbies            []string
}

type ExperienceInput struct {
	Company   string
	JobRole   string
	StartDate string
	EndDate   string
}

type EducationInput struct {
	College    string
	University string
	Course     string
	Year       string
	CGPA       string
}

type ProjectInput struct {
	Title       string
	Link        string
	Company     string
	Description string
}

// ResumeDocument is the validated, fully-shaped set of rows written by one
// save transaction: the parent resume plus every child collection.
type ResumeDocument struct {
	Title    string
	Personal PersonalInformation

	Experience     []WorkExperience
	Education      []Education
	Projects       []Project
	Skills         []SkillEntry
	Certifications []string
	Interests      []string
}

type PersonalInformation struct {
	FullName        string
	Email           string
	PhoneNumber     string
	DateOfBirth     string
	Location        string
	PhotoPath       string
	LinkedInURL     string
	GitHubURL       string
	CareerObjective string
}

type WorkExperience struct {
	CompanyName     string
	JobRole         string
	DateOfJoin      string
	LastWorkingDate string
	// Experience is the precomputed human-readable duration, empty when the
	// dates did not parse.
	Experience string
}

type Education struct {
	College    string
	University string
	Course     string
	Year       *int64
	CGPA       *float64
}

type Project struct {
	Title        string
	Link         string
	Organization string
	Description  string
}

type SkillEntry struct {
	SkillType string
	SkillName string
}

// ResumeSummary is one row of the resume listing.
type ResumeSummary struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Status        string  `json:"status"`
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Location      *string `json:"location"`
	CreatedAt     *string `json:"created_at"`
	UpdatedAt     *string `json:"updated_at"`
	VisitorCount  int64   `json:"visitor_count"`
	DownloadCount int64   `json:"download_count"`
}

// ResumeDetail is the full single-resume response including every child
// collection, flattened with the personal information.
type ResumeDetail struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Status        string  `json:"status"`
	CreatedAt     *string `json:"created_at"`
	UpdatedAt     *string `json:"updated_at"`
	VisitorCount  int64   `json:"visitor_count"`
	DownloadCount int64   `json:"download_count"`
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	DOB           *string `json:"dob"`
	Location      *string `json:"location"`
	LinkedIn      *string `json:"linkedin"`
	GitHub        *string `json:"github"`
	Objective     *string `json:"objective"`

	Experience []ExperienceDetail `json:"experience"`
	Education  []EducationDetail  `json:"education"`
	Projects   []ProjectDetail    `json:"projects"`
	Skills     []SkillDetail      `json:"skills"`
}

type ExperienceDetail struct {
	Company *string `json:"company"`
	Role    *string `json:"role"`
	Start   *string `json:"start"`
	End     *string `json:"end"`
}

type EducationDetail struct {
	College *string  `json:"college"`
	Course  *string  `json:"course"`
	Year    *int64   `json:"year"`
	CGPA    *float64 `json:"cgpa"`
}

type ProjectDetail struct {
	Title *string `json:"title"`
	Link  *string `json:"link"`
	Desc  *string `json:"desc"`
}

type SkillDetail struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type ResumeRepository interface {
	// SaveDocument writes the parent row and all child rows in one
	// transaction and returns the generated resume id.
	SaveDocument(ctx context.Context, doc *ResumeDocument) (int64, error)
	Fetch(ctx context.Context) ([]ResumeSummary, error)
	GetByID(ctx context.Context, id int64) (*ResumeDetail, error)
	IncrementViewCount(ctx context.Context, id int64) (int64, error)
	IncrementDownloadCount(ctx context.Context, id int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type ResumeUsecase interface {
	SaveResume(ctx context.Context, input *ResumeInput) (int64, error)
	ListResumes(ctx context.Context) ([]ResumeSummary, error)
	GetResume(ctx context.Context, id int64) (*ResumeDetail, error)
	IncrementView(ctx context.Context, id int64) (int64, error)
	IncrementDownload(ctx context.Context, id int64) (int64, error)
	DeleteResume(ctx context.Context, id int64) error
}
