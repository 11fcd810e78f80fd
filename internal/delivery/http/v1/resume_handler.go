package v1

import (
	"net/http"
	"strconv"

	"resume-portal-backend/internal/domain"
	"resume-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(api *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	api.POST("/save-resume", handler.SaveResume)
	api.GET("/get-resumes", handler.ListResumes)
	api.GET("/get-resume/:id", handler.GetResume)
	api.POST("/increment-view/:id", handler.IncrementView)
	api.POST("/increment-download/:id", handler.IncrementDownload)
	api.DELETE("/delete-resume/:id", handler.DeleteResume)
}

type SaveResumeRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	DOB       string `json:"dob"`
	Location  string `json:"location"`
	Photo     string `json:"photo"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Objective string `json:"objective"`

	Experience []ExperienceRequest `json:"experience"`
	Education  []EducationRequest  `json:"education"`
	Projects   []ProjectRequest    `json:"projects"`

	PersonalSkills     []string `json:"personalSkills"`
	ProfessionalSkills []string `json:"professionalSkills"`
	TechnicalSkills    []string `json:"technicalSkills"`
	Certifications     []string `json:"certifications"`
	Hobbies            []string `json:"hobbies"`
}

type ExperienceRequest struct {
	Company   string `json:"company"`
	JobRole   string `json:"jobRole"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// EducationRequest keeps year and cgpa loosely typed; forms send them as
// strings or numbers interchangeably.
type EducationRequest struct {
	College    string `json:"college"`
	University string `json:"university"`
	Course     string `json:"course"`
	Year       any    `json:"year"`
	CGPA       any    `json:"cgpa"`
}

type ProjectRequest struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// SaveResume godoc
// @Summary      Save a complete resume
// @Description  Persists the resume and all of its sections in a single transaction.
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        payload  body      SaveResumeRequest  true  "Resume payload"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]interface{}
// @Router       /save-resume [post]
func (h *ResumeHandler) SaveResume(c *gin.Context) {
	var req SaveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("No data received"))
		return
	}

	input := &domain.ResumeInput{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		DOB:                req.DOB,
		Location:           req.Location,
		Photo:              req.Photo,
		LinkedIn:           req.LinkedIn,
		GitHub:             req.GitHub,
		Objective:          req.Objective,
		PersonalSkills:     req.PersonalSkills,
		ProfessionalSkills: req.ProfessionalSkills,
		TechnicalSkills:    req.TechnicalSkills,
		Certifications:     req.Certifications,
		Hobbies:            req.Hobbies,
	}
	for _, exp := range req.Experience {
		input.Experience = append(input.Experience, domain.ExperienceInput{
			Company:   exp.Company,
			JobRole:   exp.JobRole,
			StartDate: exp.StartDate,
			EndDate:   exp.EndDate,
		})
	}
	for _, edu := range req.Education {
		input.Education = append(input.Education, domain.EducationInput{
			College:    edu.College,
			University: edu.University,
			Course:     edu.Course,
			Year:       asString(edu.Year),
			CGPA:       asString(edu.CGPA),
		})
	}
	for _, prj := range req.Projects {
		input.Projects = append(input.Projects, domain.ProjectInput{
			Title:       prj.Title,
			Link:        prj.Link,
			Company:     prj.Company,
			Description: prj.Description,
		})
	}

	id, err := h.resumeUC.SaveResume(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Resume saved successfully!",
		"resume_id": id,
	})
}

// ListResumes godoc
// @Summary      List all resumes
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /get-resumes [get]
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	resumes, err := h.resumeUC.ListResumes(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if resumes == nil {
		resumes = []domain.ResumeSummary{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(resumes),
		"resumes": resumes,
	})
}

// GetResume godoc
// @Summary      Get one resume with all sections
// @Tags         resumes
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /get-resume/{id} [get]
func (h *ResumeHandler) GetResume(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid resume ID"))
		return
	}

	resume, err := h.resumeUC.GetResume(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "resume": resume})
}

// IncrementView godoc
// @Summary      Increment a resume's visitor counter
// @Tags         resumes
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /increment-view/{id} [post]
func (h *ResumeHandler) IncrementView(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid resume ID"))
		return
	}

	count, err := h.resumeUC.IncrementView(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "new_count": count})
}

// IncrementDownload godoc
// @Summary      Increment a resume's download counter
// @Tags         resumes
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /increment-download/{id} [post]
func (h *ResumeHandler) IncrementDownload(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid resume ID"))
		return
	}

	count, err := h.resumeUC.IncrementDownload(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Download count incremented",
		"download_count": count,
	})
}

// DeleteResume godoc
// @Summary      Delete a resume and all of its sections
// @Tags         resumes
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /delete-resume/{id} [delete]
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid resume ID"))
		return
	}

	if err := h.resumeUC.DeleteResume(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Resume deleted"})
}
