package v1

import (
	"net/http"
	"strconv"
	"strings"

	"resume-portal-backend/internal/domain"
	"resume-portal-backend/internal/usecase"
	"resume-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(api *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", handler.ListJobs)
		jobs.GET("/search", handler.SearchJobs)
		jobs.GET("/:id", handler.GetJob)
		jobs.POST("", handler.CreateJob)
		jobs.PUT("/:id", handler.UpdateJob)
		jobs.DELETE("/:id", handler.DeleteJob)
	}
}

// JobRequest is the create/update payload. Skills may arrive as one
// comma-separated string or as an array; experience as string or number.
type JobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Sector      string `json:"sector"`
	Course      string `json:"course"`
	JobType     string `json:"jobType"`
	Description string `json:"description"`
	Country     string `json:"country"`
	State       string `json:"state"`
	City        string `json:"city"`
	Experience  any    `json:"experience"`
	Package     string `json:"package"`
	Deadline    string `json:"deadline"`
	Email       string `json:"email"`
	Benefits    string `json:"benefits"`
	Skills      any    `json:"skills"`
}

func (r *JobRequest) toPosting() *domain.JobPosting {
	skillInput := ""
	if list := asStringList(r.Skills); list != nil {
		skillInput = strings.Join(list, ", ")
	}

	return &domain.JobPosting{
		Title:           r.Title,
		Company:         r.Company,
		Sector:          r.Sector,
		Course:          r.Course,
		JobType:         r.JobType,
		Description:     r.Description,
		Country:         r.Country,
		State:           r.State,
		City:            r.City,
		ExperienceYears: asFloat(r.Experience),
		SalaryPackage:   r.Package,
		Deadline:        r.Deadline,
		ContactEmail:    r.Email,
		Benefits:        r.Benefits,
		Skills:          usecase.SplitSkills(skillInput),
	}
}

// ListJobs godoc
// @Summary      List all job postings
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
		"count":   len(jobs),
	})
}

// GetJob godoc
// @Summary      Get one job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

// CreateJob godoc
// @Summary      Post a new job
// @Description  Company, sector, course, location and skills are resolved to master records, creating any that do not exist yet.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        payload  body      JobRequest  true  "Job details"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]interface{}
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("No data received"))
		return
	}

	id, err := h.jobUC.CreateJob(c.Request.Context(), req.toPosting())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Job posted successfully",
		"jobId":   id,
	})
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Description  Rewrites the job and replaces its full skill set.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id       path      int         true  "Job ID"
// @Param        payload  body      JobRequest  true  "Job details"
// @Success      200      {object}  map[string]interface{}
// @Failure      404      {object}  map[string]interface{}
// @Router       /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("No data received"))
		return
	}

	if err := h.jobUC.UpdateJob(c.Request.Context(), id, req.toPosting()); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job updated successfully"})
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job deleted successfully"})
}

// SearchJobs godoc
// @Summary      Search open job postings
// @Tags         jobs
// @Produce      json
// @Param        keyword        query     string  false  "Matches title, description and company"
// @Param        location       query     string  false  "Matches the denormalized location"
// @Param        jobType        query     string  false  "Exact job type"
// @Param        experienceMin  query     number  false  "Minimum years of experience"
// @Param        experienceMax  query     number  false  "Maximum years of experience"
// @Param        sectorId       query     int     false  "Sector id"
// @Param        courseId       query     int     false  "Course id"
// @Success      200            {object}  map[string]interface{}
// @Router       /jobs/search [get]
func (h *JobHandler) SearchJobs(c *gin.Context) {
	filter := &domain.JobSearchFilter{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		JobType:  c.Query("jobType"),
	}
	if f, err := strconv.ParseFloat(c.Query("experienceMin"), 64); err == nil {
		filter.ExperienceMin = &f
	}
	if f, err := strconv.ParseFloat(c.Query("experienceMax"), 64); err == nil {
		filter.ExperienceMax = &f
	}
	if n, err := strconv.ParseInt(c.Query("sectorId"), 10, 64); err == nil {
		filter.SectorID = &n
	}
	if n, err := strconv.ParseInt(c.Query("courseId"), 10, 64); err == nil {
		filter.CourseID = &n
	}

	jobs, err := h.jobUC.SearchJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
		"count":   len(jobs),
	})
}
