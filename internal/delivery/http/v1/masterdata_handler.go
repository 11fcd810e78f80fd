package v1

import (
	"net/http"
	"strconv"

	"resume-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MasterDataHandler struct {
	masterUC domain.MasterDataUsecase
}

func NewMasterDataHandler(api *gin.RouterGroup, masterUC domain.MasterDataUsecase) {
	handler := &MasterDataHandler{masterUC: masterUC}

	api.GET("/sectors", handler.ListSectors)
	api.GET("/courses", handler.ListCourses)
	api.GET("/skills", handler.ListSkills)
	api.GET("/countries", handler.ListCountries)
	api.GET("/states", handler.ListStates)
	api.GET("/cities", handler.ListCities)
	api.GET("/companies", handler.ListCompanies)
}

// optionalID parses an optional numeric query parameter, nil when absent or
// malformed.
func optionalID(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// ListSectors godoc
// @Summary      List active sectors
// @Tags         master-data
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /sectors [get]
func (h *MasterDataHandler) ListSectors(c *gin.Context) {
	sectors, err := h.masterUC.ListSectors(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sectors": sectors})
}

// ListCourses godoc
// @Summary      List active courses
// @Tags         master-data
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /courses [get]
func (h *MasterDataHandler) ListCourses(c *gin.Context) {
	courses, err := h.masterUC.ListCourses(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "courses": courses})
}

// ListSkills godoc
// @Summary      List active skills
// @Tags         master-data
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /skills [get]
func (h *MasterDataHandler) ListSkills(c *gin.Context) {
	skills, err := h.masterUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "skills": skills})
}

// ListCountries godoc
// @Summary      List active countries
// @Tags         master-data
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /countries [get]
func (h *MasterDataHandler) ListCountries(c *gin.Context) {
	countries, err := h.masterUC.ListCountries(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "countries": countries})
}

// ListStates godoc
// @Summary      List active states, optionally scoped to a country
// @Tags         master-data
// @Produce      json
// @Param        countryId  query     int  false  "Country id"
// @Success      200        {object}  map[string]interface{}
// @Router       /states [get]
func (h *MasterDataHandler) ListStates(c *gin.Context) {
	states, err := h.masterUC.ListStates(c.Request.Context(), optionalID(c, "countryId"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "states": states})
}

// ListCities godoc
// @Summary      List active cities, optionally scoped to a state
// @Tags         master-data
// @Produce      json
// @Param        stateId  query     int  false  "State id"
// @Success      200      {object}  map[string]interface{}
// @Router       /cities [get]
func (h *MasterDataHandler) ListCities(c *gin.Context) {
	cities, err := h.masterUC.ListCities(c.Request.Context(), optionalID(c, "stateId"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cities": cities})
}

// ListCompanies godoc
// @Summary      List active companies
// @Tags         master-data
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /companies [get]
func (h *MasterDataHandler) ListCompanies(c *gin.Context) {
	companies, err := h.masterUC.ListCompanies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "companies": companies})
}
