package handlers

import (
	"net/http"
	"strings"

	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/services/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HospitalHandler serves catalog browse, search, and compare endpoints.
type HospitalHandler struct {
	Service search.SearchService
}

// NewHospitalHandler builds a HospitalHandler.
func NewHospitalHandler(svc search.SearchService) *HospitalHandler {
	return &HospitalHandler{Service: svc}
}

// SearchHospitalsHandler lists hospitals matching the query-string filters.
func (h *HospitalHandler) SearchHospitalsHandler(c *gin.Context) {
	logger := getLogger(c)

	var filters models.SearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		logger.Error("Invalid search filters", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filters: " + err.Error()})
		return
	}

	results, err := h.Service.Search(filters)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hospitals": results, "count": len(results)})
}

// GetHospitalHandler returns a single hospital profile.
func (h *HospitalHandler) GetHospitalHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	hospital, err := h.Service.GetHospital(id)
	if err != nil {
		logger.Error("Failed to fetch hospital", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve hospital"})
		return
	}
	if hospital == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hospital not found"})
		return
	}
	c.JSON(http.StatusOK, hospital)
}

// CompareHospitalsHandler returns 2 to 4 hospitals side by side. Ids arrive as
// a comma-separated "ids" query parameter.
func (h *HospitalHandler) CompareHospitalsHandler(c *gin.Context) {
	raw := c.Query("ids")
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	hospitals, err := h.Service.Compare(ids)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hospitals": hospitals})
}

// SurgeryTypesHandler lists the surgery type catalog.
func (h *HospitalHandler) SurgeryTypesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"surgeryTypes": h.Service.SurgeryTypes()})
}

// RegionsHandler lists the regions hospitals are grouped under.
func (h *HospitalHandler) RegionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": h.Service.Regions()})
}
