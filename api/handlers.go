package api

import (
	"net/http"

	"offerforge/adapters/export"
	"offerforge/app"
	"offerforge/models"
	"offerforge/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type generatePayload struct {
	Profile models.BusinessProfile `json:"profile"`
	Tags    []string               `json:"tags"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	var payload generatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.offers.Generate(c.Request.Context(), app.GenerateRequest{
		OwnerID: ownerID(c),
		Profile: &payload.Profile,
		Tags:    payload.Tags,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	source := string(result.Package.Provenance.Source)
	if result.CacheHit {
		source = "cache"
	}
	c.Header("X-Offer-Source", source)
	c.JSON(http.StatusCreated, result)
}

func (s *Server) handleList(c *gin.Context) {
	filters := ports.OfferFilters{Tag: c.Query("tag")}
	if src := c.Query("source"); src != "" {
		filters.Source = models.PackageSource(src)
	}

	records, err := s.offers.List(c.Request.Context(), ownerID(c), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	if records == nil {
		records = []ports.OfferRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"offers": records})
}

func (s *Server) handleGet(c *gin.Context) {
	id, ok := offerID(c)
	if !ok {
		return
	}

	record, err := s.offers.Get(c.Request.Context(), ownerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s *Server) handleDelete(c *gin.Context) {
	id, ok := offerID(c)
	if !ok {
		return
	}

	if err := s.offers.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type optimizePayload struct {
	Dimension models.Dimension `json:"dimension"`
	Focus     string           `json:"focus"`
}

func (s *Server) handleOptimize(c *gin.Context) {
	id, ok := offerID(c)
	if !ok {
		return
	}

	var payload optimizePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.optimizer.Optimize(c.Request.Context(), app.OptimizeRequest{
		OwnerID:   ownerID(c),
		OfferID:   id,
		Dimension: payload.Dimension,
		Focus:     payload.Focus,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type performancePayload struct {
	Inquiries   int              `json:"inquiries"`
	Proposals   int              `json:"proposals"`
	Conversions int              `json:"conversions"`
	AvgDealSize float64          `json:"avg_deal_size"`
	TimeToClose int              `json:"time_to_close_days"`
	DateRange   models.DateRange `json:"date_range"`
}

func (s *Server) handleRecordPerformance(c *gin.Context) {
	id, ok := offerID(c)
	if !ok {
		return
	}

	var payload performancePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report, err := s.performance.Record(c.Request.Context(), app.RecordRequest{
		OwnerID:     ownerID(c),
		OfferID:     id,
		Inquiries:   payload.Inquiries,
		Proposals:   payload.Proposals,
		Conversions: payload.Conversions,
		AvgDealSize: payload.AvgDealSize,
		TimeToClose: payload.TimeToClose,
		DateRange:   payload.DateRange,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (s *Server) handlePerformanceReport(c *gin.Context) {
	id, ok := offerID(c)
	if !ok {
		return
	}

	report, err := s.performance.Report(c.Request.Context(), ownerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleExport(c *gin.Context) {
	id, ok := offerID(c)
	if !ok {
		return
	}

	format := export.Format(c.DefaultQuery("format", string(export.FormatJSON)))

	record, err := s.offers.Get(c.Request.Context(), ownerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := s.exporter.Render(record, format)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

func offerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offer id must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}
