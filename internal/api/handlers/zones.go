package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/autodns/internal/api/models"
	"github.com/jroosing/autodns/internal/bind"
	"github.com/jroosing/autodns/internal/zone"
	"github.com/jroosing/autodns/internal/zonegen"
)

// generate renders artifacts for the stored settings overridden by the request body.
func (h *Handler) generate(c *gin.Context) (*zonegen.Artifacts, error) {
	var req models.GenerateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			return nil, errBadRequest{err}
		}
	}

	in, _, err := h.currentInput()
	if err != nil {
		return nil, err
	}
	if req.IPAddress != "" {
		in.IPAddress = req.IPAddress
	}
	if req.Domain != "" {
		in.Domain = req.Domain
	}
	applyOptions(&in.Options, req.Options)

	var gen zonegen.Generator
	if cfg := h.config(); cfg != nil {
		gen = cfg.Generator()
	}
	return gen.Generate(in)
}

type errBadRequest struct{ err error }

func (e errBadRequest) Error() string { return e.err.Error() }

func zoneFile(name, path, text string) (models.ZoneFile, error) {
	z, err := zone.ParseText(text, name)
	if err != nil {
		return models.ZoneFile{}, err
	}
	records := make([]models.ZoneRecord, 0, len(z.Records))
	for _, rr := range z.Records {
		records = append(records, models.ZoneRecord{Name: rr.Name, TTL: rr.TTL, Type: rr.Type, Value: rr.Value})
	}
	return models.ZoneFile{Name: name, Path: path, Text: text, Records: records}, nil
}

func preview(art *zonegen.Artifacts) (models.PreviewResponse, error) {
	fwd, err := zoneFile(art.ForwardZoneName(), art.Paths.ForwardZone, art.ForwardZone)
	if err != nil {
		return models.PreviewResponse{}, err
	}
	rev, err := zoneFile(art.ReverseZoneName(), art.Paths.ReverseZone, art.ReverseZone)
	if err != nil {
		return models.PreviewResponse{}, err
	}
	return models.PreviewResponse{
		Derived:   art.Derived,
		Forward:   fwd,
		Reverse:   rev,
		NamedConf: models.ConfSnippet{Path: art.Paths.NamedConfLocal, Text: art.ConfSnippet},
	}, nil
}

// PreviewZones godoc
// @Summary Preview zones
// @Description Renders both zone files and the named.conf.local snippet without touching disk
// @Tags zones
// @Accept json
// @Produce json
// @Param request body models.GenerateRequest false "Overrides for the stored settings"
// @Success 200 {object} models.PreviewResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/preview [post]
func (h *Handler) PreviewZones(c *gin.Context) {
	art, err := h.generate(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp, err := preview(art)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if h.db != nil {
		g, err := h.db.RecordGeneration(art, false, nil)
		if err != nil {
			h.logger.Warn("failed to record generation", "err", err)
		} else {
			resp.GenerationID = g.ID
		}
	}

	c.JSON(http.StatusOK, resp)
}

// ApplyZones godoc
// @Summary Apply zones
// @Description Renders the zones, backs up and writes the files, verifies them and restarts BIND
// @Tags zones
// @Accept json
// @Produce json
// @Param request body models.GenerateRequest false "Overrides for the stored settings"
// @Success 200 {object} models.ApplyResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ApplyResponse
// @Failure 502 {object} models.ApplyResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/apply [post]
func (h *Handler) ApplyZones(c *gin.Context) {
	applier := h.GetApplier()
	if applier == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "zone apply is not enabled"})
		return
	}

	art, err := h.generate(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	pv, err := preview(art)
	if err != nil {
		h.respondError(c, err)
		return
	}
	resp := models.ApplyResponse{PreviewResponse: pv}

	report, applyErr := applier.Apply(c.Request.Context(), art)
	resp.Report = report

	if h.db != nil && report != nil {
		var checks *bool
		if len(report.Checks) > 0 {
			passed := report.ChecksPassed()
			checks = &passed
		}
		g, err := h.db.RecordGeneration(art, len(report.Written) > 0, checks)
		if err != nil {
			h.logger.Warn("failed to record generation", "err", err)
		} else {
			resp.GenerationID = g.ID
		}
	}

	if applyErr != nil {
		resp.Error = applyErr.Error()
		status := http.StatusInternalServerError
		var svcErr *bind.ServiceError
		if errors.As(applyErr, &svcErr) {
			status = http.StatusBadGateway
		}
		h.logger.Error("zone apply failed", "domain", art.ForwardZoneName(), "err", applyErr)
		c.JSON(status, resp)
		return
	}

	h.logger.Info("zones applied",
		"domain", art.ForwardZoneName(),
		"reverse_zone", art.ReverseZoneName(),
		"checks_passed", report.ChecksPassed(),
		"restarted", report.Restarted,
	)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) fail(c *gin.Context, err error) {
	var bad errBadRequest
	if errors.As(err, &bad) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: bad.Error()})
		return
	}
	h.respondError(c, err)
}
