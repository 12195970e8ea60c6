package screening

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"screening-backend/internal/extract"
	"screening-backend/internal/shared/metrics"
	"screening-backend/internal/shared/server/middleware"
	"screening-backend/internal/shared/server/respond"
	"screening-backend/internal/shared/telemetry"
	"screening-backend/internal/shared/util"
)

// Upload size cap, enforced again here even though the boundary layer caps it
// upstream.
const maxResumeBytes = 5 << 20

var allowedResumeTypes = map[string]struct{}{
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// ExtractFunc converts a raw document and its declared media type into plain
// text. Injected so handler tests can bypass real document decoding.
type ExtractFunc func(ctx context.Context, data []byte, mimeType string) (string, error)

// Handler exposes the screening pipeline over HTTP.
type Handler struct {
	Engine      *Engine
	ExtractText ExtractFunc
}

// NewHandler builds a handler backed by the real text extractor.
func NewHandler(engine *Engine) *Handler {
	return &Handler{
		Engine:      engine,
		ExtractText: extract.ExtractText,
	}
}

// RegisterRoutes mounts the screening endpoints on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/screening/score", h.score)
	rg.POST("/screening/parse", h.parse)
}

type skillsPayload struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	All     []string `json:"all"`
}

type candidatePayload struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	Education  string        `json:"education"`
	Experience string        `json:"experience"`
	Skills     skillsPayload `json:"skills"`
}

type scoreResponse struct {
	Candidate candidatePayload `json:"candidate"`
	Result    Result           `json:"result"`
}

func (h *Handler) score(c *gin.Context) {
	start := time.Now()

	jobDescription := strings.TrimSpace(c.PostForm("jobDescription"))
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required", nil)
		return
	}

	profile, ok := h.extractProfileFromRequest(c)
	if !ok {
		return
	}

	result := h.Engine.Score(c.Request.Context(), profile, jobDescription)

	metrics.IncScreeningScored()
	metrics.ObserveScreeningDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	respond.OK(c, scoreResponse{
		Candidate: candidateFromProfile(profile, result.MatchedSkills, result.MissingSkills),
		Result:    result,
	})
}

func (h *Handler) parse(c *gin.Context) {
	profile, ok := h.extractProfileFromRequest(c)
	if !ok {
		return
	}

	respond.OK(c, gin.H{
		"candidate": candidateFromProfile(profile, nil, nil),
	})
}

func (h *Handler) extractProfileFromRequest(c *gin.Context) (Profile, bool) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return Profile{}, false
	}
	if fileHeader.Size > maxResumeBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file exceeds 5MB limit", nil)
		return Profile{}, false
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume file name", nil)
		return Profile{}, false
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if _, ok := allowedResumeTypes[strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))]; !ok {
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_format", "resume must be a PDF or DOCX document", nil)
		return Profile{}, false
	}

	telemetry.Info("screening.resume.received", map[string]any{
		"file_name":  fileName,
		"mime_type":  mimeType,
		"size_bytes": fileHeader.Size,
		"request_id": c.GetString("requestId"),
		"user_id":    middleware.UserIDFromContext(c.Request.Context()),
	})

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file could not be read", nil)
		return Profile{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file could not be read", nil)
		return Profile{}, false
	}
	if len(data) > maxResumeBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file exceeds 5MB limit", nil)
		return Profile{}, false
	}

	text, err := h.ExtractText(c.Request.Context(), data, mimeType)
	if err != nil {
		metrics.IncScreeningFailed()
		switch {
		case errors.Is(err, extract.ErrUnsupportedFormat):
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_format", "resume must be a PDF or DOCX document", nil)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "request_canceled", "request canceled before extraction finished", nil)
		default:
			var parseErr *extract.ParseError
			if errors.As(err, &parseErr) {
				respond.Error(c, http.StatusUnprocessableEntity, "parse_failure", "resume document could not be parsed", parseErr.Error())
				return Profile{}, false
			}
			respond.Error(c, http.StatusInternalServerError, "internal_error", "text extraction failed", nil)
		}
		return Profile{}, false
	}

	return ExtractProfile(text), true
}

func candidateFromProfile(profile Profile, matched, missing []string) candidatePayload {
	if matched == nil {
		matched = []string{}
	}
	if missing == nil {
		missing = []string{}
	}
	return candidatePayload{
		ID:         uuid.NewString(),
		Name:       profile.Name,
		Email:      profile.Email,
		Phone:      profile.Phone,
		Education:  profile.Education,
		Experience: profile.Experience,
		Skills: skillsPayload{
			Matched: matched,
			Missing: missing,
			All:     profile.Skills,
		},
	}
}
