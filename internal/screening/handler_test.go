package screening

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/extract"
)

const sampleResume = `Jane Doe
jane.doe@example.com
555-123-4567

5 years of experience building React and Docker deployments.

Education
BS Computer Science, State University`

func newTestRouter(t *testing.T, extractFn ExtractFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := &Handler{
		Engine:      NewEngine(ModeKeyword, nil, rand.New(rand.NewSource(1))),
		ExtractText: extractFn,
	}
	r := gin.New()
	handler.RegisterRoutes(r.Group("/api"))
	return r
}

func multipartResume(t *testing.T, fileName, contentType, jobDescription string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if withFile {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="resume"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)
		part, err := w.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write([]byte("%binary resume bytes%")); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if jobDescription != "" {
		if err := w.WriteField("jobDescription", jobDescription); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func stubExtract(text string, err error) ExtractFunc {
	return func(ctx context.Context, data []byte, mimeType string) (string, error) {
		return text, err
	}
}

func TestScoreHandlerHappyPath(t *testing.T) {
	r := newTestRouter(t, stubExtract(sampleResume, nil))

	body, contentType := multipartResume(t, "resume.pdf", "application/pdf",
		"React, AWS, and Docker experience required", true)
	req := httptest.NewRequest(http.MethodPost, "/api/screening/score", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp scoreResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Candidate.Name != "Jane Doe" {
		t.Fatalf("candidate name = %q", resp.Candidate.Name)
	}
	if resp.Candidate.Email != "jane.doe@example.com" {
		t.Fatalf("candidate email = %q", resp.Candidate.Email)
	}
	if resp.Candidate.ID == "" {
		t.Fatal("expected candidate id")
	}
	if len(resp.Candidate.Skills.Matched) != len(resp.Result.MatchedSkills) {
		t.Fatalf("matched partition mismatch: %+v vs %+v", resp.Candidate.Skills, resp.Result)
	}
	if resp.Result.Score < 0 || resp.Result.Score > 100 {
		t.Fatalf("score out of range: %d", resp.Result.Score)
	}
	if resp.Result.Category == "" || resp.Result.Summary == "" {
		t.Fatalf("incomplete result: %+v", resp.Result)
	}
}

func TestScoreHandlerMissingJobDescription(t *testing.T) {
	r := newTestRouter(t, stubExtract(sampleResume, nil))

	body, contentType := multipartResume(t, "resume.pdf", "application/pdf", "", true)
	req := httptest.NewRequest(http.MethodPost, "/api/screening/score", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestScoreHandlerMissingFile(t *testing.T) {
	r := newTestRouter(t, stubExtract(sampleResume, nil))

	body, contentType := multipartResume(t, "", "", "some jd", false)
	req := httptest.NewRequest(http.MethodPost, "/api/screening/score", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestScoreHandlerUnsupportedType(t *testing.T) {
	r := newTestRouter(t, stubExtract(sampleResume, nil))

	body, contentType := multipartResume(t, "resume.txt", "text/plain", "some jd", true)
	req := httptest.NewRequest(http.MethodPost, "/api/screening/score", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415", rec.Code)
	}
}

func TestScoreHandlerParseFailure(t *testing.T) {
	parseErr := &extract.ParseError{MimeType: "application/pdf", Err: errors.New("encrypted document")}
	r := newTestRouter(t, stubExtract("", parseErr))

	body, contentType := multipartResume(t, "resume.pdf", "application/pdf", "some jd", true)
	req := httptest.NewRequest(http.MethodPost, "/api/screening/score", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestParseHandlerReturnsProfile(t *testing.T) {
	r := newTestRouter(t, stubExtract(sampleResume, nil))

	body, contentType := multipartResume(t, "resume.pdf", "application/pdf", "", true)
	req := httptest.NewRequest(http.MethodPost, "/api/screening/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Candidate candidatePayload `json:"candidate"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Candidate.Name != "Jane Doe" || resp.Candidate.Phone != "555-123-4567" {
		t.Fatalf("unexpected candidate: %+v", resp.Candidate)
	}
	if len(resp.Candidate.Skills.All) == 0 {
		t.Fatal("expected extracted skills")
	}
	if resp.Candidate.Skills.Matched == nil || resp.Candidate.Skills.Missing == nil {
		t.Fatal("expected empty, non-null matched/missing lists")
	}
}
