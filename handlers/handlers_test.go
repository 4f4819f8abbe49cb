package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhunter/backend/agent"
	"github.com/jobhunter/backend/llm"
	"github.com/jobhunter/backend/models"
	"github.com/jobhunter/backend/storage"
	"github.com/jobhunter/backend/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeParser struct {
	profile models.ResumeProfile
	err     error
	text    string
}

func (f *fakeParser) ParseResume(_ context.Context, text string) (models.ResumeProfile, error) {
	f.text = text
	return f.profile, f.err
}

type fakeFiles struct {
	err     error
	uploads []string
	deleted []string
}

func (f *fakeFiles) UploadResume(_ context.Context, resumeID string, _ []byte, filename, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, filename)
	return "https://storage.googleapis.com/bucket/resumes/" + resumeID + "/" + filename, nil
}

func (f *fakeFiles) DeleteResume(_ context.Context, fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}

type fakeRecords struct {
	mu      sync.Mutex
	records map[string]models.ResumeRecord
	order   []string
	saveErr error
	listErr error
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{records: map[string]models.ResumeRecord{}}
}

func (f *fakeRecords) SaveResume(_ context.Context, record *models.ResumeRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records[record.ID] = *record
	f.order = append(f.order, record.ID)
	return nil
}

func (f *fakeRecords) GetResume(_ context.Context, id string) (*models.ResumeRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrResumeNotFound, id)
	}
	return &record, nil
}

func (f *fakeRecords) DeleteResume(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeRecords) ListResumes(_ context.Context, limit int) ([]models.ResumeRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.ResumeRecord{}
	for i := len(f.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.records[f.order[i]])
	}
	return out, nil
}

func testProfile() models.ResumeProfile {
	return models.ResumeProfile{
		Name:   "Ada Lovelace",
		Skills: []string{"Go", "Python", "SQL"},
	}
}

type testServer struct {
	router  *gin.Engine
	agent   *agent.ChatAgent
	parser  *fakeParser
	files   *fakeFiles
	records *fakeRecords
}

func newTestServer(parser ResumeParser) *testServer {
	ts := &testServer{
		files:   &fakeFiles{},
		records: newFakeRecords(),
	}
	if p, ok := parser.(*fakeParser); ok {
		ts.parser = p
	}

	ts.agent = agent.NewChatAgent(agent.NewSessionStore(), nil, nil, nil,
		agent.WithRandom(func() float64 { return 0.5 }))

	resumes := NewResumeHandler(utils.NewDocumentExtractor(), parser, ts.files, ts.records, 1024, nil)
	chat := NewChatHandler(ts.agent, ts.records, nil)
	health := NewHealthHandler(ts.agent, map[string]string{"llm": "fake", "search": "sample data"})

	r := gin.New()
	r.Use(Recovery(nil))
	r.GET("/", health.Index)
	r.GET("/health", health.Health)
	r.POST("/parse-resume", resumes.ParseResume)
	r.GET("/resumes", resumes.ListResumes)
	r.GET("/resumes/:resume_id", resumes.GetResume)
	r.DELETE("/resumes/:resume_id", resumes.DeleteResume)
	r.POST("/create-agent/:session_id", chat.CreateAgent)
	r.POST("/sessions", chat.CreateSession)
	r.POST("/chat/:session_id", chat.Chat)
	r.GET("/session/:session_id/history", chat.History)
	r.DELETE("/session/:session_id", chat.DeleteSession)
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	ts.router = r
	return ts
}

func (ts *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/parse-resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(&fakeParser{})
	ts.agent.CreateSession("s1", testProfile())

	w := ts.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.HealthResponse](t, w)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, Version, resp.Version)
	assert.Equal(t, 1, resp.Sessions)
	assert.Equal(t, "sample data", resp.Services["search"])
}

func TestIndex(t *testing.T) {
	ts := newTestServer(&fakeParser{})
	w := ts.do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/parse-resume")
}

func TestParseResumeArchivesResult(t *testing.T) {
	parser := &fakeParser{profile: testProfile()}
	ts := newTestServer(parser)

	w := ts.do(t, uploadRequest(t, "cv.txt", []byte("Ada Lovelace\nGo developer")))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[models.ResumeParseResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Ada Lovelace", resp.Data.Name)
	require.NotEmpty(t, resp.ResumeID)
	assert.Contains(t, parser.text, "Go developer")

	record, err := ts.records.GetResume(context.Background(), resp.ResumeID)
	require.NoError(t, err)
	assert.Equal(t, "cv.txt", record.FileName)
	assert.Contains(t, record.FileURL, resp.ResumeID)
	assert.Equal(t, []string{"cv.txt"}, ts.files.uploads)
}

func TestParseResumeUploadFailureStillSucceeds(t *testing.T) {
	ts := newTestServer(&fakeParser{profile: testProfile()})
	ts.files.err = errors.New("bucket unavailable")

	w := ts.do(t, uploadRequest(t, "cv.txt", []byte("Ada Lovelace")))
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.ResumeParseResponse](t, w)
	record, err := ts.records.GetResume(context.Background(), resp.ResumeID)
	require.NoError(t, err)
	assert.Empty(t, record.FileURL)
}

func TestParseResumeSaveFailureOmitsID(t *testing.T) {
	ts := newTestServer(&fakeParser{profile: testProfile()})
	ts.records.saveErr = errors.New("firestore unavailable")

	w := ts.do(t, uploadRequest(t, "cv.txt", []byte("Ada Lovelace")))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[models.ResumeParseResponse](t, w).ResumeID)
}

func TestParseResumeErrors(t *testing.T) {
	tests := []struct {
		name   string
		parser ResumeParser
		req    func(t *testing.T) *http.Request
		status int
	}{
		{
			name:   "missing file",
			parser: &fakeParser{},
			req: func(t *testing.T) *http.Request {
				return jsonRequest(t, http.MethodPost, "/parse-resume", nil)
			},
			status: http.StatusBadRequest,
		},
		{
			name:   "too large",
			parser: &fakeParser{},
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "cv.txt", bytes.Repeat([]byte("a"), 2048))
			},
			status: http.StatusRequestEntityTooLarge,
		},
		{
			name:   "unsupported format",
			parser: &fakeParser{},
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "cv.png", []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0})
			},
			status: http.StatusBadRequest,
		},
		{
			name:   "empty text",
			parser: &fakeParser{},
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "cv.txt", []byte("   \n  "))
			},
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "model unavailable",
			parser: nil,
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "cv.txt", []byte("Ada"))
			},
			status: http.StatusServiceUnavailable,
		},
		{
			name:   "unparseable model output",
			parser: &fakeParser{err: fmt.Errorf("%w: no JSON object", llm.ErrParseFailure)},
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "cv.txt", []byte("Ada"))
			},
			status: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(tt.parser)
			w := ts.do(t, tt.req(t))
			assert.Equal(t, tt.status, w.Code, w.Body.String())

			resp := decode[models.ErrorResponse](t, w)
			assert.Equal(t, tt.status, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestListAndGetResumes(t *testing.T) {
	ts := newTestServer(&fakeParser{profile: testProfile()})
	for i := 0; i < 3; i++ {
		w := ts.do(t, uploadRequest(t, fmt.Sprintf("cv%d.txt", i), []byte("Ada")))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := ts.do(t, httptest.NewRequest(http.MethodGet, "/resumes?limit=2", nil))
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.ResumeListResponse](t, w)
	require.Len(t, list.Resumes, 2)
	assert.Equal(t, "cv2.txt", list.Resumes[0].FileName)

	w = ts.do(t, httptest.NewRequest(http.MethodGet, "/resumes/"+list.Resumes[1].ID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cv1.txt", decode[models.ResumeRecord](t, w).FileName)

	w = ts.do(t, httptest.NewRequest(http.MethodGet, "/resumes/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, httptest.NewRequest(http.MethodGet, "/resumes?limit=zero", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteResume(t *testing.T) {
	ts := newTestServer(&fakeParser{profile: testProfile()})

	w := ts.do(t, uploadRequest(t, "cv.txt", []byte("Ada")))
	require.Equal(t, http.StatusOK, w.Code)
	id := decode[models.ResumeParseResponse](t, w).ResumeID

	w = ts.do(t, httptest.NewRequest(http.MethodDelete, "/resumes/"+id, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, ts.files.deleted, 1)
	assert.Contains(t, ts.files.deleted[0], id)

	w = ts.do(t, httptest.NewRequest(http.MethodGet, "/resumes/"+id, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, httptest.NewRequest(http.MethodDelete, "/resumes/"+id, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListResumesFailure(t *testing.T) {
	ts := newTestServer(&fakeParser{})
	ts.records.listErr = errors.New("deadline exceeded")

	w := ts.do(t, httptest.NewRequest(http.MethodGet, "/resumes", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decode[models.ErrorResponse](t, w).Details, "deadline exceeded")
}

func TestListResumesWithoutArchive(t *testing.T) {
	h := NewResumeHandler(utils.NewDocumentExtractor(), nil, nil, nil, 0, nil)
	r := gin.New()
	r.GET("/resumes", h.ListResumes)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resumes", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestChatFlow(t *testing.T) {
	ts := newTestServer(&fakeParser{})

	w := ts.do(t, jsonRequest(t, http.MethodPost, "/create-agent/s1", testProfile()))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "s1", decode[models.SessionResponse](t, w).SessionID)

	w = ts.do(t, jsonRequest(t, http.MethodPost, "/chat/s1", models.ChatMessage{Content: "hello"}))
	require.Equal(t, http.StatusOK, w.Code)
	reply := decode[models.ChatReply](t, w)
	assert.True(t, reply.RequiresInput)
	assert.Contains(t, reply.Message, "Ada")
	assert.NotNil(t, reply.JobSuggestions)

	w = ts.do(t, jsonRequest(t, http.MethodPost, "/chat/s1", models.ChatMessage{Content: "find me jobs in Berlin"}))
	require.Equal(t, http.StatusOK, w.Code)
	reply = decode[models.ChatReply](t, w)
	assert.NotEmpty(t, reply.JobSuggestions)

	w = ts.do(t, httptest.NewRequest(http.MethodGet, "/session/s1/history", nil))
	require.Equal(t, http.StatusOK, w.Code)
	history := decode[models.HistoryResponse](t, w)
	require.Len(t, history.Messages, 4)
	assert.Equal(t, models.RoleUser, history.Messages[0].Role)
	assert.Equal(t, "hello", history.Messages[0].Content)
	assert.Equal(t, models.RoleAssistant, history.Messages[1].Role)

	w = ts.do(t, httptest.NewRequest(http.MethodDelete, "/session/s1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, httptest.NewRequest(http.MethodGet, "/session/s1/history", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// deleting again still succeeds
	w = ts.do(t, httptest.NewRequest(http.MethodDelete, "/session/s1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChatErrors(t *testing.T) {
	ts := newTestServer(&fakeParser{})

	w := ts.do(t, jsonRequest(t, http.MethodPost, "/chat/unknown", models.ChatMessage{Content: "hello"}))
	assert.Equal(t, http.StatusNotFound, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/chat/unknown", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w = ts.do(t, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, jsonRequest(t, http.MethodPost, "/create-agent/s1", map[string]any{"skills": []string{"Go"}}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatEmptyMessageAsksForClarification(t *testing.T) {
	ts := newTestServer(&fakeParser{})

	w := ts.do(t, jsonRequest(t, http.MethodPost, "/create-agent/s1", testProfile()))
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, jsonRequest(t, http.MethodPost, "/chat/s1", map[string]string{"content": ""}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	reply := decode[models.ChatReply](t, w)
	assert.True(t, reply.RequiresInput)
	assert.Contains(t, reply.Message, "What would you like to do?")
	assert.Empty(t, reply.JobSuggestions)
}

func TestCreateSession(t *testing.T) {
	ts := newTestServer(&fakeParser{})
	profile := testProfile()

	w := ts.do(t, jsonRequest(t, http.MethodPost, "/sessions", models.CreateSessionRequest{Profile: &profile}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[models.SessionResponse](t, w).SessionID
	require.NotEmpty(t, id)
	assert.Equal(t, 1, ts.agent.SessionCount())

	require.NoError(t, ts.records.SaveResume(context.Background(), &models.ResumeRecord{ID: "r1", Profile: profile}))
	w = ts.do(t, jsonRequest(t, http.MethodPost, "/sessions", models.CreateSessionRequest{ResumeID: "r1"}))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEqual(t, id, decode[models.SessionResponse](t, w).SessionID)

	w = ts.do(t, jsonRequest(t, http.MethodPost, "/sessions", models.CreateSessionRequest{ResumeID: "missing"}))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, jsonRequest(t, http.MethodPost, "/sessions", models.CreateSessionRequest{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecovery(t *testing.T) {
	ts := newTestServer(&fakeParser{})
	w := ts.do(t, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "Internal server error"))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(fmt.Errorf("wrap: %w", agent.ErrSessionNotFound)))
	assert.Equal(t, http.StatusBadRequest, statusFor(utils.ErrUnsupportedFormat))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(utils.ErrExtractionFailure))
	assert.Equal(t, http.StatusBadGateway, statusFor(llm.ErrGenerationFailure))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("other")))
}
