package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"codedoc/internal/domain"
	"codedoc/internal/handler"
	"codedoc/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGenerateHandler() (*handler.GenerateHandler, *mocks.MockDocumentationService) {
	mockSvc := new(mocks.MockDocumentationService)
	h := handler.NewGenerateHandler(mockSvc)
	return h, mockSvc
}

func performGenerate(h *handler.GenerateHandler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Generate(c)
	return w
}

func TestGenerateHandler_Success(t *testing.T) {
	h, mockSvc := newGenerateHandler()

	mockSvc.On("Generate", mock.Anything, "def f(): pass").
		Return(&domain.DocumentationResponse{Technical: "Final T", Professional: "Final P"}, nil)

	w := performGenerate(h, `{"code":"def f(): pass"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{"technical": "Final T", "professional": "Final P"}, resp)
	mockSvc.AssertExpectations(t)
}

func TestGenerateHandler_EmptyFieldsStillPresent(t *testing.T) {
	h, mockSvc := newGenerateHandler()

	mockSvc.On("Generate", mock.Anything, "x").Return(&domain.DocumentationResponse{}, nil)

	w := performGenerate(h, `{"code":"x"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"technical":"","professional":""}`, w.Body.String())
}

func TestGenerateHandler_EmptyCode(t *testing.T) {
	h, mockSvc := newGenerateHandler()

	w := performGenerate(h, `{"code":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"No code provided"}`, w.Body.String())
	mockSvc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerateHandler_MissingCode(t *testing.T) {
	h, mockSvc := newGenerateHandler()

	w := performGenerate(h, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"No code provided"}`, w.Body.String())
	mockSvc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerateHandler_MalformedBody(t *testing.T) {
	h, mockSvc := newGenerateHandler()

	w := performGenerate(h, `{"code":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerateHandler_UpstreamFailure(t *testing.T) {
	h, mockSvc := newGenerateHandler()

	mockSvc.On("Generate", mock.Anything, "x = 1").
		Return(nil, errors.New("plain explanation: 401 Unauthorized"))

	w := performGenerate(h, `{"code":"x = 1"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"plain explanation: 401 Unauthorized"}`, w.Body.String())
}

func TestMapDomainError(t *testing.T) {
	status, msg := handler.MapDomainError(domain.ErrNoCodeProvided)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No code provided", msg)

	status, msg = handler.MapDomainError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "boom", msg)
}
