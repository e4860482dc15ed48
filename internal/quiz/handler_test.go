package quiz

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prakruti/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupQuizTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products, err := catalog.Default()
	require.NoError(t, err)

	h := NewHandler(NewService(NewSessionStore(time.Hour), products, nil))

	r := gin.New()
	r.GET("/quiz/questions", h.Questions)
	r.POST("/quiz/sessions", h.Start)
	r.GET("/quiz/sessions/:id", h.Get)
	r.POST("/quiz/sessions/:id/answers", h.Answer)
	r.POST("/quiz/sessions/:id/reset", h.Reset)
	r.POST("/quiz/submit", h.Submit)
	return r
}

func post(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) View {
	t.Helper()
	var v View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHandler_SessionFlow(t *testing.T) {
	r := setupQuizTestRouter(t)

	w := post(r, "/quiz/sessions", map[string]string{"variant": "short"})
	require.Equal(t, http.StatusCreated, w.Code)
	v := decodeView(t, w)
	require.Equal(t, 3, v.Total)
	require.Equal(t, "body", v.Question.ID)

	for _, d := range []string{"kapha", "pitta", "kapha"} {
		w = post(r, "/quiz/sessions/"+v.ID+"/answers", map[string]string{"dosha": d})
		require.Equal(t, http.StatusOK, w.Code)
	}
	v = decodeView(t, w)
	require.NotNil(t, v.Result)
	assert.Equal(t, Kapha, v.Result.Dosha)
	assert.Equal(t, "Kapha", v.Result.Title)
	assert.NotEmpty(t, v.Result.Products)
	assert.Nil(t, v.Question)

	w = post(r, "/quiz/sessions/"+v.ID+"/answers", map[string]string{"dosha": "vata"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = post(r, "/quiz/sessions/"+v.ID+"/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	v = decodeView(t, w)
	assert.Equal(t, 0, v.Step)
	assert.Empty(t, v.Answers)
	assert.Nil(t, v.Result)
}

func TestHandler_AnswerValidation(t *testing.T) {
	r := setupQuizTestRouter(t)

	w := post(r, "/quiz/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	v := decodeView(t, w)
	assert.Equal(t, VariantFull, v.Variant)

	w = post(r, "/quiz/sessions/"+v.ID+"/answers", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, "/quiz/sessions/"+v.ID+"/answers", map[string]string{"dosha": "agni"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, "/quiz/sessions/nope/answers", map[string]string{"dosha": "vata"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Submit(t *testing.T) {
	r := setupQuizTestRouter(t)

	w := post(r, "/quiz/submit", map[string]any{
		"variant": "full",
		"answers": map[string]string{
			"body": "vata", "skin": "pitta", "appetite": "pitta", "sleep": "kapha", "mind": "kapha",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var out Outcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, Pitta, out.Dosha)

	w = post(r, "/quiz/submit", map[string]any{
		"variant": "short",
		"answers": map[string]string{"body": "vata"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Missing []string `json:"missing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"skin", "appetite"}, body.Missing)
}

func TestHandler_Questions(t *testing.T) {
	r := setupQuizTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quiz/questions?variant=short", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Questions []Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Questions, 3)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quiz/questions?variant=huge", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
