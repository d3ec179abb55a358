package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtroom/apperrors"
	"courtroom/controllers"
	"courtroom/db"
	"courtroom/models"
	"courtroom/routes"
	"courtroom/services"
)

type fakeGenerator struct {
	response string
	err      error
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f.response, f.err
}

type fakeSearcher struct{ err error }

func (f fakeSearcher) Search(ctx context.Context, query string) ([]string, error) {
	return nil, f.err
}

type fakeExtractor struct{}

func (fakeExtractor) Extract(ctx context.Context, pageURL string) (string, error) {
	return "", errors.New("unused")
}

type fakeStore struct {
	result *db.LoginResult
	err    error
}

func (f fakeStore) Login(ctx context.Context, username, difficulty string, avatar *int) (*db.LoginResult, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", apperrors.ErrValidation)
	}
	return f.result, f.err
}

type fakeSynth struct {
	audio []byte
	err   error
}

func (f fakeSynth) Synthesize(ctx context.Context, text string, avatar int, modelVer string) ([]byte, error) {
	return f.audio, f.err
}

func newTestRouter(t *testing.T, gen services.TextGenerator, store controllers.ProfileLogins, synth services.SpeechSynthesizer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	topicsPath := filepath.Join(t.TempDir(), "topics.txt")
	require.NoError(t, os.WriteFile(topicsPath, []byte("only topic\n"), 0o644))

	debate := &controllers.DebateController{
		Topics:   services.NewTopicService(topicsPath),
		Hints:    services.NewHintService(fakeSearcher{err: errors.New("down")}, fakeExtractor{}),
		Opponent: services.NewOpponentService(gen, filepath.Join(t.TempDir(), "missing.json")),
		Judge:    services.NewJudgeService(gen),
	}

	router := gin.New()
	routes.Setup(router, debate, &controllers.ProfileController{Store: store}, &controllers.TTSController{Synthesizer: synth})
	return router
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetTopic(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{}, fakeStore{}, fakeSynth{})

	w := doJSON(router, http.MethodGet, "/get-topic", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "only topic", resp["topic"])
}

func TestGetHintsNeverFails(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{}, fakeStore{}, fakeSynth{})

	w := doJSON(router, http.MethodGet, "/get-hints/pineapple%20pizza", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["hints"], "pineapple pizza")
}

func TestGetCounterargumentDegrades(t *testing.T) {
	// Missing blueprint forces the canned path even with a working generator.
	router := newTestRouter(t, &fakeGenerator{response: "unused"}, fakeStore{}, fakeSynth{})

	w := doJSON(router, http.MethodPost, "/get-counterargument", gin.H{
		"topic":      "zoos do more harm than good",
		"difficulty": "hard",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["argument"], "zoos do more harm than good")
}

func TestGetWinner(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     float64
	}{
		{name: "user wins", response: "argument", want: 0},
		{name: "opponent wins", response: "counterargument", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, &fakeGenerator{response: tt.response}, fakeStore{}, fakeSynth{})

			w := doJSON(router, http.MethodPost, "/get-winner", gin.H{
				"argument":        "a",
				"counterargument": "b",
				"topic":           "t",
			})
			require.Equal(t, http.StatusOK, w.Code)

			var resp map[string]float64
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp["winner"])
		})
	}
}

func TestGetWinnerSurfacesErrors(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{err: errors.New("model down")}, fakeStore{}, fakeSynth{})

	w := doJSON(router, http.MethodPost, "/get-winner", gin.H{
		"argument":        "a",
		"counterargument": "b",
		"topic":           "t",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "model down")
}

func TestGetFeedback(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{response: "- one\n- two"}, fakeStore{}, fakeSynth{})

	w := doJSON(router, http.MethodPost, "/get-feedback", gin.H{"argument": "a", "topic": "t"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "- one\n- two", resp["feedback"])
}

func TestLogin(t *testing.T) {
	store := fakeStore{result: &db.LoginResult{
		Message: "Welcome, alice.",
		User:    models.UserProfile{Username: "alice", Difficulty: "hard", Avatar: "2", Level: 0},
	}}
	router := newTestRouter(t, &fakeGenerator{}, store, fakeSynth{})

	w := doJSON(router, http.MethodPost, "/login", gin.H{"username": "alice", "difficulty": "hard", "avatar": 2})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string             `json:"message"`
		User    models.UserProfile `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Welcome, alice.", resp.Message)
	assert.Equal(t, "hard", resp.User.Difficulty)
	assert.Equal(t, "2", resp.User.Avatar)
	assert.Equal(t, 0, resp.User.Level)
}

func TestLoginEmptyUsernameIsNotAnHTTPError(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{}, fakeStore{}, fakeSynth{})

	w := doJSON(router, http.MethodPost, "/login", gin.H{"username": ""})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "username is required")
}

func TestLoginConflict(t *testing.T) {
	store := fakeStore{err: fmt.Errorf("username %q: %w", "alice", apperrors.ErrConflict)}
	router := newTestRouter(t, &fakeGenerator{}, store, fakeSynth{})

	w := doJSON(router, http.MethodPost, "/login", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTextToSpeech(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{}, fakeStore{}, fakeSynth{audio: []byte("mp3-bytes")})

	w := doJSON(router, http.MethodPost, "/text-to-speech", gin.H{"text": "hello", "avatar": 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=speech.mp3", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "mp3-bytes", w.Body.String())
}

func TestTextToSpeechConfigError(t *testing.T) {
	synth := fakeSynth{err: fmt.Errorf("elevenlabs API key: %w", apperrors.ErrConfigMissing)}
	router := newTestRouter(t, &fakeGenerator{}, fakeStore{}, synth)

	w := doJSON(router, http.MethodPost, "/text-to-speech", gin.H{"text": "hello", "avatar": 1})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}
