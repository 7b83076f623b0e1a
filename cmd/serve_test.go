package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jsphweid/twelvetet/model"
	"github.com/stretchr/testify/assert"
)

func post(t *testing.T, path string, body any) *http.Response {
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w.Result()
}

func decodeValidate(t *testing.T, resp *http.Response) model.ValidateResult {
	var res model.ValidateResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	return res
}

func TestValidateLegalChord(t *testing.T) {
	resp := post(t, "/validate", model.Voicing{Root: "C", Soprano: "G4", Alto: "E4", Tenor: "C4", Bass: "C3"})

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(model.ValidateResult{
		Legal:   true,
		Root:    "C",
		Shape:   "root position",
		Classes: []uint8{0, 4, 7},
	}, decodeValidate(t, resp))
}

func TestValidateInfersRoot(t *testing.T) {
	resp := post(t, "/validate", model.Voicing{Soprano: "C5", Alto: "C4", Tenor: "G3", Bass: "E3"})

	res := decodeValidate(t, resp)
	assert := assert.New(t)
	assert.True(res.Legal)
	assert.Equal("C", res.Root)
	assert.Equal("first inversion", res.Shape)
}

func TestValidateIllegalChord(t *testing.T) {
	resp := post(t, "/validate", model.Voicing{Root: "C", Soprano: "G4", Alto: "G4", Tenor: "E4", Bass: "C3"})

	res := decodeValidate(t, resp)
	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.False(res.Legal)
	assert.Contains(res.Reason, "invalid doubling")
	assert.Empty(res.Shape)
}

func TestValidateBadNote(t *testing.T) {
	resp := post(t, "/validate", model.Voicing{Root: "C", Soprano: "H4", Alto: "E4", Tenor: "C4", Bass: "C3"})

	var res model.ErrorResponse
	assert := assert.New(t)
	assert.Equal(http.StatusBadRequest, resp.StatusCode)
	assert.NoError(json.NewDecoder(resp.Body).Decode(&res))
	assert.Contains(res.Error, "soprano")
}

func TestRenderReturnsWav(t *testing.T) {
	t.Setenv("SAMPLE_RATE", "800")
	resp := post(t, "/render", model.RenderRequestBody{
		Voicing:  model.Voicing{Root: "C", Soprano: "G4", Alto: "E4", Tenor: "C4", Bass: "C3"},
		Duration: 2,
	})

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("audio/wav", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	assert.NoError(err)
	d := wav.NewDecoder(bytes.NewReader(body))
	buf, err := d.FullPCMBuffer()
	assert.NoError(err)
	assert.Len(buf.Data, 1600)
	assert.Equal(uint32(800), d.SampleRate)
}

func TestRenderRejectsIllegalUnlessUnchecked(t *testing.T) {
	t.Setenv("SAMPLE_RATE", "100")
	v := model.Voicing{Root: "C", Soprano: "G4", Alto: "G4", Tenor: "E4", Bass: "C3"}

	assert := assert.New(t)
	resp := post(t, "/render", model.RenderRequestBody{Voicing: v, Duration: 1})
	assert.Equal(http.StatusUnprocessableEntity, resp.StatusCode)

	resp = post(t, "/render", model.RenderRequestBody{Voicing: v, Duration: 1, Unchecked: true})
	assert.Equal(http.StatusOK, resp.StatusCode)
}

func TestRenderLimitsDuration(t *testing.T) {
	resp := post(t, "/render", model.RenderRequestBody{
		Voicing:  model.Voicing{Root: "C", Soprano: "G4", Alto: "E4", Tenor: "C4", Bass: "C3"},
		Duration: maxRenderSeconds + 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
