package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/twelvetet/constants"
	"github.com/jsphweid/twelvetet/db"
	"github.com/jsphweid/twelvetet/model"
	"github.com/jsphweid/twelvetet/sample"
	"github.com/jsphweid/twelvetet/synth"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// keeps a single request from asking for unbounded synthesis work
const maxRenderSeconds = 30

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the HTTP API",
	Long:  `Serves POST /validate and POST /render on $PORT.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		LoadServeDeps()
		return serve(constants.GetPort())
	},
}

// LoadServeDeps connects the chord label store when one is configured.
func LoadServeDeps() {
	endpoint := constants.GetDynamoEndpoint()
	if endpoint == "" {
		logger.Info("chord labels disabled, DYNAMO_ENDPOINT not set")
		return
	}
	client, err := db.New(endpoint, constants.GetDynamoRegion(), constants.GetDynamoTable())
	if err != nil {
		logger.Warn("chord labels disabled", "err", err)
		return
	}
	labels = client
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/validate", HandleValidate).Methods("POST")
	router.HandleFunc("/render", HandleRender).Methods("POST")
	return cors.Default().Handler(router)
}

func serve(port string) error {
	logger.Info("serving", "port", port)
	return http.ListenAndServe(":"+port, NewRouter())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("could not encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func HandleValidate(w http.ResponseWriter, r *http.Request) {
	var input model.Voicing
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return
	}

	pv, err := parseVoicing(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	_, res := pv.validate()
	logger.Debug("validated", "root", res.Root, "legal", res.Legal, "reason", res.Reason)
	writeJSON(w, http.StatusOK, res)
}

func HandleRender(w http.ResponseWriter, r *http.Request) {
	var input model.RenderRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return
	}
	if input.Duration == 0 {
		input.Duration = constants.DefaultDuration
	}
	if input.Duration > maxRenderSeconds {
		writeError(w, http.StatusBadRequest, fmt.Errorf("duration is limited to %v seconds", maxRenderSeconds))
		return
	}

	pv, err := parseVoicing(input.Voicing)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	h, err := buildHarmony(pv, input.Unchecked)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	f, err := os.CreateTemp("", "twelvetet-*.wav")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer os.Remove(f.Name())
	defer f.Close()

	rate := constants.GetSampleRate()
	if err := sample.WriteWavStream(f, synth.NewGenerator(h, input.Duration, rate, int(rate)), rate); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "audio/wav")
	http.ServeContent(w, r, "chord.wav", time.Time{}, f)
}
