package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/sssrecon/record"
	"go.dedis.ch/sssrecon/runner"
	"go.dedis.ch/sssrecon/types"
)

// MaxRecordSize bounds the size of a posted record.
const MaxRecordSize = 1 << 20

// NewHandler serves:
//
//	POST /reconstruct  body: a JSON record, reply: a ResponseView
//	GET  /health
func NewHandler(r *runner.Runner) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/reconstruct", reconstructHandler(r))
	mux.HandleFunc("/health", healthHandler)
	return mux
}

// NewServer creates an http server listening on addr.
func NewServer(addr string, r *runner.Runner) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewHandler(r),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func reconstructHandler(r *runner.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		data, err := io.ReadAll(io.LimitReader(req.Body, MaxRecordSize+1))
		if err != nil {
			http.Error(w, "failed to read body", http.StatusBadRequest)
			return
		}
		if len(data) > MaxRecordSize {
			http.Error(w, "record too large", http.StatusRequestEntityTooLarge)
			return
		}

		set, err := record.Parse(data)
		request := runner.NewRequest(req.RemoteAddr, set)
		request.Err = err

		resp := r.Run([]types.Request{request})[0]
		log.Debug().Str("id", resp.ID).Msgf("served %s", resp)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusOf(resp.Err))
		json.NewEncoder(w).Encode(resp.View())
	}
}

// statusOf maps a reconstruction outcome to an HTTP status.
func statusOf(err error) int {
	switch types.KindOf(err) {
	case "":
		if err != nil {
			return http.StatusInternalServerError
		}
		return http.StatusOK
	case types.KindMalformedRecord:
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}
