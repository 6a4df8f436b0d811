package frontend

import (
	"net/http"
	"net/http/pprof"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alpacahq/marketcal/utils"
	"github.com/alpacahq/marketcal/utils/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var Queryable uint32 // treated as bool

type HeartbeatMessage struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	GitHash string `json:"git_hash"`
	Uptime  string `json:"uptime"`
}

func NewUtilityAPIHandlers(startTime time.Time) *utilityAPIHandlers {
	return &utilityAPIHandlers{startTime: startTime}
}

type utilityAPIHandlers struct {
	startTime time.Time
}

// Handler serves the heartbeat, prometheus metrics and profiling endpoints.
func (uah *utilityAPIHandlers) Handler() http.Handler {
	mux := http.NewServeMux()

	// heartbeat
	mux.HandleFunc("/heartbeat", uah.heartbeat)

	// metrics
	mux.Handle("/metrics", promhttp.Handler())

	// profiling
	mux.HandleFunc("/pprof/", pprof.Index)
	mux.HandleFunc("/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/pprof/profile", pprof.Profile)
	mux.HandleFunc("/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/pprof/trace", pprof.Trace)
	mux.Handle("/pprof/heap", pprof.Handler("heap"))
	mux.Handle("/pprof/goroutine", pprof.Handler("goroutine"))
	mux.Handle("/pprof/block", pprof.Handler("block"))

	return mux
}

func (uah *utilityAPIHandlers) heartbeat(rw http.ResponseWriter, _ *http.Request) {
	msg := HeartbeatMessage{
		Status:  "queryable",
		Version: utils.Tag,
		GitHash: utils.GitHash,
		Uptime:  time.Since(uah.startTime).String(),
	}
	rw.Header().Set("Content-Type", "application/json")
	if atomic.LoadUint32(&Queryable) > 0 {
		rw.WriteHeader(http.StatusOK)
	} else {
		msg.Status = "not queryable"
		rw.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(rw).Encode(msg); err != nil {
		log.Error("Failed to write heartbeat message - Error: %v", err)
	}
}
