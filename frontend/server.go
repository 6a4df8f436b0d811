package frontend

import (
	"context"
	"net/http"
	"time"

	rpc "github.com/alpacahq/rpc/rpc2"
	"github.com/alpacahq/rpc/rpc2/json2"

	"github.com/alpacahq/marketcal/metrics"
	"github.com/alpacahq/marketcal/utils"
	"github.com/alpacahq/marketcal/utils/log"
	"github.com/alpacahq/marketcal/utils/rpc/msgpack2"
)

type RpcServer struct {
	*rpc.Server
}

func (s *RpcServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	w.Header().Set("marketcal-version", utils.GitHash)
	s.Server.ServeHTTP(w, r)
	metrics.RPCTotalRequestsTotal.Inc()
	metrics.RPCTotalRequestDuration.Observe(time.Since(start).Seconds())
}

// NewServer registers service with JSON-RPC 2.0 and msgpack codecs.
func NewServer(service *HolidayService) (*RpcServer, error) {
	s := &RpcServer{
		Server: rpc.NewServer(),
	}
	s.RegisterCodec(json2.NewCodec(), "application/json")
	s.RegisterCodec(json2.NewCodec(), "application/json;charset=UTF-8")
	s.RegisterCodec(msgpack2.NewCodec(), "application/x-msgpack")
	s.RegisterInterceptFunc(intercept)
	s.RegisterAfterFunc(after)
	if err := s.RegisterService(service, ""); err != nil {
		log.Error("Failed to register service - Error: %v", err)
		return nil, err
	}
	return s, nil
}

type key int

const startTimeKey key = 0

func intercept(i *rpc.RequestInfo) *http.Request {
	return i.Request.WithContext(context.WithValue(i.Request.Context(), startTimeKey, time.Now()))
}

func after(i *rpc.RequestInfo) {
	if i.Error != nil {
		log.Debug("%s failed: %v", i.Method, i.Error)
		return
	}
	v := i.Request.Context().Value(startTimeKey)
	if v == nil {
		log.Error("start time not set on context")
		return
	}
	t, ok := v.(time.Time)
	if !ok {
		log.Error("start time not correct type")
		return
	}

	metrics.RPCSuccessfulRequestsTotal.WithLabelValues(i.Method).Inc()
	metrics.RPCSuccessfulRequestDuration.WithLabelValues(i.Method).Observe(time.Since(t).Seconds())
}
