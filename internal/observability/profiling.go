package observability

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/club-stats/internal/config"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

// Profiling owns the optional pprof listener and the continuous profiler.
// A zero Profiling is valid and Stop is a no-op.
type Profiling struct {
	pprof     *http.Server
	pprofAddr string
	profiler  *pyroscope.Profiler
}

// StartProfiling starts whatever cfg enables. On error nothing is left
// running.
func StartProfiling(cfg config.Config, logger *logging.Logger) (*Profiling, error) {
	if logger == nil {
		logger = logging.Default()
	}
	p := &Profiling{}

	if cfg.PyroscopeEnabled {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName:   cfg.PyroscopeAppName,
			ServerAddress:     cfg.PyroscopeServerAddress,
			AuthToken:         cfg.PyroscopeAuthToken,
			BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
			BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
			UploadRate:        cfg.PyroscopeUploadRate,
			Tags: map[string]string{
				"env":     cfg.AppEnv,
				"service": cfg.ServiceName,
				"version": cfg.ServiceVersion,
			},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseSpace,
				pyroscope.ProfileGoroutines,
				pyroscope.ProfileMutexDuration,
				pyroscope.ProfileBlockDuration,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("start pyroscope: %w", err)
		}
		p.profiler = profiler
		logger.Info("pyroscope enabled", "server_address", cfg.PyroscopeServerAddress, "application", cfg.PyroscopeAppName)
	}

	if cfg.PprofEnabled {
		ln, err := net.Listen("tcp", cfg.PprofAddr)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("listen pprof on %s: %w", cfg.PprofAddr, err), p.Stop(context.Background()))
		}
		p.pprof = &http.Server{Handler: pprofMux(), ReadHeaderTimeout: 5 * time.Second}
		p.pprofAddr = ln.Addr().String()
		go func() {
			if err := p.pprof.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("pprof server failed", "error", err)
			}
		}()
		logger.Info("pprof server listening", "addr", p.pprofAddr)
	}

	return p, nil
}

// PprofAddr is the bound pprof address, or "" when pprof is off.
func (p *Profiling) PprofAddr() string {
	if p == nil {
		return ""
	}
	return p.pprofAddr
}

// Stop shuts the pprof listener down within ctx and flushes the profiler.
func (p *Profiling) Stop(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.pprof != nil {
		if err := p.pprof.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop pprof: %w", err))
		}
		p.pprof, p.pprofAddr = nil, ""
	}
	if p.profiler != nil {
		if err := p.profiler.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop pyroscope: %w", err))
		}
		p.profiler = nil
	}
	return errors.Join(errs...)
}

func pprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	return mux
}
