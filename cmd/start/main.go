package start

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime/pprof"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alpacahq/marketcal/frontend"
	"github.com/alpacahq/marketcal/internal/di"
	"github.com/alpacahq/marketcal/metrics"
	"github.com/alpacahq/marketcal/utils"
	"github.com/alpacahq/marketcal/utils/log"
)

const (
	usage                 = "start"
	short                 = "Start a marketcal holiday server"
	long                  = "This command starts a marketcal server answering holiday and working-day queries over RPC"
	example               = "marketcal start --config <path>"
	defaultConfigFilePath = "./marketcal.yml"
	configDesc            = "set the path for the marketcal YAML configuration file"
)

var (
	// Cmd is the start command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"s"},
		SuggestFor: []string{"boot", "up", "serve"},
		Example:    example,
		RunE:       executeStart,
	}
	// configFilePath set flag for a path to the config file.
	configFilePath string
)

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	Cmd.Flags().StringVarP(&configFilePath, "config", "c", defaultConfigFilePath, configDesc)
}

// executeStart implements the start command.
func executeStart(cmd *cobra.Command, _ []string) error {
	startTime := time.Now()

	// Attempt to read config file.
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		return errors.Wrap(err, "failed to read configuration file")
	}

	// Don't output command usage if args(=only the filepath to marketcal.yml at the moment) are correct
	cmd.SilenceUsage = true

	log.Info("using %v for configuration", configFilePath)

	config, err := utils.ParseConfig(data)
	if err != nil {
		return errors.Wrap(err, "failed to parse configuration file")
	}
	config.StartTime = startTime
	log.SetLevel(config.LogLevel)

	log.Info("initializing marketcal...")
	c := di.NewContainer(config)
	rpcServer := c.GetHTTPServer()

	startupTime := time.Since(startTime)
	metrics.StartupTime.Set(startupTime.Seconds())
	log.Info("startup time: %s", startupTime)

	// Set rpc handler.
	log.Info("launching rpc server...")
	mux := http.NewServeMux()
	mux.Handle("/rpc", rpcServer)
	srv := &http.Server{Addr: config.ListenURL, Handler: mux}

	var utilSrv *http.Server
	if config.UtilitiesURL != "" {
		// Start utility endpoints.
		log.Info("launching utility service...")
		uah := frontend.NewUtilityAPIHandlers(config.StartTime)
		utilSrv = &http.Server{Addr: config.UtilitiesURL, Handler: uah.Handler()}
		go func() {
			if err2 := utilSrv.ListenAndServe(); err2 != nil && !errors.Is(err2, http.ErrServerClosed) {
				log.Error("utility API handle error: %v", err2)
			}
		}()
	}

	log.Info("enabling query access...")
	atomic.StoreUint32(&frontend.Queryable, 1)

	// Spawn a goroutine and listen for a signal.
	const defaultSignalChanLen = 10
	signalChan := make(chan os.Signal, defaultSignalChanLen)
	done := make(chan struct{})
	go func() {
		for s := range signalChan {
			switch s {
			case syscall.SIGUSR1:
				log.Info("dumping stack traces due to SIGUSR1 request")
				if err2 := pprof.Lookup("goroutine").WriteTo(os.Stdout, 1); err2 != nil {
					log.Error("failed to write goroutine pprof: %v", err2)
				}
			case syscall.SIGINT, syscall.SIGTERM:
				log.Info("initiating graceful shutdown due to '%v' request", s)
				atomic.StoreUint32(&frontend.Queryable, 0)
				log.Info("waiting a grace period of %v to shutdown...", config.StopGracePeriod)
				shutdown(config.StopGracePeriod, srv, utilSrv)
				close(done)
				return
			}
		}
	}()
	signal.Notify(signalChan, syscall.SIGUSR1, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalChan)

	log.Info("launching tcp listener on %s...", config.ListenURL)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to start server")
	}
	<-done
	log.Info("exiting...")
	return nil
}

func shutdown(grace time.Duration, servers ...*http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	for _, srv := range servers {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("failed to shutdown %s: %v", srv.Addr, err)
		}
	}
}
