package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/hijack-gaming/holdem-engine/game"
	"github.com/hijack-gaming/holdem-engine/logging"
	"github.com/hijack-gaming/holdem-engine/nats"
	"github.com/hijack-gaming/holdem-engine/rest"
	"github.com/hijack-gaming/holdem-engine/util"
)

var mainLogger = logging.GetZeroLogger("main::main", nil)

var listenAddr *string
var persistMethod *string

func init() {
	listenAddr = flag.String("listen", "", "address for the REST server (overrides LISTEN_ADDR)")
	persistMethod = flag.String("persist", "", "table persistence: memory or redis (overrides PERSIST_METHOD)")
}

func main() {
	err := run()
	if err != nil {
		mainLogger.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	logLevel, err := zerolog.ParseLevel(util.Env.GetLogLevel())
	if err != nil {
		return err
	}
	fmt.Printf("Setting log level to %s\n", logLevel)
	zerolog.SetGlobalLevel(logLevel)

	method := *persistMethod
	if method == "" {
		method = util.Env.GetPersistMethod()
	}
	var store game.TableStore
	switch method {
	case "memory":
		store = game.NewMemoryTableStore()
	case "redis":
		store = game.NewRedisTableStore(util.Env.GetRedisAddr(), util.Env.GetRedisPW(), util.Env.GetRedisDB())
	default:
		return fmt.Errorf("unsupported persistence method: %s", method)
	}
	mainLogger.Info().Msgf("Using %s persistence for table state", method)

	natsURL := util.Env.GetNatsURL()
	mainLogger.Info().Msgf("NATS URL: %s", natsURL)
	publisher, err := nats.NewPublisher(natsURL)
	if err != nil {
		// Table updates are best-effort. The engine itself does not
		// need NATS, so keep serving without it.
		mainLogger.Warn().Msgf("Running without table update broadcasts: %v", err)
		publisher = nil
	}

	manager := game.NewManager(store, publisherOrNil(publisher), nil)

	addr := *listenAddr
	if addr == "" {
		addr = util.Env.GetListenAddr()
	}
	mainLogger.Info().Msgf("Running the REST server at %s", addr)
	rest.RunRestServer(manager, publisher, addr)
	return nil
}

// A nil *nats.Publisher stored in the interface would not compare
// equal to nil inside the manager.
func publisherOrNil(publisher *nats.Publisher) game.TableUpdatePublisher {
	if publisher == nil {
		return nil
	}
	return publisher
}
