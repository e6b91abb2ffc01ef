package deps

import (
	"os"

	"github.com/olebedev/config"
	"github.com/subosito/gotenv"
)

// Used when no env file is found. Any key here can be overridden from the
// environment, e.g. CART_STORAGE=ledis.
const defaults = `{
	"environment": "development",
	"log": {"level": "DEBUG"},
	"application": {"secret": "cartstore-development-secret"},
	"cart": {
		"storage": "memory",
		"ledis": {"path": "./data/ledis"},
		"redis": {"address": "localhost:6379", "password": "", "db": 0, "namespace": "cartstore"},
		"bunt": {"path": "./data/cart.db"}
	},
	"api": {
		"sessions": "cookie",
		"redis": {"address": "localhost:6379", "password": "", "size": 10}
	},
	"sentry": {"dsn": ""}
}`

// EnvFile returns the config file path, ./env.json unless ENV_FILE says otherwise.
func EnvFile() string {
	envfile := os.Getenv("ENV_FILE")
	if envfile == "" {
		envfile = "./env.json"
	}
	return envfile
}

// IgniteEnv loads variables from a .env file when there is one.
func IgniteEnv(container Deps) (Deps, error) {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return container, nil
	}

	err := gotenv.Load()
	return container, err
}

func IgniteConfig(container Deps) (Deps, error) {
	var (
		conf *config.Config
		err  error
	)

	envfile := EnvFile()
	if _, statErr := os.Stat(envfile); statErr == nil {
		conf, err = config.ParseJsonFile(envfile)
	} else {
		conf, err = config.ParseJson(defaults)
	}
	if err != nil {
		return container, err
	}

	container.ConfigProvider = conf.Env()
	return container, nil
}
