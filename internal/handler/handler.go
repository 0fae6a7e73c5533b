package handler

import (
	"github.com/An2rei-84/skystore/internal/notify"
	"github.com/An2rei-84/skystore/pkg/config"
)

var (
	appConfig *config.Config
	notifier  *notify.Notifier
)

// Init wires the handlers to the loaded configuration and notifier.
// Must be called once at startup before any route is served.
func Init(cfg *config.Config, n *notify.Notifier) {
	appConfig = cfg
	notifier = n
}
