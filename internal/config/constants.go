package config

// Default configuration values
const (
	DefaultPort         = "8080"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultEnvironment  = "dev"
	DefaultServiceName  = "traderx-convert"
	DefaultVersion      = "dev"
	DefaultOutputRoot   = "TraderXConfig"
	DefaultCurrencyType = "EUR"
	DefaultCacheSize    = "128"
	DefaultSchemaDir    = "configs/schemas"
)
