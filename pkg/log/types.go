package log

// ZapConfig configures the zap backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	// OutputPaths overrides the default stderr sink, e.g. a file for the terminal UI.
	OutputPaths []string
}

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	traceIDKey = "trace_id"
)

type ctxKey struct{}
