package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	LogLevel          string   // sets the log level (zap log level values)
	LogFormat         string   // text vs json
	LogConfig         string   // path to log config file (zap config as yaml)
	LogFilter         string   // zapfilter rules, e.g. "debug:listener info:*"
	EnableTelemetry   bool     // enable telemetry
	TelemetryInterval string   // interval for writing metrics to stderr
	ListenAddr        string   // UDP address to receive telemetry from the game
	ReadBuffer        int      // size of the socket receive buffer
	StatsInterval     string   // interval for logging packet statistics
	Packets           []string // packet names to process, empty means all
	NatsURL           string   // NATS server url, empty disables publishing
	NatsSubjectPrefix string   // prefix of the NATS subjects
	WaitForServices   string   // duration to wait for the NATS server
	SourceID          string   // id of this source, sent as NATS header
	OutputFile        string   // JSONL output file, "-" for stdout
	PrintMessage      bool     // if true, the packet projection will be print on debug level
)

// Replay holds the settings of the replay command
var Replay struct {
	UDPPort     int    // only UDP datagrams sent to this port are replayed
	Speed       int    // replay speed factor, 0 means as fast as possible
	FastForward string // replay this duration with max speed
}

// Decode holds the settings of the decode command
var Decode struct {
	Format string // hex or bin
	Path   string // jsonpath expression applied to the projection
	Pretty bool   // indent output
}
