package constants

// Default server configuration values
const (
	DefaultServerPort            = 8090
	DefaultServerReadTimeoutSec  = 15
	DefaultServerWriteTimeoutSec = 15
	DefaultServerIdleTimeoutSec  = 60
	DefaultGracefulShutdownSec   = 30
)

// Default session configuration values
const (
	DefaultIdleTimeoutSec = 1800 // 30 minutes
	CSRFTokenBytes        = 32
	SessionCookieName     = "smssync_session"
)

// Request limits
const (
	MaxRequestBodyBytes = 64 * 1024
	MaxSearchLength     = 256
	MaxBulkIDs          = 200
)

// ServerErrorChannelSize is the buffer size for the server error channel
const ServerErrorChannelSize = 1
