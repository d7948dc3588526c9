package client

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// debugTransport provides detailed HTTP request/response logging for debugging client issues.
//
// When to use:
//   - Set FIDELIDADE_DEBUG=true or DEBUG=true environment variable
//   - Pass WithDebugLogging(true), or --debug on the CLI
//
// Security considerations:
//   - Dumps sit beneath the bearer wrapper and therefore include the
//     Authorization header and full bodies (CPFs, emails)
//   - Only enable in development/staging environments
type debugTransport struct {
	base http.RoundTripper
	log  zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - FIDELIDADE_DEBUG=true (client-specific debug flag)
//   - DEBUG=true (general debug flag, common in development workflows)
func debugLoggingRequested() bool {
	return os.Getenv("FIDELIDADE_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}

// restyLogger routes resty's internal messages through zerolog.
type restyLogger struct{ l zerolog.Logger }

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Error().Str("component", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Warn().Str("component", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug().Str("component", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
