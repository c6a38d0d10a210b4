package ratelimit

import "strings"

// MatchEndpoint resolves the budget for a path and method. Exact path rules
// win over prefix rules; health checks are always unlimited. Returns nil
// when only the default budget applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method != method || !strings.HasSuffix(c.Path, "/") {
			continue
		}
		if strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
