package config

import (
	"fmt"
	"os"
)

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(Template), 0o600)
}

// Template documents every key with its default value.
const Template = `# transport is "tcp" (connect to host:port) or "udp" (bind 0.0.0.0:port).
transport = "tcp"
host = "localhost"
port = 5002
connect_timeout = "5s"

# Deepest Vector/Struct nesting accepted in decoded values.
max_depth = 64
buffer_size = 4096

log_level = "info"
# metrics_addr = "127.0.0.1:9464"

# Idle polling backoff between empty reads.
[backoff]
initial = "1ms"
max = "50ms"
multiplier = 2.0
jitter = true
`
