package ch

import (
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo returns a ClientInfo describing this process
// name is the product ("falnama"), role the process flavor ("api")
func BuildClientInfo(name, role string) clickhouse.ClientInfo {
	host, _ := os.Hostname()

	type kv = struct{ Name, Version string }

	products := []kv{
		{Name: safe(name), Version: safe(role)},
		{Name: "go", Version: safe(runtime.Version())},
		{Name: "commit", Version: safe(vcsShortSHA())},
		{Name: "host", Version: safe(host)},
	}

	return clickhouse.ClientInfo{Products: products}
}

func vcsShortSHA() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return s.Value[:7]
			}
		}
	}
	return "unknown"
}

func safe(s string) string {
	return strings.TrimSpace(s)
}
