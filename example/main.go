package main

import (
	"fmt"
	"log/slog"
	"os"

	logfilter "github.com/museun/log-filter-parse"
)

func main() {
	// Example 1: parse a directive string and inspect thresholds
	fmt.Println("=== Directive String Example ===")
	filters := logfilter.Parse("info,net::dns=trace,net::http=off,store=debug")

	modules := []string{"net::dns", "net::dns::resolver", "net::http", "store", "api"}
	for _, module := range modules {
		if level, ok := filters.FindModule(module); ok {
			fmt.Printf("%-20s -> %s\n", module, level)
		} else {
			fmt.Printf("%-20s -> (disabled)\n", module)
		}
	}

	fmt.Println()

	// Example 2: environment-driven configuration
	fmt.Println("=== Environment Example ===")
	os.Setenv(logfilter.DefaultEnvVar, "warn,api=debug")
	envFilters := logfilter.FromEnv("")
	fmt.Println("api debug enabled:", envFilters.IsEnabled("api", logfilter.Debug))
	fmt.Println("store debug enabled:", envFilters.IsEnabled("store", logfilter.Debug))

	fmt.Println()

	// Example 3: slog integration
	fmt.Println("=== Slog Example ===")
	handler := logfilter.NewHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logfilter.LevelTrace,
	}), filters)

	dns := slog.New(handler.WithModule("net::dns"))
	dns.Debug("resolved upstream", "addr", "1.1.1.1:853")

	http := slog.New(handler.WithModule("net::http"))
	http.Error("this is filtered out entirely")
}
