// Command uniqueid prints the persistent hardware identifier of the
// current machine, or a diagnostic dump of the collected fingerprint.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/darkit/uniqueid"
)

func main() {
	var (
		fingerprint = flag.Bool("fingerprint", false, "print the collected fingerprint and report instead of the identifier")
		format      = flag.String("format", "text", "fingerprint dump format: text, json or yaml")
		verify      = flag.Bool("verify", false, "exit 0 when a persisted identifier exists, 1 otherwise")
		reset       = flag.Bool("reset", false, "remove the persisted identifier before resolving")
		store       = flag.String("store", "", "override the persisted identifier path (default ~/.unique_hw_id)")
		timeout     = flag.Duration("timeout", 3*time.Second, "per-probe command timeout")
		verbose     = flag.Bool("v", false, "enable debug logging on stderr")
	)
	flag.Parse()

	resolver := uniqueid.New().WithStorePath(*store).WithProbeTimeout(*timeout)
	if *verbose {
		resolver.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *verify {
		ok, err := resolver.Verify()
		if err != nil {
			fatal(err)
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	if *reset {
		if err := resolver.Invalidate(); err != nil {
			fatal(err)
		}
	}

	ctx := context.Background()

	if *fingerprint {
		fp, report := resolver.Fingerprint(ctx)
		if err := dump(os.Stdout, *format, fp, report); err != nil {
			fatal(err)
		}
		return
	}

	id, err := resolver.Resolve(ctx)
	if err != nil {
		fatal(err)
	}
	fmt.Println(id)
}

// fingerprintDump 是 -fingerprint 输出的结构化形态。
type fingerprintDump struct {
	Fingerprint uniqueid.Fingerprint `json:"fingerprint" yaml:"fingerprint"`
	Collected   []string             `json:"collected" yaml:"collected"`
	Omitted     map[string]string    `json:"omitted,omitempty" yaml:"omitted,omitempty"`
	InContainer bool                 `json:"in_container" yaml:"in_container"`
}

func dump(out *os.File, format string, fp uniqueid.Fingerprint, report *uniqueid.Report) error {
	d := fingerprintDump{
		Fingerprint: fp,
		Collected:   report.Collected,
		InContainer: report.InContainer,
	}
	if len(report.Omitted) > 0 {
		d.Omitted = make(map[string]string, len(report.Omitted))
		for field, err := range report.Omitted {
			d.Omitted[field] = err.Error()
		}
	}

	switch format {
	case "text":
		keys := make([]string, 0, len(fp))
		for k := range fp {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "%-14s %s\n", k, fp[k])
		}
		omitted := make([]string, 0, len(d.Omitted))
		for field := range d.Omitted {
			omitted = append(omitted, field)
		}
		sort.Strings(omitted)
		for _, field := range omitted {
			fmt.Fprintf(out, "%-14s (omitted: %s)\n", field, d.Omitted[field])
		}
		if d.InContainer {
			fmt.Fprintln(out, "container environment detected")
		}
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case "yaml":
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "uniqueid:", err)
	os.Exit(1)
}
