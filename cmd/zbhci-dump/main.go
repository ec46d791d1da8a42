// Command zbhci-dump decodes ZBHCI frames given as hex on the command line,
// on stdin (one per line) or stored in a capture database.
//
//	zbhci-dump 5581000010...AA
//	zbhci-dump < frames.txt
//	zbhci-dump -db cloudsmets.db -limit 20
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"cloudsmets-go/internal/mqtt"
	"cloudsmets-go/internal/store"
	"cloudsmets-go/internal/zbhci"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type input struct {
	label string
	frame []byte
}

// result is the -json output for one frame.
type result struct {
	Label      string           `json:"label"`
	Frame      string           `json:"frame"`
	Message    *zbhci.Message   `json:"message,omitempty"`
	Attributes []zbhci.Rendered `json:"attributes,omitempty"`
	Kind       string           `json:"kind"`
	Error      string           `json:"error,omitempty"`
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zbhci-dump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dbPath := fs.String("db", "", "read frames from a capture database")
	limit := fs.Int("limit", 50, "maximum captures to read with -db (0 for all)")
	asJSON := fs.Bool("json", false, "print one JSON object per frame")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	inputs, err := collect(fs.Args(), *dbPath, *limit, stdin)
	if err != nil {
		fmt.Fprintln(stderr, "zbhci-dump:", err)
		return 1
	}

	resolver := zbhci.DefaultResolver()
	enc := json.NewEncoder(stdout)
	failed := 0
	for _, in := range inputs {
		r := decode(resolver, in)
		if r.Error != "" {
			failed++
		}
		if *asJSON {
			if err := enc.Encode(r); err != nil {
				fmt.Fprintln(stderr, "zbhci-dump:", err)
				return 1
			}
			continue
		}
		printText(stdout, r)
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func collect(args []string, dbPath string, limit int, stdin io.Reader) ([]input, error) {
	if dbPath != "" {
		db, err := store.NewBoltStore(dbPath)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		captures, err := db.ListCaptures(limit)
		if err != nil {
			return nil, err
		}
		inputs := make([]input, 0, len(captures))
		for _, c := range captures {
			label := fmt.Sprintf("capture %d (%s, %s)", c.ID, c.Source, c.ReceivedAt.Format("2006-01-02T15:04:05Z07:00"))
			inputs = append(inputs, input{label: label, frame: c.Frame})
		}
		return inputs, nil
	}

	var lines []string
	if len(args) > 0 {
		lines = args
	} else {
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			lines = append(lines, line)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	inputs := make([]input, 0, len(lines))
	for i, line := range lines {
		frame, err := mqtt.ParseHex(line)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i+1, err)
		}
		inputs = append(inputs, input{label: fmt.Sprintf("frame %d", i+1), frame: frame})
	}
	return inputs, nil
}

func decode(resolver *zbhci.Resolver, in input) result {
	r := result{Label: in.label, Frame: fmt.Sprintf("%X", in.frame)}
	msg, err := zbhci.Decode(in.frame)
	if err == nil {
		r.Message = msg
		r.Attributes, err = resolver.RenderMessage(msg)
	}
	r.Kind = zbhci.KindOf(err).String()
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

func printText(w io.Writer, r result) {
	if r.Error != "" {
		fmt.Fprintf(w, "%s: %s: %s\n", r.Label, r.Kind, r.Error)
		return
	}
	c := r.Message.Command
	fmt.Fprintf(w, "%s: cluster 0x%04X from 0x%04X ep %d->%d seq %d\n",
		r.Label, c.ClusterID, c.SourceAddress, c.SourceEndpoint, c.DestinationEndpoint, c.SequenceNumber)
	for _, a := range r.Attributes {
		fmt.Fprintf(w, "  0x%04X %s (%s) = %s\n", a.ID, a.Name, a.Type, a.Value)
	}
}
