// dnsdump parses a raw DNS message and prints its sections.
//
// Usage:
//
//	dnsdump message.bin
//	xxd -p message.bin | dnsdump -
//
// With "-" the message is read from stdin as hex (whitespace ignored);
// with a file argument it is read as raw bytes.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/haukened/dns-wire/common/log"
	"github.com/haukened/dns-wire/internal/config"
	"github.com/haukened/dns-wire/rrdata"
	"github.com/haukened/dns-wire/wire"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: dnsdump <file|->")
		os.Exit(2)
	}

	raw, err := readMessage(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "dnsdump: %v\n", err)
		os.Exit(1)
	}

	msg, err := wire.Parse(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dnsdump: parse: %v\n", err)
		os.Exit(1)
	}

	printMessage(os.Stdout, msg)
}

// readMessage loads the message bytes: hex from stdin for "-", raw bytes
// from a file otherwise.
func readMessage(arg string) ([]byte, error) {
	if arg == "-" {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(string(text))
		return hex.DecodeString(strings.Join(fields, ""))
	}
	return os.ReadFile(arg)
}

func printMessage(w io.Writer, msg *wire.Message) {
	h := msg.Header
	kind := "response"
	if h.Query {
		kind = "query"
	}
	fmt.Fprintf(w, ";; id %d, %s %s, rcode %s\n", h.ID, h.Opcode, kind, h.ResponseCode)
	fmt.Fprintf(w, ";; flags:%s; QUERY %d, ANSWER %d, AUTHORITY %d, ADDITIONAL %d\n",
		flagList(h), h.Questions, h.Answers, h.Nameservers, h.Additional)

	for _, q := range msg.Questions {
		unicast := ""
		if q.PreferUnicast {
			unicast = " (unicast preferred)"
		}
		fmt.Fprintf(w, "?? %s %s %s%s\n", q.Name, q.Class, q.Type, unicast)
	}
	printSection(w, msg.Answers)
	printSection(w, msg.Nameservers)
	printSection(w, msg.Additional)
}

func printSection(w io.Writer, records []wire.ResourceRecord) {
	for _, rr := range records {
		flush := ""
		if rr.MulticastUnique {
			flush = " (cache flush)"
		}
		fmt.Fprintf(w, "   %s %d %s %s %s%s\n",
			rr.Name, rr.TTL, rr.Class, rr.Data.TypeCode(), formatRData(rr.Data), flush)
	}
}

func flagList(h wire.Header) string {
	var flags []string
	if h.Authoritative {
		flags = append(flags, " aa")
	}
	if h.Truncated {
		flags = append(flags, " tc")
	}
	if h.RecursionDesired {
		flags = append(flags, " rd")
	}
	if h.RecursionAvailable {
		flags = append(flags, " ra")
	}
	if h.AuthenticatedData {
		flags = append(flags, " ad")
	}
	if h.CheckingDisabled {
		flags = append(flags, " cd")
	}
	return strings.Join(flags, "")
}

// formatRData renders a one-line human-readable summary per record kind.
func formatRData(rd rrdata.RData) string {
	switch v := rd.(type) {
	case rrdata.A:
		return v.Addr.String()
	case rrdata.AAAA:
		return v.Addr.String()
	case rrdata.NS:
		return v.Name.String()
	case rrdata.CNAME:
		return v.Name.String()
	case rrdata.PTR:
		return v.Name.String()
	case rrdata.MX:
		return fmt.Sprintf("%d %s", v.Preference, v.Exchange)
	case rrdata.SOA:
		return fmt.Sprintf("%s %s %d %d %d %d %d",
			v.PrimaryNS, v.Mailbox, v.Serial, v.Refresh, v.Retry, v.Expire, v.MinimumTTL)
	case rrdata.SRV:
		return fmt.Sprintf("%d %d %d %s", v.Priority, v.Weight, v.Port, v.Target)
	case rrdata.TXT:
		var parts []string
		for seg := range v.Segments() {
			parts = append(parts, fmt.Sprintf("%q", seg))
		}
		return strings.Join(parts, " ")
	case rrdata.Unknown:
		return fmt.Sprintf("\\# %d %x", len(v.Data), v.Data)
	default:
		return "?"
	}
}
