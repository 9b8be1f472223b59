package parser

import (
	"errors"
	"iter"
	"net/netip"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const fieldCount = 4

// Parse validates one ADDRESS:PORT:USERNAME:PASSWORD line.
func Parse(line string) (*Record, error) {
	parts := strings.Split(line, ":")
	if len(parts) != fieldCount {
		return nil, &ParseError{Reason: ReasonMalformedFieldCount, Line: line}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	address, portStr, username, password := parts[0], parts[1], parts[2], parts[3]

	// No DNS: only literals are accepted.
	if _, err := netip.ParseAddr(address); err != nil {
		return nil, &ParseError{Reason: ReasonInvalidAddress, Line: line, Value: address, Cause: err}
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, &ParseError{Reason: ReasonInvalidPort, Line: line, Value: portStr, Cause: err}
	}
	if port < 1 || port > 65535 {
		return nil, &ParseError{Reason: ReasonInvalidPort, Line: line, Value: portStr}
	}

	if username == "" || password == "" {
		return nil, &ParseError{Reason: ReasonEmptyCredential, Line: line}
	}

	return &Record{
		Address:  address,
		Port:     port,
		Username: username,
		Password: password,
	}, nil
}

// Batch is the outcome of parsing a whole proxy list.
type Batch struct {
	Candidates int
	Records    []Record
	Rejected   []*ParseError
}

// ParseAll parses every candidate line in order. Rejected lines are logged
// at warn level and skipped; they never stop the batch.
func ParseAll(lines iter.Seq[string], log *zap.SugaredLogger) *Batch {
	b := &Batch{}
	for line := range lines {
		b.Candidates++
		rec, err := Parse(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				b.Rejected = append(b.Rejected, pe)
			}
			logRejection(log, b.Candidates, err)
			continue
		}
		log.Debugf("Accepted %s:%d", rec.Address, rec.Port)
		b.Records = append(b.Records, *rec)
	}
	return b
}

func logRejection(log *zap.SugaredLogger, n int, err error) {
	var pe *ParseError
	if !errors.As(err, &pe) {
		log.Warnf("Candidate %d rejected: %v", n, err)
		return
	}
	switch pe.Reason {
	case ReasonMalformedFieldCount:
		log.Warnf("Invalid proxy format (expected 4 parts): '%s'", pe.Line)
	case ReasonInvalidAddress:
		log.Warnf("Invalid IP address: %s", pe.Value)
	case ReasonInvalidPort:
		log.Warnf("Invalid port number: %s", pe.Value)
	case ReasonEmptyCredential:
		log.Warnf("Missing username or password: '%s'", pe.Line)
	default:
		log.Warnf("Candidate %d rejected: %v", n, err)
	}
}
