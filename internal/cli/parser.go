package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidPaymentFormat flags interactive input the parser cannot read.
var ErrInvalidPaymentFormat = errors.New("invalid payment format")

var paymentEntryPattern = regexp.MustCompile(`^\s*(\d+)\s*=>\s*(\d+)\s*$`)

// PaymentParser reads the interactive coin-hash syntax, e.g.
// "{100 => 2, 50 => 1}". Denomination validation is the engine's job; the
// parser only guarantees well-formed positive integer pairs.
type PaymentParser struct{}

// NewPaymentParser builds a parser.
func NewPaymentParser() *PaymentParser {
	return &PaymentParser{}
}

// Parse converts the input into a raw coin map. Repeated denominations
// accumulate.
func (parser *PaymentParser) Parse(input string) (map[int]int, error) {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return nil, fmt.Errorf("%w: input must be in hash format like {100 => 2, 50 => 1}", ErrInvalidPaymentFormat)
	}
	content := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	payment := map[int]int{}
	if content == "" {
		return payment, nil
	}
	for _, entry := range strings.Split(content, ",") {
		match := paymentEntryPattern.FindStringSubmatch(entry)
		if match == nil {
			return nil, fmt.Errorf("%w: bad pair %q, expected 'denomination => count'", ErrInvalidPaymentFormat, strings.TrimSpace(entry))
		}
		denomination, err := strconv.Atoi(match[1])
		if err != nil {
			return nil, fmt.Errorf("%w: denomination %q out of range", ErrInvalidPaymentFormat, match[1])
		}
		count, err := strconv.Atoi(match[2])
		if err != nil {
			return nil, fmt.Errorf("%w: count %q out of range", ErrInvalidPaymentFormat, match[2])
		}
		if count <= 0 {
			return nil, fmt.Errorf("%w: count must be positive, got %d", ErrInvalidPaymentFormat, count)
		}
		payment[denomination] += count
	}
	return payment, nil
}
