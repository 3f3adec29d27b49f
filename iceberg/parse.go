package iceberg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"schema-caster/internal/match"
	"schema-caster/primitive"
	"schema-caster/utils"
)

var (
	ErrUnknownPrimitive = errors.New("unknown primitive type")
	ErrInvalidDecimal   = errors.New("invalid decimal type")
	ErrInvalidFixed     = errors.New("invalid fixed type")
)

// ParsePrimitive parses the table-format spelling of a primitive type:
// a bare kind name such as "long", "decimal(P, S)" or "fixed[L]".
func ParsePrimitive(s string) (PrimitiveType, error) {
	text := strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(text, "decimal"):
		return parseDecimal(text)
	case strings.HasPrefix(text, "fixed"):
		return parseFixed(text)
	}

	if kind := primitive.FromName(text); kind != 0 {
		return PrimitiveOf(kind), nil
	}

	if suggestion, ok := match.Suggest(text, primitive.Names(), match.DefaultMinScore); ok {
		return PrimitiveType{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownPrimitive, s, suggestion)
	}

	return PrimitiveType{}, fmt.Errorf("%w %q", ErrUnknownPrimitive, s)
}

// parseDecimal parses "decimal(P, S)"
func parseDecimal(text string) (PrimitiveType, error) {
	args, ok := enclosed(strings.TrimPrefix(text, "decimal"), "(", ")")
	if !ok {
		return PrimitiveType{}, fmt.Errorf("%w %q: expected decimal(precision, scale)", ErrInvalidDecimal, text)
	}

	parts := strings.Split(args, ",")
	if len(parts) != 2 {
		return PrimitiveType{}, fmt.Errorf("%w %q: expected decimal(precision, scale)", ErrInvalidDecimal, text)
	}

	precisionStr, scaleStr := utils.Unpack2(parts)

	precision, err := strconv.ParseUint(strings.TrimSpace(precisionStr), 10, 32)
	if err != nil {
		return PrimitiveType{}, fmt.Errorf("%w %q: precision: %w", ErrInvalidDecimal, text, err)
	}

	scale, err := strconv.ParseUint(strings.TrimSpace(scaleStr), 10, 8)
	if err != nil {
		return PrimitiveType{}, fmt.Errorf("%w %q: scale: %w", ErrInvalidDecimal, text, err)
	}

	return DecimalOf(uint32(precision), uint8(scale)), nil
}

// parseFixed parses "fixed[L]"
func parseFixed(text string) (PrimitiveType, error) {
	arg, ok := enclosed(strings.TrimPrefix(text, "fixed"), "[", "]")
	if !ok {
		return PrimitiveType{}, fmt.Errorf("%w %q: expected fixed[length]", ErrInvalidFixed, text)
	}

	length, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return PrimitiveType{}, fmt.Errorf("%w %q: length: %w", ErrInvalidFixed, text, err)
	}

	return FixedOf(length), nil
}

func enclosed(s, opening, closing string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, opening) || !strings.HasSuffix(s, closing) {
		return "", false
	}

	return s[len(opening) : len(s)-len(closing)], true
}
