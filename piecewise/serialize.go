package piecewise

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// Compact renders p in the compact textual form named by spec §6:
//
//	PiecewiseFunction([x0,...,xn], [f0,...,fn])
//
// with each sub-function rendered as LinearFunction(a, b) or
// HypLinFunction(a, b, c, d) — matching
// original_source/src/python/functions.py:39-40 and :73-74/:138-139's
// __repr__ methods.
func Compact(p *PiecewiseFunction) string {
	xs := make([]string, len(p.breaks))
	for i, x := range p.breaks {
		xs[i] = formatFloat(x)
	}
	fns := make([]string, len(p.subs))
	for i, s := range p.subs {
		fns[i] = compactSub(s)
	}
	return fmt.Sprintf("PiecewiseFunction([%s], [%s])", strings.Join(xs, ", "), strings.Join(fns, ", "))
}

func compactSub(s SubFunction) string {
	switch v := s.(type) {
	case LinearPiece:
		return fmt.Sprintf("LinearFunction(%s, %s)", formatFloat(v.A), formatFloat(v.B))
	case HypLinPiece:
		return fmt.Sprintf("HypLinFunction(%s, %s, %s, %s)", formatFloat(v.A), formatFloat(v.B), formatFloat(v.C), formatFloat(v.D))
	default:
		panic(fmt.Sprintf("piecewise: unhandled SubFunction variant %T", s))
	}
}

// SystemsNeutral renders p as one entry per piece:
//
//	{{x_min, x_max, f}, {x_min, x_max, f}, ...}
//
// where the last entry's x_max is the literal "inf" (spec §6).
func SystemsNeutral(p *PiecewiseFunction) string {
	domains := p.Domains()
	entries := make([]string, len(domains))
	for i, d := range domains {
		xmax := formatFloat(d.XMax)
		if d.XMax == posInf {
			xmax = "inf"
		}
		entries[i] = fmt.Sprintf("{%s, %s, %s}", formatFloat(d.XMin), xmax, compactSub(d.Sub))
	}
	return "{" + strings.Join(entries, ", ") + "}"
}

func formatFloat(f float64) string {
	if f == posInf {
		return "inf"
	}
	if f == negInf {
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

var compactLinearRe = regexp.MustCompile(`LinearFunction\(\s*([^,]+?)\s*,\s*([^)]+?)\s*\)`)
var compactHypLinRe = regexp.MustCompile(`HypLinFunction\(\s*([^,]+?)\s*,\s*([^,]+?)\s*,\s*([^,]+?)\s*,\s*([^)]+?)\s*\)`)
var compactHeaderRe = regexp.MustCompile(`^PiecewiseFunction\(\s*\[([^\]]*)\]\s*,\s*\[(.*)\]\s*\)$`)

// ParseCompact parses the compact textual form produced by Compact. It is
// a deliberately narrow parser: it only needs to round-trip exactly what
// Compact emits (spec §6: "Both round-trip with eval to within ε"), not
// an arbitrary grammar.
func ParseCompact(s string) (*PiecewiseFunction, error) {
	s = strings.TrimSpace(s)
	m := compactHeaderRe.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("piecewise: %q is not a compact PiecewiseFunction literal", s)
	}
	xsPart, fnsPart := m[1], m[2]

	var xs []float64
	for _, tok := range splitTopLevel(xsPart, ',') {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := parseFloatToken(tok)
		if err != nil {
			return nil, err
		}
		xs = append(xs, v)
	}

	var subs []SubFunction
	for _, tok := range splitTopLevel(fnsPart, ',') {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		sub, err := parseSubFunction(tok)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return NewPiecewiseFunction(xs, subs)
}

func parseSubFunction(tok string) (SubFunction, error) {
	if m := compactHypLinRe.FindStringSubmatch(tok); m != nil {
		vals := make([]float64, 4)
		for i := 0; i < 4; i++ {
			v, err := parseFloatToken(m[i+1])
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return NewHypLinPiece(vals[0], vals[1], vals[2], vals[3])
	}
	if m := compactLinearRe.FindStringSubmatch(tok); m != nil {
		a, err := parseFloatToken(m[1])
		if err != nil {
			return nil, err
		}
		b, err := parseFloatToken(m[2])
		if err != nil {
			return nil, err
		}
		return NewLinearPiece(a, b)
	}
	return nil, fmt.Errorf("piecewise: unrecognised sub-function literal %q", tok)
}

func parseFloatToken(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	switch tok {
	case "inf", "+inf":
		return posInf, nil
	case "-inf":
		return negInf, nil
	}
	return strconv.ParseFloat(tok, 64)
}

// splitTopLevel splits on sep, ignoring nested parentheses.
func splitTopLevel(s string, sep byte) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}

