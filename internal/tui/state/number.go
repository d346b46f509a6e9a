package state

import (
    "errors"
    "math"
    "math/big"
    "regexp"
    "strconv"
    "strings"
    "unicode"
)

// ParseNumber reads the longest leading decimal number of s, ignoring leading
// whitespace and anything after the number. A comma is read as the decimal
// separator when it is the first one in s. ok is false when s does not start
// with a number; "Infinity" parses to ±Inf.
func ParseNumber(s string) (v float64, ok bool) {
    s = strings.TrimLeftFunc(NormalizeSeparator(s), isSpace)
    i := 0
    if i < len(s) && (s[i] == '+' || s[i] == '-') {
        i++
    }
    if strings.HasPrefix(s[i:], "Infinity") {
        if s[0] == '-' {
            return math.Inf(-1), true
        }
        return math.Inf(1), true
    }

    digits := 0
    for i < len(s) && isDigit(s[i]) {
        i++
        digits++
    }
    if i < len(s) && s[i] == '.' {
        i++
        for i < len(s) && isDigit(s[i]) {
            i++
            digits++
        }
    }
    if digits == 0 {
        return 0, false
    }
    end := i
    // exponent only counts when at least one digit follows
    if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
        j := i + 1
        if j < len(s) && (s[j] == '+' || s[j] == '-') {
            j++
        }
        k := j
        for k < len(s) && isDigit(s[k]) {
            k++
        }
        if k > j {
            end = k
        }
    }

    v, err := strconv.ParseFloat(s[:end], 64)
    if err != nil && !errors.Is(err, strconv.ErrRange) {
        return 0, false
    }
    // out of range yields ±Inf or ±0
    return v, true
}

// NormalizeSeparator replaces the first comma with a dot.
func NormalizeSeparator(s string) string {
    return strings.Replace(s, ",", ".", 1)
}

var (
    nonNumeric = regexp.MustCompile(`[^0-9.]`)
    firstDot   = regexp.MustCompile(`^([^.]*\.[0-9]*).*$`)
)

// Sanitize keeps digits and a single decimal point of s. Everything after the
// digit run that follows the first point is dropped.
func Sanitize(s string) string {
    s = NormalizeSeparator(s)
    s = nonNumeric.ReplaceAllString(s, "")
    return firstDot.ReplaceAllString(s, "$1")
}

// Round1 rounds x to one decimal place. The nearest tenth is chosen from the
// exact binary value of x; exact ties round away from zero.
func Round1(x float64) float64 {
    if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
        return x
    }
    t := new(big.Float).SetPrec(256).SetFloat64(math.Abs(x))
    t.Mul(t, big.NewFloat(10))

    n, _ := t.Int(nil)
    frac := new(big.Float).SetPrec(256).Sub(t, new(big.Float).SetInt(n))
    if frac.Cmp(big.NewFloat(0.5)) >= 0 {
        n.Add(n, big.NewInt(1))
    }
    f, _ := new(big.Float).SetInt(n).Float64()
    return math.Copysign(f/10, x)
}

// FormatValue renders v the shortest way that reads back to the same value.
func FormatValue(v float64) string {
    switch {
    case math.IsInf(v, 1):
        return "Infinity"
    case math.IsInf(v, -1):
        return "-Infinity"
    case v == 0:
        return "0" // no "-0"
    }
    return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v float64) bool {
    return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(r rune) bool {
    return unicode.IsSpace(r) || r == '\ufeff'
}
