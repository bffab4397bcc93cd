package format

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-detailview/pkg/attr"
)

// Built-in format kinds. "text" escapes, "raw" does not; that split is the
// security contract of the component and must survive any registry swap.
const (
	KindText     = "text"
	KindHTML     = "html"
	KindRaw      = "raw"
	KindNText    = "ntext"
	KindBoolean  = "boolean"
	KindInteger  = "integer"
	KindDecimal  = "decimal"
	KindPercent  = "percent"
	KindDate     = "date"
	KindDatetime = "datetime"
	KindURL      = "url"
	KindEmail    = "email"
)

const (
	dateLayout     = "Jan 2, 2006"
	datetimeLayout = "Jan 2, 2006 3:04:05 PM"
)

var (
	htmlPolicyOnce sync.Once
	htmlPolicy     *bluemonday.Policy
)

func (r *Registry) registerBuiltins() {
	r.register(KindText, formatText)
	r.register(KindHTML, formatHTML)
	r.register(KindRaw, formatRaw)
	r.register(KindNText, formatNText)
	r.register(KindBoolean, formatBoolean)
	r.register(KindInteger, formatInteger)
	r.register(KindDecimal, formatDecimal)
	r.register(KindPercent, formatPercent)
	r.register(KindDate, formatDate)
	r.register(KindDatetime, formatDatetime)
	r.register(KindURL, formatURL)
	r.register(KindEmail, formatEmail)
}

func formatText(value any) (string, error) {
	return html.EscapeString(stringify(value)), nil
}

// formatHTML passes markup through a UGC sanitizer rather than escaping it.
// Benign tags like <b> survive intact; script vectors are stripped.
func formatHTML(value any) (string, error) {
	return sanitizerPolicy().Sanitize(stringify(value)), nil
}

func formatRaw(value any) (string, error) {
	return stringify(value), nil
}

func formatNText(value any) (string, error) {
	escaped := html.EscapeString(stringify(value))
	return strings.ReplaceAll(escaped, "\n", "<br>"), nil
}

func formatBoolean(value any) (string, error) {
	truthy, ok := value.(bool)
	if !ok {
		return "", attr.ConfigErrorf("format: boolean formatter requires a bool, got %T", value)
	}
	if truthy {
		return "Yes", nil
	}
	return "No", nil
}

func formatInteger(value any) (string, error) {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatInt(int64(v), 10), nil
	case float64:
		return strconv.FormatInt(int64(v), 10), nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return "", attr.ConfigErrorf("format: integer formatter cannot parse %q", v)
		}
		return strconv.FormatInt(parsed, 10), nil
	default:
		return "", attr.ConfigErrorf("format: integer formatter requires a numeric value, got %T", value)
	}
}

func formatDecimal(value any) (string, error) {
	f, err := toFloat(value)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(f, 'f', 2, 64), nil
}

func formatPercent(value any) (string, error) {
	f, err := toFloat(value)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(f*100, 'f', 0, 64) + "%", nil
}

func formatDate(value any) (string, error) {
	return formatTime(value, dateLayout)
}

func formatDatetime(value any) (string, error) {
	return formatTime(value, datetimeLayout)
}

func formatTime(value any, layout string) (string, error) {
	switch v := value.(type) {
	case time.Time:
		return v.Format(layout), nil
	case *time.Time:
		if v == nil {
			return "", nil
		}
		return v.Format(layout), nil
	case string:
		// Pre-formatted date strings pass through escaped.
		return html.EscapeString(v), nil
	default:
		return "", attr.ConfigErrorf("format: date formatter requires time.Time or string, got %T", value)
	}
}

func formatURL(value any) (string, error) {
	target := html.EscapeString(stringify(value))
	return `<a href="` + target + `">` + target + `</a>`, nil
}

func formatEmail(value any) (string, error) {
	address := html.EscapeString(stringify(value))
	return `<a href="mailto:` + address + `">` + address + `</a>`, nil
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, attr.ConfigErrorf("format: cannot parse %q as a number", v)
		}
		return parsed, nil
	default:
		return 0, attr.ConfigErrorf("format: numeric formatter requires a number, got %T", value)
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func sanitizerPolicy() *bluemonday.Policy {
	htmlPolicyOnce.Do(func() {
		htmlPolicy = bluemonday.UGCPolicy()
	})
	return htmlPolicy
}
