package marvel

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Формат дат в параметрах апстрима.
const dateLayout = "2006-01-02"

// param — один параметр query-строки; порядок параметров стабилен,
// поэтому url.Values (с их сортировкой по ключу) здесь не подходят.
type param struct {
	key   string
	value string
}

// CharacterFilter — параметры поиска персонажей.
// Нулевые значения (пустая строка, nil) означают «параметр не передавать».
type CharacterFilter struct {
	Name           string
	NameStartsWith string
	ModifiedSince  *time.Time
	Limit          *int
	Offset         *int
	OrderBy        string
}

func (f CharacterFilter) params() []param {
	var out []param
	out = appendString(out, "name", f.Name)
	out = appendString(out, "nameStartsWith", f.NameStartsWith)
	out = appendDate(out, "modifiedSince", f.ModifiedSince)
	out = appendInt(out, "limit", f.Limit)
	out = appendInt(out, "offset", f.Offset)
	out = appendString(out, "orderBy", f.OrderBy)
	return out
}

// ComicFilter — параметры поиска комиксов.
type ComicFilter struct {
	Title           string
	TitleStartsWith string
	ModifiedSince   *time.Time
	IssueNumber     *int
	ISBN            string
	UPC             string
	DiamondCode     string
	DigitalID       string
	Format          string
	FormatType      string
	NoVariants      *bool
	DateDescriptor  string
	DateRange       *time.Time
	StartYear       *int
	EndYear         *int
	Limit           *int
	Offset          *int
	OrderBy         string
}

func (f ComicFilter) params() []param {
	var out []param
	out = appendString(out, "title", f.Title)
	out = appendString(out, "titleStartsWith", f.TitleStartsWith)
	out = appendDate(out, "modifiedSince", f.ModifiedSince)
	out = appendInt(out, "issueNumber", f.IssueNumber)
	out = appendString(out, "isbn", f.ISBN)
	out = appendString(out, "upc", f.UPC)
	out = appendString(out, "diamondCode", f.DiamondCode)
	out = appendString(out, "digitalId", f.DigitalID)
	out = appendString(out, "format", f.Format)
	out = appendString(out, "formatType", f.FormatType)
	out = appendBool(out, "noVariants", f.NoVariants)
	out = appendString(out, "dateDescriptor", f.DateDescriptor)
	out = appendDate(out, "dateRange", f.DateRange)
	out = appendInt(out, "startYear", f.StartYear)
	out = appendInt(out, "endYear", f.EndYear)
	out = appendInt(out, "limit", f.Limit)
	out = appendInt(out, "offset", f.Offset)
	out = appendString(out, "orderBy", f.OrderBy)
	return out
}

func appendString(out []param, key, value string) []param {
	if value == "" {
		return out
	}
	return append(out, param{key, value})
}

func appendInt(out []param, key string, value *int) []param {
	if value == nil {
		return out
	}
	return append(out, param{key, strconv.Itoa(*value)})
}

func appendBool(out []param, key string, value *bool) []param {
	if value == nil {
		return out
	}
	return append(out, param{key, strconv.FormatBool(*value)})
}

func appendDate(out []param, key string, value *time.Time) []param {
	if value == nil {
		return out
	}
	return append(out, param{key, value.Format(dateLayout)})
}

// buildQuery собирает query-строку: сначала обязательные параметры подписи
// (ts, apikey, hash) в фиксированном порядке, затем параметры фильтра.
// Пустой список даёт пустую строку (защитная ветка: параметры подписи
// присутствуют всегда).
func buildQuery(ts, publicKey, privateKey string, filter []param) string {
	all := make([]param, 0, len(filter)+3)
	all = append(all,
		param{"ts", ts},
		param{"apikey", publicKey},
		param{"hash", sign(ts, privateKey, publicKey)},
	)
	all = append(all, filter...)

	return joinParams(all)
}

// joinParams кодирует параметры с сохранением порядка.
// Пробел кодируется как %20, а не «+»: так делает апстрим.
func joinParams(params []param) string {
	if len(params) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(escape(p.value))
	}

	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
