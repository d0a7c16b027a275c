package internal

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
)

//go:embed inspect.html
var templatesFS embed.FS

const maxInspectRows = 500

type InspectRow struct {
	Key    string
	Type   string
	Team   string
	Entity string
	Detail string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// InspectHandler renders the badger keys under ?prefix= as an HTML table,
// with the live stats on top. Defaults to the membership keys.
func InspectHandler(db *badger.DB, mapper RowMapper, statsProvider StatsProvider) http.Handler {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	if mapper == nil {
		mapper = DefaultMapper
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "team:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)) && len(data.Items) < maxInspectRows; it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})
}

// DefaultMapper understands the team:<id>:member:<user>, checkin:<id> and
// item:<id> layouts and prints values as CBOR diagnostic notation.
func DefaultMapper(key string, val []byte) InspectRow {
	parts := strings.Split(key, ":")
	row := InspectRow{
		Key:    key,
		Type:   "RAW",
		Team:   "-",
		Entity: "-",
		Detail: "Size: " + strconv.Itoa(len(val)) + " bytes",
	}
	if diag, err := cbor.Diagnose(val); err == nil {
		row.Detail = diag
	}

	switch {
	case len(parts) == 4 && parts[0] == "team" && parts[2] == "member":
		row.Type = "MEMBER"
		row.Team = trimID(parts[1])
		row.Entity = parts[3]
	case len(parts) == 2 && parts[0] == "checkin":
		row.Type = "CHECKIN"
		row.Entity = trimID(parts[1])
	case len(parts) == 2 && parts[0] == "item":
		row.Type = "ITEM"
		row.Entity = trimID(parts[1])
	}
	return row
}

func trimID(padded string) string {
	if id, err := strconv.ParseInt(padded, 10, 64); err == nil {
		return strconv.FormatInt(id, 10)
	}
	return padded
}
