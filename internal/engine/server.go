package engine

import (
	"fmt"
	"strings"
	"time"
)

// Version is reported in the INFO server section
const Version = "7.0.0"

// DBSize returns the raw number of entries in the selected database,
// including expired ones that have not been touched yet
func (e *Engine) DBSize() int {
	return e.db().Count()
}

func (e *Engine) FlushDB() {
	e.db().Flush()
}

// FlushAll empties every database
func (e *Engine) FlushAll() {
	e.dbs.FlushAll()
}

// Time returns the clock of the selected database
func (e *Engine) Time() time.Time {
	return e.db().Now()
}

// InfoField is one "name:value" line of an INFO section
type InfoField struct {
	Name  string
	Value string
}

// InfoSection is one "# Name" block of the INFO reply
type InfoSection struct {
	Name   string
	Fields []InfoField
}

// InfoSections returns the server and keyspace sections. Databases without keys are omitted
func (e *Engine) InfoSections() []InfoSection {
	server := InfoSection{
		Name: "Server",
		Fields: []InfoField{
			{"redis_version", Version},
			{"redis_mode", "standalone"},
			{"databases", fmt.Sprint(e.dbs.Len())},
		},
	}

	keyspace := InfoSection{Name: "Keyspace"}
	for i := 0; i < e.dbs.Len(); i++ {
		db, err := e.dbs.Database(i)
		if err != nil {
			continue
		}
		if keys := db.Count(); keys > 0 {
			keyspace.Fields = append(keyspace.Fields, InfoField{
				Name:  fmt.Sprintf("db%d", i),
				Value: fmt.Sprintf("keys=%d,expires=%d,avg_ttl=0", keys, db.Expires()),
			})
		}
	}

	return []InfoSection{server, keyspace}
}

// Info renders the sections, or only the one named by section (case-insensitive) when not empty
func (e *Engine) Info(section string) string {
	return FormatInfo(e.InfoSections(), section)
}

// FormatInfo renders sections in the INFO text format
func FormatInfo(sections []InfoSection, section string) string {
	var b strings.Builder
	for _, s := range sections {
		if section != "" && !strings.EqualFold(s.Name, section) {
			continue
		}

		b.WriteString("# " + s.Name + "\r\n")
		for _, f := range s.Fields {
			b.WriteString(f.Name + ":" + f.Value + "\r\n")
		}
		b.WriteString("\r\n")
	}
	return b.String()
}
