// Command inspect lists the archived assistant messages of a room.
package main

import (
	"chat-engine/domain"
	"chat-engine/repositories"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "data/archive", "Path to badger DB")
	room := flag.String("room", "", "Room to list")
	limit := flag.Int("limit", 50, "Maximum number of messages, 0 for all")
	serve := flag.Int("serve", 0, "Serve the web inspector on this port instead of printing")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	if *serve > 0 {
		database.StartDebugServer(db, *serve, "/inspect", ArchiveMapper)
		fmt.Printf("Inspector available on http://localhost:%d/inspect?prefix=msg:\n", *serve)
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		return
	}

	if *room == "" {
		log.Fatal("-room is required")
	}

	archive := repositories.NewArchiveRepository(db, logs.GetLoggerFromLevel(slog.LevelWarn))
	messages, err := archive.GetMessages(domain.RoomID(*room), *limit)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Time", "Intent", "Confidence", "Sentiment", "Lang", "Message"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, m := range messages {
		table.Append(row(m))
	}
	table.Render()
}

func row(m domain.ConversationMessage) []string {
	sentiment, lang := "-", "-"
	if m.Analysis != nil {
		sentiment = string(m.Analysis.Sentiment)
		if m.Analysis.Language != "" {
			lang = m.Analysis.Language
		}
	}
	return []string{
		time.UnixMilli(m.Timestamp).Format("2006-01-02 15:04:05"),
		m.Intent,
		fmt.Sprintf("%.2f", m.Confidence),
		sentiment,
		lang,
		m.Message,
	}
}

// ArchiveMapper renders an archived message for the web inspector.
func ArchiveMapper(key string, val []byte) database.InspectRow {
	r := database.DefaultMapper(key, val)

	var m domain.ConversationMessage
	if err := json.Unmarshal(val, &m); err != nil {
		r.Detail = "Error: unmarshal failed"
		return r
	}
	r.Type = strings.ToUpper(string(m.Role))
	r.Timestamp = time.UnixMilli(m.Timestamp).Format("15:04:05")
	r.Detail = m.Message
	r.Scores = fmt.Sprintf("%s:%.2f", m.Intent, m.Confidence)
	return r
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
