// queue-inspect prints the contents of a relay queue database.
// Usage: queue-inspect <path/to/queue.db>
package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/anthropics/telegram-relay-bot/internal/biz/domain"

	_ "modernc.org/sqlite"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: queue-inspect <path/to/queue.db>")
		os.Exit(1)
	}

	db, err := sql.Open("sqlite", os.Args[1])
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT id, payload FROM records WHERE type = 'message' ORDER BY id`)
	if err != nil {
		log.Fatalf("Failed to query records: %v", err)
	}
	defer rows.Close()

	total := 0
	byKind := make(map[domain.MediaKind]int)
	for rows.Next() {
		var id int64
		var payload string
		if err := rows.Scan(&id, &payload); err != nil {
			log.Fatalf("Failed to scan record: %v", err)
		}

		var sub domain.Submission
		if err := json.Unmarshal([]byte(payload), &sub); err != nil {
			fmt.Printf("%6d  <unreadable payload: %v>\n", id, err)
			continue
		}

		caption := sub.Caption.Text
		if len(caption) > 40 {
			caption = caption[:40] + "..."
		}
		fmt.Printf("%6d  %-9s  %s\n", id, sub.Kind, caption)

		total++
		byKind[sub.Kind]++
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Failed to read records: %v", err)
	}

	fmt.Printf("\n%d queued (%d photo, %d video, %d animation)\n",
		total, byKind[domain.KindPhoto], byKind[domain.KindVideo], byKind[domain.KindAnimation])
}
