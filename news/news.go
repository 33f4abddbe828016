// Package news projects parsed feed items into display records
package news

import (
	"fmt"

	"newsfeed/feed"
	"newsfeed/models"

	log "github.com/sirupsen/logrus"
)

const (
	NoDescription = "No description"
	NoLink        = "No link for this news"
)

// TitlePolicy decides what happens to items without a title
type TitlePolicy int

const (
	// Skip drops untitled items and keeps the rest
	Skip TitlePolicy = iota
	// Strict aborts the projection on the first untitled item
	Strict
)

func (p TitlePolicy) String() string {
	switch p {
	case Strict:
		return "strict"
	default:
		return "skip"
	}
}

// MissingTitleError reports the position of an item without a title
type MissingTitleError struct {
	Index int
}

func (e *MissingTitleError) Error() string {
	return fmt.Sprintf("item #%d has no title", e.Index+1)
}

// Project maps every item of the channel to a record, preserving order.
// Text is passed through untouched apart from the fallback substitutions,
// which only apply to absent fields. An empty element is kept as is.
func Project(channel *feed.Channel, policy TitlePolicy) ([]models.Record, error) {
	records := make([]models.Record, 0, len(channel.Items))

	for i, item := range channel.Items {
		if !present(item.Title, item.HasTitle) {
			if policy == Strict {
				return nil, &MissingTitleError{Index: i}
			}
			log.WithFields(log.Fields{
				"index": i,
				"link":  item.Link,
			}).Warn("Skipping item without title")
			continue
		}

		records = append(records, models.Record{
			Title:       item.Title,
			Description: orDefault(item.Description, item.HasDescription, NoDescription),
			Link:        orDefault(item.Link, item.HasLink, NoLink),
		})
	}

	return records, nil
}

// present treats an element seen in the document as set even when empty
func present(value string, seen bool) bool {
	return seen || value != ""
}

func orDefault(value string, seen bool, fallback string) string {
	if !present(value, seen) {
		return fallback
	}
	return value
}
