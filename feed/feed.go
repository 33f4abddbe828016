// Package feed parses syndication documents into an ordered list of items
package feed

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"
	log "github.com/sirupsen/logrus"
)

// Item is a single feed entry. The Has flags are set when an rss item
// contained the element, even if it was empty. For other formats an empty
// string means the field was absent.
type Item struct {
	Title       string
	Description string
	Link        string

	HasTitle       bool
	HasDescription bool
	HasLink        bool
}

// Channel is the parsed top-level feed container
type Channel struct {
	Title string
	Items []Item
}

// ParseError is returned when a document is not a valid feed
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid feed document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser turns raw RSS, Atom or JSON feed documents into channels
type Parser struct {
	parser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{parser: gofeed.NewParser()}
}

// Parse decodes doc, keeping items in document order
func (p *Parser) Parse(ctx context.Context, doc []byte) (*Channel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var markup *outline
	switch feedType := gofeed.DetectFeedType(bytes.NewReader(doc)); feedType {
	case gofeed.FeedTypeUnknown:
		return nil, parseFailed(gofeed.ErrFeedTypeNotDetected)
	case gofeed.FeedTypeRSS, gofeed.FeedTypeAtom:
		var err error
		if markup, err = scanMarkup(doc); err != nil {
			return nil, parseFailed(err)
		}
		if feedType == gofeed.FeedTypeRSS && !markup.channel {
			return nil, parseFailed(errMissingChannel)
		}
	}

	parsed, err := p.parser.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, parseFailed(err)
	}

	channel := &Channel{
		Title: parsed.Title,
		Items: make([]Item, 0, len(parsed.Items)),
	}
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		channel.Items = append(channel.Items, Item{
			Title:       item.Title,
			Description: item.Description,
			Link:        item.Link,
		})
	}

	// Presence is only known when both parsers saw the same rss items
	if parsed.FeedType == "rss" && markup != nil && len(markup.items) == len(channel.Items) {
		for i, f := range markup.items {
			channel.Items[i].HasTitle = f.title
			channel.Items[i].HasDescription = f.description
			channel.Items[i].HasLink = f.link
		}
	}

	log.WithFields(log.Fields{
		"feed_type": parsed.FeedType,
		"title":     parsed.Title,
		"items":     len(channel.Items),
	}).Debug("Parsed feed")

	return channel, nil
}

func parseFailed(err error) error {
	log.WithError(err).Error("Error parsing feed")
	return &ParseError{Err: err}
}
