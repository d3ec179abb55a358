package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

const (
	hintURLLimit   = 3
	hintCharCap    = 1000
	hintURLTimeout = 4 * time.Second
)

// PageExtractor is the slice of Extractor that HintService needs.
type PageExtractor interface {
	Extract(ctx context.Context, pageURL string) (string, error)
}

// HintService assembles background reading for a topic from live web content.
type HintService struct {
	searcher  Searcher
	extractor PageExtractor
}

func NewHintService(searcher Searcher, extractor PageExtractor) *HintService {
	return &HintService{searcher: searcher, extractor: extractor}
}

// Hints searches the topic, extracts text from the top results, and returns
// the concatenation capped at a fixed length. It never fails: any search or
// extraction problem degrades to a templated generic hint so the debate can
// go on.
func (h *HintService) Hints(ctx context.Context, topic string) string {
	urls, err := h.searcher.Search(ctx, topic)
	if err != nil {
		log.Printf("hint search failed for %q: %v", topic, err)
		return fallbackHints(topic)
	}
	if len(urls) > hintURLLimit {
		urls = urls[:hintURLLimit]
	}

	// Fetch in parallel; one slow or broken page must not hold up or sink
	// the others. The indexed slice keeps ranked order.
	extracts := make([]string, len(urls))
	var wg sync.WaitGroup
	for i, pageURL := range urls {
		wg.Add(1)
		go func(i int, pageURL string) {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, hintURLTimeout)
			defer cancel()
			text, err := h.extractor.Extract(fetchCtx, pageURL)
			if err != nil {
				log.Printf("hint extraction failed: %v", err)
				return
			}
			extracts[i] = text
		}(i, pageURL)
	}
	wg.Wait()

	var parts []string
	for _, text := range extracts {
		if strings.TrimSpace(text) != "" {
			parts = append(parts, strings.TrimSpace(text))
		}
	}
	if len(parts) == 0 {
		return fallbackHints(topic)
	}

	hints := strings.Join(parts, "\n\n")
	if len(hints) > hintCharCap {
		hints = hints[:hintCharCap]
	}
	return hints
}

func fallbackHints(topic string) string {
	return fmt.Sprintf(
		"Here are some general pointers for debating %q: state your position clearly, "+
			"support each claim with evidence from a trusted source, address the strongest "+
			"counterpoint directly, and connect your argument back to the main topic.",
		topic,
	)
}
