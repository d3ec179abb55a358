package services

import (
	"bufio"
	"log"
	"math/rand"
	"os"
	"strings"
)

// fallbackTopics keeps get-topic alive when the corpus file is missing or
// unreadable.
var fallbackTopics = []string{
	"Social media has a positive impact on society",
	"Remote work is more productive than office work",
	"Artificial intelligence will create more jobs than it eliminates",
	"School uniforms should be mandatory",
	"Pizzas with pineapple are the absolute best!",
}

// TopicService serves a uniformly random debate topic from a line-oriented
// corpus file.
type TopicService struct {
	path string
}

func NewTopicService(path string) *TopicService {
	return &TopicService{path: path}
}

// RandomTopic never fails: a missing or empty corpus falls back to the
// built-in list.
func (t *TopicService) RandomTopic() string {
	topics := t.loadCorpus()
	return topics[rand.Intn(len(topics))]
}

func (t *TopicService) loadCorpus() []string {
	file, err := os.Open(t.path)
	if err != nil {
		log.Printf("topic corpus unavailable (%v), using built-in topics", err)
		return fallbackTopics
	}
	defer file.Close()

	var topics []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			topics = append(topics, line)
		}
	}
	if err := scanner.Err(); err != nil || len(topics) == 0 {
		log.Printf("topic corpus unreadable or empty, using built-in topics")
		return fallbackTopics
	}
	return topics
}
